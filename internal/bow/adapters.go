//    ToposGoServer
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package bow

import (
	"strings"

	"gonum.org/v1/gonum/mat"
)

// every modeling library wants the corpus in its own shape: the vectoriser
// pipelines take one string per document, the biterm-style consumers take a
// long-format token table, gonum consumers take a dense matrix. one canonical
// representation, adapters on demand.

// JoinedDocs - one space-joined string of surviving tokens per document;
// the shape a CountVectoriser pipeline consumes
func (m *DocTermMatrix) JoinedDocs() []string {
	docs := make([]string, len(m.Tokens))
	for i := 0; i < len(m.Tokens); i++ {
		docs[i] = strings.Join(m.Tokens[i], " ")
	}
	return docs
}

// TokenRow - one surviving token of one document; long-format table row
type TokenRow struct {
	DocID string
	Token string
}

// Long - the (document-id, token) long-format table: one row per surviving
// token, document order then token order
func (m *DocTermMatrix) Long() []TokenRow {
	var rows []TokenRow
	for i := 0; i < len(m.Tokens); i++ {
		for j := 0; j < len(m.Tokens[i]); j++ {
			rows = append(rows, TokenRow{DocID: m.DocIDs[i], Token: m.Tokens[i][j]})
		}
	}
	return rows
}

// Dense - the counts as a gonum dense matrix, rows are documents
func (m *DocTermMatrix) Dense() *mat.Dense {
	nr, nc := m.Dims()
	if nr == 0 || nc == 0 {
		return nil
	}
	if m.csr != nil {
		return m.csr.ToDense()
	}
	return mat.NewDense(nr, nc, nil)
}

// TextBlock - the whole normalized corpus as a single string; the word2vec
// family trains on an io.ReadSeeker over exactly this
func (m *DocTermMatrix) TextBlock() string {
	return strings.Join(m.JoinedDocs(), " ")
}
