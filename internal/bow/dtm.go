//    ToposGoServer
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package bow

import (
	"github.com/e-gun/sparse"
)

// DocTermMatrix - sparse (document, term) -> count table plus the artifacts
// it was derived from. Rebuilt on every invocation; never mutated afterwards.
type DocTermMatrix struct {
	DocIDs  []string
	Vocab   Vocabulary
	Tokens  [][]string // surviving tokens per document, corpus order
	csr     *sparse.CSR
	rowsums []int
	colsums []int
	nnz     int
}

// Matrix - normalize the corpus and assemble the document-term matrix.
// The only error is a duplicate document identifier; degenerate corpora
// (no documents, or no surviving tokens anywhere) build fine and the caller
// can ask Warning() whether the result is worth fitting.
func (b *Builder) Matrix(c Corpus) (*DocTermMatrix, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	tokens := b.TokensPerDoc(c)
	vocab := buildvocabulary(tokens)

	dtm := &DocTermMatrix{
		DocIDs:  c.IDs(),
		Vocab:   vocab,
		Tokens:  tokens,
		rowsums: make([]int, len(c)),
		colsums: make([]int, vocab.Size()),
	}

	if len(c) == 0 || vocab.Size() == 0 {
		// zero-row and/or zero-column matrix; external fitters choke on these
		// at their own boundary, not here
		return dtm, nil
	}

	dok := sparse.NewDOK(len(c), vocab.Size())
	for i := 0; i < len(tokens); i++ {
		counts := make(map[int]int)
		for j := 0; j < len(tokens[i]); j++ {
			counts[vocab.Index[tokens[i][j]]] += 1
		}
		for col, n := range counts {
			dok.Set(i, col, float64(n))
			dtm.rowsums[i] += n
			dtm.colsums[col] += n
			dtm.nnz += 1
		}
	}
	dtm.csr = dok.ToCSR()

	return dtm, nil
}

// Warning - non-fatal signal for the degenerate case: documents exist but
// every one of them normalized to nothing
func (m *DocTermMatrix) Warning() error {
	if len(m.DocIDs) > 0 && m.Vocab.Size() == 0 {
		return ErrEmptyVocabulary
	}
	return nil
}

// Dims - (documents, vocabulary terms)
func (m *DocTermMatrix) Dims() (int, int) {
	return len(m.DocIDs), m.Vocab.Size()
}

// Count - occurrences of vocabulary term j in document i
func (m *DocTermMatrix) Count(i, j int) int {
	if m.csr == nil {
		return 0
	}
	return int(m.csr.At(i, j))
}

// RowSum - total surviving token count for document i
func (m *DocTermMatrix) RowSum(i int) int {
	return m.rowsums[i]
}

// ColSum - total occurrence count for vocabulary term j across the corpus
func (m *DocTermMatrix) ColSum(j int) int {
	return m.colsums[j]
}

// NNZ - number of stored (non-zero) entries
func (m *DocTermMatrix) NNZ() int {
	return m.nnz
}
