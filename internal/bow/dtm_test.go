//    ToposGoServer
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package bow

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catanddog() (Corpus, *Builder) {
	c := Corpus{
		{ID: "1", Text: "The cat sat on the mat."},
		{ID: "2", Text: "The dog sat."},
	}
	return c, NewBuilder(stopset("the", "on"))
}

func TestMatrixScenario(t *testing.T) {
	c, b := catanddog()

	dtm, err := b.Matrix(c)
	require.NoError(t, err)
	require.NoError(t, dtm.Warning())

	assert.Equal(t, [][]string{{"cat", "sat", "mat"}, {"dog", "sat"}}, dtm.Tokens)
	assert.Equal(t, []string{"cat", "dog", "mat", "sat"}, dtm.Vocab.Terms)

	nr, nc := dtm.Dims()
	assert.Equal(t, 2, nr)
	assert.Equal(t, 4, nc)

	// row 1: cat=1, mat=1, sat=1; row 2: dog=1, sat=1
	assert.Equal(t, 1, dtm.Count(0, dtm.Vocab.Index["cat"]))
	assert.Equal(t, 1, dtm.Count(0, dtm.Vocab.Index["mat"]))
	assert.Equal(t, 1, dtm.Count(0, dtm.Vocab.Index["sat"]))
	assert.Equal(t, 0, dtm.Count(0, dtm.Vocab.Index["dog"]))
	assert.Equal(t, 1, dtm.Count(1, dtm.Vocab.Index["dog"]))
	assert.Equal(t, 1, dtm.Count(1, dtm.Vocab.Index["sat"]))

	assert.Equal(t, 2, dtm.ColSum(dtm.Vocab.Index["sat"]))
	assert.Equal(t, 5, dtm.NNZ())
}

func TestMatrixRowAndColumnSums(t *testing.T) {
	c := Corpus{
		{ID: "a", Text: "alpha beta beta gamma"},
		{ID: "b", Text: "beta gamma gamma gamma"},
		{ID: "c", Text: ""},
	}
	b := NewBuilder(nil)

	dtm, err := b.Matrix(c)
	require.NoError(t, err)

	nr, nc := dtm.Dims()
	for i := 0; i < nr; i++ {
		total := 0
		for j := 0; j < nc; j++ {
			total += dtm.Count(i, j)
		}
		assert.Equal(t, dtm.RowSum(i), total, "row %d", i)
		assert.Equal(t, len(dtm.Tokens[i]), total, "row %d vs surviving tokens", i)
	}
	for j := 0; j < nc; j++ {
		total := 0
		for i := 0; i < nr; i++ {
			total += dtm.Count(i, j)
		}
		assert.Equal(t, dtm.ColSum(j), total, "col %d", j)
	}

	// the empty document is an all-zero row, not an error
	assert.Equal(t, 0, dtm.RowSum(2))
}

func TestVocabularyPermutationInvariance(t *testing.T) {
	c := Corpus{
		{ID: "1", Text: "zebra yak xerus"},
		{ID: "2", Text: "yak wolf"},
		{ID: "3", Text: "aardvark zebra"},
		{ID: "4", Text: "wolf wolf wombat"},
	}
	b := NewBuilder(nil)
	want := b.Vocabulary(c)

	r := rand.New(rand.NewSource(17))
	for trial := 0; trial < 10; trial++ {
		shuffled := make(Corpus, len(c))
		copy(shuffled, c)
		r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		got := b.Vocabulary(shuffled)
		// lexicographic ordering makes the invariance positional, not just set-wise
		assert.Equal(t, want.Terms, got.Terms)
	}
}

func TestMatrixDuplicateIdentifiers(t *testing.T) {
	c := Corpus{
		{ID: "1", Text: "a"},
		{ID: "1", Text: "b"},
	}
	b := NewBuilder(nil)

	_, err := b.Matrix(c)
	require.Error(t, err)
	var dupe *DuplicateIDError
	require.ErrorAs(t, err, &dupe)
	assert.Equal(t, "1", dupe.ID)
}

func TestMatrixDegenerateCorpora(t *testing.T) {
	b := NewBuilder(stopset("the"))

	// zero documents: empty everything, no error, no warning
	dtm, err := b.Matrix(Corpus{})
	require.NoError(t, err)
	nr, nc := dtm.Dims()
	assert.Zero(t, nr)
	assert.Zero(t, nc)
	assert.NoError(t, dtm.Warning())

	// documents exist but all normalize away: zero columns + warning signal
	dtm, err = b.Matrix(Corpus{{ID: "1", Text: "the THE the..."}, {ID: "2", Text: ""}})
	require.NoError(t, err)
	nr, nc = dtm.Dims()
	assert.Equal(t, 2, nr)
	assert.Zero(t, nc)
	assert.ErrorIs(t, dtm.Warning(), ErrEmptyVocabulary)
}

func TestAdapters(t *testing.T) {
	c, b := catanddog()
	dtm, err := b.Matrix(c)
	require.NoError(t, err)

	assert.Equal(t, []string{"cat sat mat", "dog sat"}, dtm.JoinedDocs())
	assert.Equal(t, "cat sat mat dog sat", dtm.TextBlock())

	rows := dtm.Long()
	require.Len(t, rows, 5)
	assert.Equal(t, TokenRow{DocID: "1", Token: "cat"}, rows[0])
	assert.Equal(t, TokenRow{DocID: "2", Token: "sat"}, rows[4])

	d := dtm.Dense()
	require.NotNil(t, d)
	dr, dc := d.Dims()
	assert.Equal(t, 2, dr)
	assert.Equal(t, 4, dc)
	assert.Equal(t, float64(1), d.At(0, dtm.Vocab.Index["cat"]))
	assert.Equal(t, float64(0), d.At(1, dtm.Vocab.Index["cat"]))
}
