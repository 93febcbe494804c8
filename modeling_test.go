//    ToposGoServer
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"testing"

	"github.com/e-gun/ToposGoServer/internal/bow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// topics as rows, documents as columns; doc 0 favors topic 1, docs 1 and 2 favor topic 0
func testdistribution() mat.Matrix {
	return mat.NewDense(2, 3, []float64{
		0.2, 0.9, 0.6,
		0.8, 0.1, 0.4,
	})
}

func TestLdaDocPerTopic(t *testing.T) {
	counts := ldadocpertopic(2, testdistribution())
	assert.Equal(t, []int{2, 1}, counts)
}

func TestLdaDocByWeight(t *testing.T) {
	weights := ldadocbyweight(2, testdistribution())
	require.Len(t, weights, 2)

	// topic 0 accumulates 1.7, topic 1 accumulates 1.3; scaled by the max
	assert.InDelta(t, 1.0, weights[0], 1e-9)
	assert.InDelta(t, 1.3/1.7, weights[1], 1e-9)
}

func TestLdaTopDocuments(t *testing.T) {
	b := bow.NewBuilder(map[string]struct{}{})
	dtm, err := b.Matrix(bow.Corpus{
		{ID: "alpha", Text: "one"},
		{ID: "beta", Text: "two"},
		{ID: "gamma", Text: "three"},
	})
	require.NoError(t, err)

	winners := ldatopdocuments(dtm, testdistribution())
	require.Len(t, winners, 2)
	assert.Equal(t, "beta", winners[0].W)
	assert.InDelta(t, 0.9, winners[0].V, 1e-9)
	assert.Equal(t, "alpha", winners[1].W)
}

func TestRunLdaAppliesIterations(t *testing.T) {
	b := bow.NewBuilder(map[string]struct{}{})
	dtm, err := b.Matrix(bow.Corpus{
		{ID: "d1", Text: "stars orbit the galaxy"},
		{ID: "d2", Text: "galaxy stars shine bright"},
		{ID: "d3", Text: "soup needs salt and garlic"},
		{ID: "d4", Text: "garlic soup simmers slowly"},
		{ID: "d5", Text: "bright stars over the galaxy"},
		{ID: "d6", Text: "salt the soup and stir"},
	})
	require.NoError(t, err)

	// the caller's iteration count drives the fit; Config.LDAIterations is
	// zero-valued here, so falling back to it would not converge at all
	dot, _, _, rpt, err := runlda("tiny", dtm, 2, 7)
	require.NoError(t, err)
	assert.Equal(t, "k=2, iterations=7", rpt.Notes)

	tr, dc := dot.Dims()
	assert.Equal(t, 2, tr)
	assert.Equal(t, 6, dc)
}

func TestJobVaultLifecycle(t *testing.T) {
	jv := MakeJobVault()

	id := jv.NewJob("sample", "w2v")
	j, ok := jv.Get(id)
	require.True(t, ok)
	assert.True(t, j.IsActive)

	jv.Update(id, "halfway", 5, 10)
	j, _ = jv.Get(id)
	assert.Equal(t, 5, j.Iteration)
	assert.Equal(t, "halfway", j.Msg)

	jv.Finish(id)
	j, _ = jv.Get(id)
	assert.False(t, j.IsActive)

	jv.Delete(id)
	_, ok = jv.Get(id)
	assert.False(t, ok)
}
