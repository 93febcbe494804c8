//    ToposGoServer
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"testing"

	"github.com/e-gun/ToposGoServer/internal/bow"
	"github.com/stretchr/testify/assert"
)

func testcorpus() bow.Corpus {
	return bow.Corpus{
		{ID: "1", Text: "The cat sat on the mat."},
		{ID: "2", Text: "The dog sat."},
	}
}

func TestFingerprintIsDeterministic(t *testing.T) {
	stops := map[string]struct{}{"the": {}, "on": {}}

	a := fingerprintmodel(testcorpus(), stops, "lda", struct{ K int }{5})
	b := fingerprintmodel(testcorpus(), stops, "lda", struct{ K int }{5})
	assert.Equal(t, a, b)
	assert.Len(t, a, 32)
}

func TestFingerprintIgnoresDocumentOrder(t *testing.T) {
	stops := map[string]struct{}{"the": {}}

	c := testcorpus()
	r := bow.Corpus{c[1], c[0]}

	a := fingerprintmodel(c, stops, "lda", nil)
	b := fingerprintmodel(r, stops, "lda", nil)
	assert.Equal(t, a, b)
}

func TestFingerprintSeparatesModels(t *testing.T) {
	stops := map[string]struct{}{"the": {}}

	a := fingerprintmodel(testcorpus(), stops, "lda", nil)
	b := fingerprintmodel(testcorpus(), stops, "lsa", nil)
	assert.NotEqual(t, a, b)
}

func TestFingerprintSeparatesOptions(t *testing.T) {
	stops := map[string]struct{}{"the": {}}

	a := fingerprintmodel(testcorpus(), stops, "lda", struct{ K int }{5})
	b := fingerprintmodel(testcorpus(), stops, "lda", struct{ K int }{6})
	assert.NotEqual(t, a, b)
}
