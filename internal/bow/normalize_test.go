//    ToposGoServer
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package bow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func stopset(words ...string) map[string]struct{} {
	s := make(map[string]struct{})
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

func TestTokens(t *testing.T) {
	b := NewBuilder(stopset("the", "on"))

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"plain", "The cat sat on the mat.", []string{"cat", "sat", "mat"}},
		{"whitespace runs", "  dog \t\t sat \n\n  ", []string{"dog", "sat"}},
		{"punctuation is a separator", "cat,dog;mat--sat", []string{"cat", "dog", "mat", "sat"}},
		{"case folds before the stop check", "THE CAT", []string{"cat"}},
		{"empty string", "", nil},
		{"only stopwords and punctuation", "The... the, ON!", nil},
		{"digits survive", "cat 42 dog", []string{"cat", "42", "dog"}},
		{"unicode letters survive", "χελώνη cat", []string{"χελώνη", "cat"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.Tokens(tt.text)
			if tt.want == nil {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestTokensIdempotent(t *testing.T) {
	b := NewBuilder(stopset("the"))
	const text = "The cat, the dog & the mat..."
	first := b.Tokens(text)
	second := b.Tokens(text)
	assert.Equal(t, first, second)

	// normalizing already-normalized text changes nothing
	renormalized := b.Tokens("cat dog mat")
	assert.Equal(t, first, renormalized)
}

func TestTokensCustomWordClass(t *testing.T) {
	b := NewBuilder(nil)
	b.IsWordRune = func(r rune) bool { return r >= 'a' && r <= 'z' }
	assert.Equal(t, []string{"cat", "dog"}, b.Tokens("cat42dog"))
}

func TestTokensPerDocDeterministicAcrossWorkers(t *testing.T) {
	c := Corpus{
		{ID: "1", Text: "The cat sat on the mat."},
		{ID: "2", Text: "The dog sat."},
		{ID: "3", Text: ""},
		{ID: "4", Text: "mat mat mat"},
	}

	serial := NewBuilder(stopset("the", "on"))
	serial.Workers = 1
	parallel := NewBuilder(stopset("the", "on"))
	parallel.Workers = 8

	assert.Equal(t, serial.TokensPerDoc(c), parallel.TokensPerDoc(c))
}
