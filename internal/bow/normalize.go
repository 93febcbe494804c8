//    ToposGoServer
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package bow

import (
	"runtime"
	"strings"
	"sync"
	"unicode"
)

// NormalizerVersion - bump whenever Tokens() changes its output for any input; fingerprinted artifacts depend on it
const NormalizerVersion = "1"

// Builder - turns raw documents into token bags, a vocabulary, and a document-term matrix.
// A zero-stops Builder is usable; NewBuilder fills in the worker count.
type Builder struct {
	Stops   map[string]struct{}
	Workers int
	// IsWordRune - the "word class"; anything outside it is a separator. nil means letters+digits.
	IsWordRune func(r rune) bool
}

func NewBuilder(stops map[string]struct{}) *Builder {
	return &Builder{
		Stops:   stops,
		Workers: runtime.NumCPU(),
	}
}

// Tokens - normalize one document's text into its surviving tokens.
// The order of operations is fixed: whitespace collapses, non-word runes
// become separators, everything lowercases, then the split tokens are
// filtered against the stop set. Empty output is not an error.
func (b *Builder) Tokens(text string) []string {
	isword := b.IsWordRune
	if isword == nil {
		isword = func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) }
	}

	text = strings.ToLower(text)

	// FieldsFunc does the whitespace collapse, the punctuation strip, and the
	// split in a single deterministic pass: every non-word rune is a separator
	candidates := strings.FieldsFunc(text, func(r rune) bool { return !isword(r) })

	tokens := make([]string, 0, len(candidates))
	for i := 0; i < len(candidates); i++ {
		if candidates[i] == "" {
			continue
		}
		if _, skip := b.Stops[candidates[i]]; skip {
			continue
		}
		tokens = append(tokens, candidates[i])
	}
	return tokens
}

// TokensPerDoc - normalize every document in the corpus; one token slice per
// document, in corpus order. Documents are independent, so the work fans out
// across Workers goroutines; merging by original index keeps the result
// identical no matter which worker finishes first.
func (b *Builder) TokensPerDoc(c Corpus) [][]string {
	out := make([][]string, len(c))

	workers := b.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(c) {
		workers = len(c)
	}
	if workers < 2 {
		for i := 0; i < len(c); i++ {
			out[i] = b.Tokens(c[i].Text)
		}
		return out
	}

	todo := make(chan int, len(c))
	for i := 0; i < len(c); i++ {
		todo <- i
	}
	close(todo)

	var finished sync.WaitGroup
	for w := 0; w < workers; w++ {
		finished.Add(1)
		go func() {
			defer finished.Done()
			for i := range todo {
				out[i] = b.Tokens(c[i].Text)
			}
		}()
	}
	finished.Wait()

	return out
}
