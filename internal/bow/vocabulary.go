//    ToposGoServer
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package bow

import (
	"sort"

	"golang.org/x/exp/maps"
)

// Vocabulary - the distinct surviving tokens of a corpus under a fixed,
// lexicographic ordering; downstream topic models index terms by column
// position, so the ordering has to survive document shuffles and reruns
type Vocabulary struct {
	Terms []string
	Index map[string]int
}

func (v Vocabulary) Size() int {
	return len(v.Terms)
}

// Has - membership check without caring about position
func (v Vocabulary) Has(term string) bool {
	_, t := v.Index[term]
	return t
}

// buildvocabulary - accumulate the distinct tokens and sort them; sorting is
// what makes the result invariant to document processing order
func buildvocabulary(tokensperdoc [][]string) Vocabulary {
	distinct := make(map[string]bool)
	for i := 0; i < len(tokensperdoc); i++ {
		for j := 0; j < len(tokensperdoc[i]); j++ {
			distinct[tokensperdoc[i][j]] = true
		}
	}

	terms := maps.Keys(distinct)
	sort.Strings(terms)

	index := make(map[string]int, len(terms))
	for i := 0; i < len(terms); i++ {
		index[terms[i]] = i
	}

	return Vocabulary{Terms: terms, Index: index}
}

// Vocabulary - normalize the whole corpus and return its vocabulary
func (b *Builder) Vocabulary(c Corpus) Vocabulary {
	return buildvocabulary(b.TokensPerDoc(c))
}
