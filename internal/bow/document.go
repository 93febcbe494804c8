//    ToposGoServer
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package bow

import (
	"errors"
	"fmt"
)

// a Corpus is the caller's problem until it passes Validate(); after that the
// builder promises deterministic output for it

// ErrEmptyVocabulary - every document in the corpus normalized to zero tokens; a signal, not a failure
var ErrEmptyVocabulary = errors.New("corpus normalized to an empty vocabulary")

// Document - one identifier + one raw text body; the text can be empty
type Document struct {
	ID   string
	Text string
}

// Corpus - an ordered sequence of Documents; order matters only for traceability
type Corpus []Document

// DuplicateIDError - two documents in one corpus share an identifier
type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate document identifier: '%s'", e.ID)
}

// Validate - check the uniqueness invariant on document identifiers
func (c Corpus) Validate() error {
	seen := make(map[string]bool, len(c))
	for i := 0; i < len(c); i++ {
		if seen[c[i].ID] {
			return &DuplicateIDError{ID: c[i].ID}
		}
		seen[c[i].ID] = true
	}
	return nil
}

// IDs - the document identifiers in corpus order
func (c Corpus) IDs() []string {
	ids := make([]string, len(c))
	for i := 0; i < len(c); i++ {
		ids[i] = c[i].ID
	}
	return ids
}
