//    ToposGoServer
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

// Package stoplists carries the built-in stopword lists and the set helpers
// the builders expect. Provenance policy: the built-ins are the default;
// a caller-side configuration file can override them wholesale.
package stoplists

// ToSet - []string into a membership set
func ToSet(words []string) map[string]struct{} {
	s := make(map[string]struct{}, len(words))
	for i := 0; i < len(words); i++ {
		s[words[i]] = struct{}{}
	}
	return s
}

// SetSubtraction - [](set(aa) - set(bb))
func SetSubtraction(aa []string, bb []string) []string {
	pruner := make(map[string]bool, len(bb))
	for _, b := range bb {
		pruner[b] = true
	}

	var remain []string
	for _, a := range aa {
		if !pruner[a] {
			remain = append(remain, a)
		}
	}
	return remain
}

// English - the default English stop set: the common-word list minus the keep list
func English() map[string]struct{} {
	return ToSet(SetSubtraction(EnglishStop, EnglishKeep))
}
