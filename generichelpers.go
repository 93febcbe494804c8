//    ToposGoServer
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"sort"

	"golang.org/x/exp/maps"
)

//
// misc generic functions
//

// StringMapKeysIntoSlice - the keys of a map, sorted; the sort keeps everything downstream deterministic
func StringMapKeysIntoSlice[V any](m map[string]V) []string {
	kk := maps.Keys(m)
	sort.Strings(kk)
	return kk
}

// ToSet - []T into a set
func ToSet[T comparable](sl []T) map[T]struct{} {
	s := make(map[T]struct{}, len(sl))
	for i := 0; i < len(sl); i++ {
		s[sl[i]] = struct{}{}
	}
	return s
}
