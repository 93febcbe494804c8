//    ToposGoServer
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"
	"testing"

	"github.com/e-gun/wego/pkg/search"
	"github.com/stretchr/testify/assert"
)

// "beta" and "gamma" are core terms that also neighbor each other; "delta" is peripheral
func testneighborweb() map[string]search.Neighbors {
	return map[string]search.Neighbors{
		"alpha": {
			{Word: "beta", Similarity: 0.9},
			{Word: "gamma", Similarity: 0.8},
		},
		"beta": {
			{Word: "gamma", Similarity: 0.7},
			{Word: "delta", Similarity: 0.6},
		},
		"gamma": {
			{Word: "beta", Similarity: 0.7},
		},
	}
}

func TestNeighborWebDataExpandedDrawsEachEdgeOnce(t *testing.T) {
	gnn, gll := neighborwebdata("alpha", testneighborweb(), true)

	seen := make(map[string]int)
	for _, l := range gll {
		seen[fmt.Sprintf("%v -> %v", l.Source, l.Target)] += 1
	}
	for edge, n := range seen {
		assert.Equal(t, 1, n, edge)
	}

	// the peripheral word gets a node of its own in extended mode
	var names []string
	for _, n := range gnn {
		names = append(names, n.Name)
	}
	assert.Contains(t, names, "delta")
}

func TestNeighborWebDataSimpleStaysInsideCore(t *testing.T) {
	gnn, gll := neighborwebdata("alpha", testneighborweb(), false)

	for _, l := range gll {
		assert.NotEqual(t, "delta", l.Target)
	}

	var names []string
	for _, n := range gnn {
		names = append(names, n.Name)
	}
	assert.NotContains(t, names, "delta")
}
