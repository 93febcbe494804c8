//    ToposGoServer
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package stoplists

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnglish(t *testing.T) {
	stops := English()

	_, the := stops["the"]
	assert.True(t, the)

	// the keep list wins over the stop list
	_, year := stops["year"]
	assert.False(t, year)

	assert.Equal(t, len(EnglishStop)-len(EnglishKeep), len(stops))
}

func TestSetSubtraction(t *testing.T) {
	aa := []string{"a", "b", "c", "d"}
	bb := []string{"a", "b", "e", "f"}
	assert.Equal(t, []string{"c", "d"}, SetSubtraction(aa, bb))
}
