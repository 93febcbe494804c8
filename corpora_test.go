//    ToposGoServer
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"os"
	"strings"
	"testing"

	"github.com/e-gun/ToposGoServer/internal/bow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	Config.MaxCorpusDocs = MAXCORPUSDOCS
	Config.LogLevel = MSGCRIT
	Config.WorkerCount = 2
	os.Exit(m.Run())
}

func TestLoadCorpusDelimited(t *testing.T) {
	in := "a\tthe cat sat\nb\tthe dog sat\n"
	c, err := loadcorpusdelimited(strings.NewReader(in), '\t')
	require.NoError(t, err)
	require.Len(t, c, 2)
	assert.Equal(t, "a", c[0].ID)
	assert.Equal(t, "the dog sat", c[1].Text)
}

func TestLoadCorpusExtraColumnsFoldIntoText(t *testing.T) {
	in := "a,first,second,third\n"
	c, err := loadcorpusdelimited(strings.NewReader(in), ',')
	require.NoError(t, err)
	require.Len(t, c, 1)
	assert.Equal(t, "first second third", c[0].Text)
}

func TestLoadCorpusDuplicateIDs(t *testing.T) {
	in := "a\tone\nb\ttwo\na\tthree\n"
	_, err := loadcorpusdelimited(strings.NewReader(in), '\t')
	require.Error(t, err)

	var dup *bow.DuplicateIDError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "a", dup.ID)
}

func TestLoadCorpusTooFewColumns(t *testing.T) {
	in := "justanid\n"
	_, err := loadcorpusdelimited(strings.NewReader(in), '\t')
	assert.Error(t, err)
}

func TestEmbeddedSampleCorpus(t *testing.T) {
	f, err := efs.Open("emb/corpora/sample.tsv")
	require.NoError(t, err)
	defer f.Close()

	c, err := loadcorpusdelimited(f, '\t')
	require.NoError(t, err)
	assert.Greater(t, len(c), 30)
	assert.NoError(t, c.Validate())
}
