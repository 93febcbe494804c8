//    ToposGoServer
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/e-gun/ToposGoServer/internal/bow"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrontpageEscapesCorpusNames(t *testing.T) {
	// corpus names arrive via "/corpora/load?name=..." and land on the front page
	const evil = `<script>alert("x")</script>`

	AllCorpora.Insert(evil, bow.Corpus{{ID: "1", Text: "one"}})
	defer AllCorpora.Delete(evil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, RtFrontpage(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.NotContains(t, body, evil)
	assert.Contains(t, body, "&lt;script&gt;")
}
