//    ToposGoServer
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/e-gun/ToposGoServer/internal/bow"
	"github.com/labstack/echo/v4"
)

//
// CORPUS ROUTES
//

// CorpusSummary - what the client sees when asking about a corpus
type CorpusSummary struct {
	Name  string `json:"name"`
	Docs  int    `json:"docs"`
	Terms int    `json:"terms"`
}

// RtCorporaList - JSON list of every registered corpus
func RtCorporaList(c echo.Context) error {
	var out []CorpusSummary
	for _, n := range AllCorpora.Names() {
		cc, _ := AllCorpora.Get(n)
		b := bow.NewBuilder(readstopconfig())
		b.Workers = Config.WorkerCount
		v := b.Vocabulary(cc)
		out = append(out, CorpusSummary{Name: n, Docs: len(cc), Terms: v.Size()})
	}
	return JSONresponse(c, out)
}

// RtCorporaLoad - pull a new corpus into the vault: "/corpora/load?src=file&path=x.tsv&name=y"
func RtCorporaLoad(c echo.Context) error {
	const (
		MSG1 = "loaded corpus '%s': %d documents"
		FAIL = "RtCorporaLoad() failed: %s"
	)

	src := c.QueryParam("src")
	name := c.QueryParam("name")

	load := func() (bow.Corpus, error) {
		switch src {
		case "", "file":
			p := c.QueryParam("path")
			if p == "" {
				return nil, errors.New("no path provided")
			}
			// corpora only load from inside the configured directory
			p = filepath.Join(Config.CorpusDir, filepath.Base(p))
			if name == "" {
				name = strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
			}
			return loadcorpusfile(p)
		case "sqlite":
			p := c.QueryParam("path")
			t := c.QueryParam("table")
			if p == "" || t == "" {
				return nil, errors.New("sqlite loads need both a path and a table")
			}
			if name == "" {
				name = t
			}
			p = filepath.Join(Config.CorpusDir, filepath.Base(p))
			return loadcorpussqlite(p, t)
		case "pg":
			if !Config.PGEnabled {
				return nil, errors.New("no postgres login configured")
			}
			t := c.QueryParam("table")
			if t == "" {
				return nil, errors.New("postgres loads need a table")
			}
			if name == "" {
				name = t
			}
			return loadcorpuspg(c.Request().Context(), t)
		default:
			return nil, fmt.Errorf("unknown corpus source '%s'", src)
		}
	}

	cc, err := load()
	if err != nil {
		msg(fmt.Sprintf(FAIL, err.Error()), MSGWARN)
		return c.JSONPretty(http.StatusBadRequest, map[string]string{"error": err.Error()}, JSONINDENT)
	}

	if err = registercorpus(name, cc); err != nil {
		msg(fmt.Sprintf(FAIL, err.Error()), MSGWARN)
		return c.JSONPretty(http.StatusBadRequest, map[string]string{"error": err.Error()}, JSONINDENT)
	}

	msg(fmt.Sprintf(MSG1, name, len(cc)), MSGNOTE)
	return JSONresponse(c, CorpusSummary{Name: name, Docs: len(cc)})
}
