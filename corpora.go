//    ToposGoServer
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"context"
	"database/sql"
	"embed"
	"encoding/csv"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/e-gun/ToposGoServer/internal/bow"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "modernc.org/sqlite"
)

//go:embed emb
var efs embed.FS

var (
	AllCorpora = MakeCorpusVault()
)

// CorpusVault - there should be only one of these; it contains every loaded corpus
type CorpusVault struct {
	CorpusMap map[string]bow.Corpus
	mutex     sync.RWMutex
}

func MakeCorpusVault() *CorpusVault {
	return &CorpusVault{
		CorpusMap: make(map[string]bow.Corpus),
	}
}

func (cv *CorpusVault) Insert(name string, c bow.Corpus) {
	cv.mutex.Lock()
	defer cv.mutex.Unlock()
	cv.CorpusMap[name] = c
}

func (cv *CorpusVault) Get(name string) (bow.Corpus, bool) {
	cv.mutex.RLock()
	defer cv.mutex.RUnlock()
	c, t := cv.CorpusMap[name]
	return c, t
}

func (cv *CorpusVault) Delete(name string) {
	cv.mutex.Lock()
	defer cv.mutex.Unlock()
	delete(cv.CorpusMap, name)
}

func (cv *CorpusVault) Names() []string {
	cv.mutex.RLock()
	defer cv.mutex.RUnlock()
	return StringMapKeysIntoSlice(cv.CorpusMap)
}

//
// LOADERS: this is where the file/db I/O lives; the builder in internal/bow never touches a disk
//

// loadcorpusdelimited - two-plus columns: document identifier, raw text; extra columns fold into the text
func loadcorpusdelimited(r io.Reader, comma rune) (bow.Corpus, error) {
	rdr := csv.NewReader(r)
	rdr.Comma = comma
	rdr.FieldsPerRecord = -1
	rdr.LazyQuotes = true

	var c bow.Corpus
	for {
		record, err := rdr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) < 2 {
			return nil, fmt.Errorf("corpus row needs at least two columns, got %d", len(record))
		}
		c = append(c, bow.Document{ID: record[0], Text: strings.Join(record[1:], " ")})
		if len(c) > Config.MaxCorpusDocs {
			return nil, fmt.Errorf("corpus exceeds the %d document limit", Config.MaxCorpusDocs)
		}
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// loadcorpusfile - load a .tsv or .csv corpus from disk
func loadcorpusfile(path string) (bow.Corpus, error) {
	comma := '\t'
	if strings.HasSuffix(path, ".csv") {
		comma = ','
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return loadcorpusdelimited(f, comma)
}

// loadcorpussqlite - load a corpus from a sqlite table shaped (id TEXT, txt TEXT)
func loadcorpussqlite(dbpath string, table string) (bow.Corpus, error) {
	const (
		Q = `SELECT id, txt FROM %s ORDER BY rowid`
	)

	db, err := sql.Open("sqlite", dbpath)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(fmt.Sprintf(Q, table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var c bow.Corpus
	for rows.Next() {
		var d bow.Document
		if err := rows.Scan(&d.ID, &d.Text); err != nil {
			return nil, err
		}
		c = append(c, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// loadcorpuspg - load a corpus from a postgres table shaped (id TEXT, txt TEXT)
func loadcorpuspg(ctx context.Context, table string) (bow.Corpus, error) {
	const (
		U = `postgres://%s:%s@%s:%d/%s`
		Q = `SELECT id, txt FROM %s ORDER BY id`
	)

	l := Config.PGLogin
	url := fmt.Sprintf(U, l.User, l.Pass, l.Host, l.Port, l.DBName)

	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, err
	}
	defer pool.Close()

	rows, err := pool.Query(ctx, fmt.Sprintf(Q, table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var c bow.Corpus
	for rows.Next() {
		var d bow.Document
		if err := rows.Scan(&d.ID, &d.Text); err != nil {
			return nil, err
		}
		c = append(c, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// loadembeddedcorpora - register the corpora that ship inside the binary
func loadembeddedcorpora() {
	const (
		MSG1 = "registered embedded corpus '%s' (%d documents)"
	)

	ee, err := fs.Glob(efs, "emb/corpora/*.tsv")
	chke(err)

	for _, e := range ee {
		f, err := efs.Open(e)
		chke(err)
		c, err := loadcorpusdelimited(f, '\t')
		chke(err)
		_ = f.Close()

		name := strings.TrimSuffix(filepath.Base(e), ".tsv")
		AllCorpora.Insert(name, c)
		msg(fmt.Sprintf(MSG1, name, len(c)), MSGFYI)
	}
}

// registercorpus - validate, warn about degenerate input, and stash
func registercorpus(name string, c bow.Corpus) error {
	const (
		WARN = "corpus '%s' normalizes to an empty vocabulary; model fits will fail downstream"
	)

	b := bow.NewBuilder(readstopconfig())
	b.Workers = Config.WorkerCount
	dtm, err := b.Matrix(c)
	if err != nil {
		return err
	}
	if dtm.Warning() != nil {
		// a signal, not a failure: the caller may still want the corpus registered
		msg(fmt.Sprintf(WARN, name), MSGWARN)
	}

	AllCorpora.Insert(name, c)
	return nil
}
