//    ToposGoServer
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"bytes"
	"compress/gzip"
	"crypto/md5"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/e-gun/ToposGoServer/internal/bow"
	_ "modernc.org/sqlite"
)

// trained models are expensive and deterministic given (corpus, stops,
// normalizer, options); fingerprint that tuple and cache the output

var (
	ArtifactPool *sql.DB
	artifactonce sync.Once
)

// GetArtifactDB - lazily open (and initialize) the artifact database
func GetArtifactDB() *sql.DB {
	const (
		FAIL = "GetArtifactDB() could not open '%s'"
	)

	artifactonce.Do(func() {
		db, err := sql.Open("sqlite", Config.ArtifactDB)
		if err != nil {
			msg(fmt.Sprintf(FAIL, Config.ArtifactDB), MSGMAND)
			os.Exit(1)
		}
		ArtifactPool = db
		artifactdbinit()
	})
	return ArtifactPool
}

// artifactdbinit - create ARTIFACTTABLE
func artifactdbinit() {
	const (
		CREATE = `
			CREATE TABLE IF NOT EXISTS %s
			(
			  fingerprint character(32) PRIMARY KEY,
			  model       text,
			  payloadsize int,
			  payload     blob
			)`
	)
	ex := fmt.Sprintf(CREATE, ARTIFACTTABLE)
	_, err := ArtifactPool.Exec(ex)
	chke(err)
	msg("artifactdbinit(): success", MSGFYI)
}

// fingerprintmodel - derive a unique md5 for any given mix of corpus, stopwords, and model settings
func fingerprintmodel(c bow.Corpus, stops map[string]struct{}, model string, opts any) string {
	const (
		MSG1 = "fingerprintmodel(): "
		FAIL = "fingerprintmodel() failed to Marshal"
	)

	// unless you sort, you do not get repeatable results from a map
	ss := StringMapKeysIntoSlice(stops)

	var digest []string
	for _, d := range c {
		digest = append(digest, d.ID, d.Text)
	}
	sort.Strings(digest)

	f1, e1 := json.Marshal(digest)
	f2, e2 := json.Marshal(ss)
	f3, e3 := json.Marshal(opts)
	if e1 != nil || e2 != nil || e3 != nil {
		msg(FAIL, 0)
		os.Exit(1)
	}

	f1 = append(f1, f2...)
	f1 = append(f1, f3...)
	f1 = append(f1, []byte(model)...)
	f1 = append(f1, []byte(bow.NormalizerVersion)...)

	m := fmt.Sprintf("%x", md5.Sum(f1))
	msg(MSG1+m, MSGTMI)

	return m
}

// artifactcheck - has a model with this fingerprint already been stored?
func artifactcheck(fp string) bool {
	const (
		Q = `SELECT fingerprint FROM %s WHERE fingerprint = '%s' LIMIT 1`
		F = `artifactcheck() found %s`
	)

	q := fmt.Sprintf(Q, ARTIFACTTABLE, fp)

	var found string
	err := GetArtifactDB().QueryRow(q).Scan(&found)
	if err != nil {
		// "sql: no rows in result set" if you did not find the fingerprint
		return false
	}
	msg(fmt.Sprintf(F, found), MSGTMI)
	return true
}

// artifactadd - marshal, compress, and store one trained model under its fingerprint
func artifactadd(fp string, model string, payload any) {
	const (
		MSG1 = "artifactadd(): "
		MSG2 = "%s compression: %dk -> %dk (-> %.1f%%)"
		FAIL = "artifactadd() failed when calling json.Marshal(payload): nothing stored"
		INS  = `
			INSERT OR REPLACE INTO %s
				(fingerprint, model, payloadsize, payload)
			VALUES ('%s', '%s', ?, ?)`
		GZ = gzip.BestSpeed
	)

	pb, err := json.Marshal(payload)
	if err != nil {
		msg(FAIL, MSGNOTE)
		pb = []byte{}
	}

	l1 := len(pb)

	var buf bytes.Buffer
	zw, err := gzip.NewWriterLevel(&buf, GZ)
	chke(err)
	_, err = zw.Write(pb)
	chke(err)
	err = zw.Close()
	chke(err)

	b := buf.Bytes()
	l2 := len(b)

	ex := fmt.Sprintf(INS, ARTIFACTTABLE, fp, model)

	_, err = GetArtifactDB().Exec(ex, l2, b)
	chke(err)
	msg(MSG1+fp, MSGPEEK)

	msg(fmt.Sprintf(MSG2, fp, l1/1024, l2/1024, (float32(l2)/float32(l1))*100), MSGPEEK)
	buf.Reset()
}

// artifactfetch - get a stored model out of ARTIFACTTABLE and unmarshal it into payload
func artifactfetch(fp string, payload any) error {
	const (
		MSG1 = "artifactfetch(): "
		Q    = `SELECT payload FROM %s WHERE fingerprint = '%s' LIMIT 1`
	)

	q := fmt.Sprintf(Q, ARTIFACTTABLE, fp)
	var blob []byte
	if err := GetArtifactDB().QueryRow(q).Scan(&blob); err != nil {
		return err
	}

	// the data in the table is zipped and needs unzipping
	zr, err := gzip.NewReader(bytes.NewReader(blob))
	if err != nil {
		return err
	}
	decompr, err := io.ReadAll(zr)
	if err != nil {
		return err
	}
	if err = zr.Close(); err != nil {
		return err
	}

	if err = json.Unmarshal(decompr, payload); err != nil {
		return err
	}

	msg(MSG1+fp, MSGPEEK)
	return nil
}

// artifactreset - drop ARTIFACTTABLE
func artifactreset() {
	const (
		MSG1 = "artifactreset() dropped "
		MSG2 = "artifactreset(): 'DROP TABLE %s' returned an (ignored) error: \n\t%s"
		E    = `DROP TABLE %s`
	)
	ex := fmt.Sprintf(E, ARTIFACTTABLE)

	_, err := GetArtifactDB().Exec(ex)
	if err != nil {
		msg(fmt.Sprintf(MSG2, ARTIFACTTABLE, err.Error()), MSGFYI)
	} else {
		msg(MSG1+ARTIFACTTABLE, MSGNOTE)
		artifactdbinit()
	}
}

// artifactsize - how much space is the artifact store using?
func artifactsize(priority int) {
	const (
		SZQ  = "SELECT COALESCE(SUM(payloadsize), 0) AS total FROM " + ARTIFACTTABLE
		MSG4 = "Disk space used by stored models is currently %dKB"
	)
	var size int64

	err := GetArtifactDB().QueryRow(SZQ).Scan(&size)
	chke(err)
	msg(fmt.Sprintf(MSG4, size/1024), priority)
}

// artifactcount - how many models are stored?
func artifactcount(priority int) {
	const (
		SZQ  = "SELECT COUNT(fingerprint) AS total FROM " + ARTIFACTTABLE
		MSG4 = "Number of stored models: %d"
	)
	var size int64

	err := GetArtifactDB().QueryRow(SZQ).Scan(&size)
	if err != nil {
		if strings.Contains(err.Error(), "no such table") {
			artifactdbinit()
		}
		size = 0
	}
	msg(fmt.Sprintf(MSG4, size), priority)
}
