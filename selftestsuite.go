//    ToposGoServer
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"
	"time"

	"github.com/e-gun/ToposGoServer/internal/bow"
	"github.com/e-gun/wego/pkg/embedding"
)

// time tests: exercise the whole modeling pipeline against the embedded corpus

// runselftests - selftestsuite() in a goroutine so the server can come up meanwhile
func runselftests() {
	if Config.SelfTest {
		go selftestsuite()
	}
}

// selftestsuite - iterate through the pipeline stages and report the timing of each
func selftestsuite() {
	const (
		MSG0 = "running the self-test suite against corpus '%s'"
		MSG1 = "built the document-term matrix: %d documents x %d terms"
		MSG2 = "survey ran %d models"
		MSG3 = "trained and cached w2v embeddings: %d words"
		MSG4 = "fetched embeddings from the artifact store"
		MSG5 = "self-test suite complete"
		FAIL = "self-test stage failed: %s"
	)

	start := time.Now()
	previous := time.Now()

	cc, ok := AllCorpora.Get(DEFAULTCORPUSID)
	if !ok {
		msg(fmt.Sprintf(FAIL, "no embedded corpus"), MSGCRIT)
		return
	}

	msg(fmt.Sprintf(MSG0, DEFAULTCORPUSID), MSGMAND)

	// [st1] normalization and matrix construction
	b := bow.NewBuilder(readstopconfig())
	b.Workers = Config.WorkerCount
	dtm, err := b.Matrix(cc)
	if err != nil {
		msg(fmt.Sprintf(FAIL, err.Error()), MSGCRIT)
		return
	}
	nr, nc := dtm.Dims()
	timetracker("st1", fmt.Sprintf(MSG1, nr, nc), start, previous)
	previous = time.Now()

	// [st2] the full survey
	sv, err := runsurvey(DEFAULTCORPUSID, cc)
	if err != nil {
		msg(fmt.Sprintf(FAIL, err.Error()), MSGCRIT)
		return
	}
	timetracker("st2", fmt.Sprintf(MSG2, len(sv.Reports)), start, previous)
	previous = time.Now()

	// [st3] embeddings into the artifact store
	fp := fingerprintmodel(cc, readstopconfig(), "w2v", w2vvectorconfig())
	jid := AllJobs.NewJob(DEFAULTCORPUSID, "w2v")
	embs, err := generateembeddings("w2v", dtm.TextBlock(), jid)
	AllJobs.Finish(jid)
	if err != nil {
		msg(fmt.Sprintf(FAIL, err.Error()), MSGCRIT)
		return
	}
	artifactadd(fp, "w2v", embs)
	timetracker("st3", fmt.Sprintf(MSG3, len(embs)), start, previous)
	previous = time.Now()

	// [st4] and back out again
	var fetched embedding.Embeddings
	if !artifactcheck(fp) {
		msg(fmt.Sprintf(FAIL, "fingerprint vanished from the artifact store"), MSGCRIT)
		return
	}
	if err = artifactfetch(fp, &fetched); err != nil {
		msg(fmt.Sprintf(FAIL, err.Error()), MSGCRIT)
		return
	}
	timetracker("st4", MSG4, start, previous)

	artifactcount(MSGNOTE)
	artifactsize(MSGNOTE)

	msg(MSG5, MSGMAND)
}
