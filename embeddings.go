//    ToposGoServer
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/e-gun/wego/pkg/embedding"
	"github.com/e-gun/wego/pkg/model"
	"github.com/e-gun/wego/pkg/model/glove"
	"github.com/e-gun/wego/pkg/model/lexvec"
	"github.com/e-gun/wego/pkg/model/modelutil/vector"
	"github.com/e-gun/wego/pkg/model/word2vec"
	"github.com/e-gun/wego/pkg/search"
)

// the embedding modelers are surveyed alongside the matrix-based fitters: the
// corpus is handed over as one normalized text block and everything else is
// the library's business

var (
	DefaultW2VVectors = word2vec.Options{
		BatchSize:          1024,
		Dim:                125,
		DocInMemory:        true,
		Goroutines:         20,
		Initlr:             0.025,
		Iter:               15,
		LogBatch:           100000,
		MaxCount:           -1,
		MaxDepth:           150,
		MinCount:           2,
		MinLR:              0.0000025,
		ModelType:          "skipgram",
		NegativeSampleSize: 5,
		OptimizerType:      "hs",
		SubsampleThreshold: 0.001,
		ToLower:            false,
		UpdateLRBatch:      100000,
		Verbose:            false,
		Window:             8,
	}
	DefaultLexVecVectors = lexvec.Options{
		BatchSize:          1024,
		Dim:                125,
		DocInMemory:        true,
		Goroutines:         20,
		Initlr:             0.025,
		Iter:               15,
		LogBatch:           100000,
		MaxCount:           -1,
		MinCount:           2,
		MinLR:              0.025 * 1.0e-4,
		NegativeSampleSize: 5,
		RelationType:       "ppmi",
		Smooth:             0.75,
		SubsampleThreshold: 1.0e-3,
		ToLower:            false,
		UpdateLRBatch:      100000,
		Verbose:            false,
		Window:             8,
	}
	DefaultGloveVectors = glove.Options{
		Alpha:              0.55,
		BatchSize:          1024,
		CountType:          "inc",
		Dim:                75,
		DocInMemory:        true,
		Goroutines:         20,
		Initlr:             0.025,
		Iter:               25,
		LogBatch:           100000,
		MaxCount:           -1,
		MinCount:           2,
		SolverType:         "adagrad",
		SubsampleThreshold: 0.001,
		Verbose:            false,
		Window:             8,
		Xmax:               90,
	}
)

// w2vvectorconfig - read the CONFIGVECTORW2V file and return word2vec.Options; write the defaults if the file does not exist
func w2vvectorconfig() word2vec.Options {
	cfg := DefaultW2VVectors
	cfg.Goroutines = runtime.NumCPU()
	readwritevectorconfig(CONFIGVECTORW2V, &cfg)
	return cfg
}

// glovevectorconfig - as w2vvectorconfig() but for glove
func glovevectorconfig() glove.Options {
	cfg := DefaultGloveVectors
	cfg.Goroutines = runtime.NumCPU()
	readwritevectorconfig(CONFIGVECTORGLV, &cfg)
	return cfg
}

// lexvecvectorconfig - as w2vvectorconfig() but for lexvec
func lexvecvectorconfig() lexvec.Options {
	cfg := DefaultLexVecVectors
	cfg.Goroutines = runtime.NumCPU()
	readwritevectorconfig(CONFIGVECTORLXV, &cfg)
	return cfg
}

// readwritevectorconfig - fill cfg from a json file in the config directory; write the file first if it is missing
func readwritevectorconfig(fn string, cfg any) {
	const (
		ERR1 = "readwritevectorconfig() cannot find UserHomeDir"
		ERR2 = "readwritevectorconfig() failed to parse "
		MSG1 = "wrote default vector configuration file "
		MSG2 = "read vector configuration from "
	)

	h, e := os.UserHomeDir()
	if e != nil {
		msg(ERR1, MSGCRIT)
		return
	}

	vf := fmt.Sprintf(CONFIGALTAPTH, h) + fn

	if _, yes := os.Stat(vf); yes != nil {
		content, err := json.MarshalIndent(cfg, JSONINDENT, JSONINDENT)
		chke(err)
		err = os.WriteFile(vf, content, WRITEPERMS)
		chke(err)
		msg(MSG1+fn, MSGPEEK)
		return
	}

	loaded, _ := os.Open(vf)
	decoder := json.NewDecoder(loaded)
	if err := decoder.Decode(cfg); err != nil {
		msg(ERR2+fn, MSGCRIT)
	}
	_ = loaded.Close()
	msg(MSG2+fn, MSGTMI)
}

// generateembeddings - train semantic vector embeddings over a normalized text block
func generateembeddings(modeltype string, textblock string, jobid string) (embedding.Embeddings, error) {
	const (
		FAIL1 = "model initialization failed"
		FAIL2 = "generateembeddings() failed to train vector embeddings"
		FAIL3 = "generateembeddings() failed to save vector embeddings"
		FAIL4 = "generateembeddings() failed to load vector embeddings"
		MSG1  = "generateembeddings() trained a %s model (%.3fs)"
	)

	start := time.Now()

	var vmodel model.Model
	var err error
	var ti int

	switch modeltype {
	case "glove":
		cfg := glovevectorconfig()
		vmodel, err = glove.NewForOptions(cfg)
		ti = cfg.Iter
	case "lexvec":
		cfg := lexvecvectorconfig()
		vmodel, err = lexvec.NewForOptions(cfg)
		ti = cfg.Iter
	default:
		cfg := w2vvectorconfig()
		vmodel, err = word2vec.NewForOptions(cfg)
		ti = cfg.Iter
	}
	if err != nil {
		msg(FAIL1, MSGWARN)
		return nil, err
	}

	// Train() wants an io.ReadSeeker; the buffers keep the disk out of it
	b := bytes.NewReader([]byte(textblock))

	finished := make(chan error)

	// .Train() but do not block, so .Reporter() can feed the job registry
	go func() {
		finished <- vmodel.Train(b)
	}()

	ct := make(chan int)
	rep := make(chan string)
	go vmodel.Reporter(ct, rep)

	done := make(chan struct{})
	go reportprogress(jobid, ti, ct, rep, done)

	err = <-finished
	close(done)
	if err != nil {
		msg(FAIL2, MSGWARN)
		return nil, err
	}
	msg(fmt.Sprintf(MSG1, modeltype, time.Now().Sub(start).Seconds()), MSGTMI)

	var buf bytes.Buffer
	w := io.Writer(&buf)
	if err = vmodel.Save(w, vector.Agg); err != nil {
		msg(FAIL3, MSGNOTE)
		return nil, err
	}

	r := io.Reader(&buf)
	embs, err := embedding.Load(r)
	if err != nil {
		msg(FAIL4, MSGNOTE)
		return nil, err
	}

	return embs, nil
}

// reportprogress - feed Reporter output into the job registry; Reporter goes
// silent once training ends, so done is the only reliable release
func reportprogress(jobid string, total int, ct <-chan int, rep <-chan string, done <-chan struct{}) {
	const (
		VMSG = "training run %d out of %d total iterations"
	)

	in := 0
	for {
		select {
		case m := <-ct:
			in = m
		case <-rep:
			// the string report duplicates what the counter gives us
		case <-done:
			return
		}
		AllJobs.Update(jobid, fmt.Sprintf(VMSG, in, total), in, total)
	}
}

// generateneighborsdata - the nearest neighbors of one term, and of each of those neighbors
func generateneighborsdata(term string, embs embedding.Embeddings, ncount int) (map[string]search.Neighbors, error) {
	const (
		FAIL1 = "generateneighborsdata() could not find neighbors of a neighbor: '%s' (via '%s')"
	)

	if ncount < VECTORNEIGHBORSMIN || ncount > VECTORNEIGHBORSMAX {
		ncount = VECTORNEIGHBORS
	}

	searcher, err := search.New(embs...)
	if err != nil {
		return nil, err
	}

	nn := make(map[string]search.Neighbors)
	neighbors, err := searcher.SearchInternal(term, ncount)
	if err != nil {
		return nil, err
	}

	nn[term] = neighbors
	for _, n := range neighbors {
		meta, e := searcher.SearchInternal(n.Word, ncount)
		if e != nil {
			msg(fmt.Sprintf(FAIL1, n.Word, term), MSGFYI)
			continue
		}
		nn[n.Word] = meta
	}

	return nn, nil
}
