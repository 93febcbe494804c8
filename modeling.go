//    ToposGoServer
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/e-gun/ToposGoServer/internal/bow"
	"github.com/e-gun/nlp"
	"gonum.org/v1/gonum/mat"
)

// every fitter below is a single call into the nlp package; this file only
// shapes the input, times the call, and inspects the output

// ModelReport - what the survey records for one fitter on one corpus
type ModelReport struct {
	Model   string
	Corpus  string
	Docs    int
	Terms   int
	OutRows int
	OutCols int
	Elapsed time.Duration
	Notes   string
}

// ldamodel - fit a Latent Dirichlet Allocation topic model over the normalized corpus
func ldamodel(ntopics int, iterations int, docs []string, vectoriser *nlp.CountVectoriser) (mat.Matrix, mat.Matrix, error) {
	lda := nlp.NewLatentDirichletAllocation(ntopics)
	lda.Processes = Config.WorkerCount
	lda.Iterations = iterations
	lda.TransformationPasses = LDAXFORMPASSES

	pipeline := nlp.NewPipeline(vectoriser, lda)

	docsOverTopics, err := pipeline.FitTransform(docs...)
	if err != nil {
		return nil, nil, err
	}

	// rows are topics, columns are documents
	return docsOverTopics, lda.Components(), nil
}

// runlda - LDA over a prepared document-term pipeline; returns the two distributions plus the timing report
func runlda(corpusname string, dtm *bow.DocTermMatrix, ntopics int, iterations int) (mat.Matrix, mat.Matrix, *nlp.CountVectoriser, ModelReport, error) {
	const (
		NOTES = "k=%d, iterations=%d"
	)

	docs := dtm.JoinedDocs()
	nr, nc := dtm.Dims()

	// stopwords came out in internal/bow; the vectoriser only counts
	vectoriser := nlp.NewCountVectoriser()

	start := time.Now()
	dot, tow, err := ldamodel(ntopics, iterations, docs, vectoriser)
	rpt := ModelReport{
		Model:   "lda",
		Corpus:  corpusname,
		Docs:    nr,
		Terms:   nc,
		Elapsed: time.Since(start),
		Notes:   fmt.Sprintf(NOTES, ntopics, iterations),
	}
	if err != nil {
		return nil, nil, nil, rpt, err
	}

	rpt.OutRows, rpt.OutCols = dot.Dims()
	return dot, tow, vectoriser, rpt, nil
}

// runlsa - latent semantic analysis: tf-idf weighting then rank-reduction via truncated SVD
func runlsa(corpusname string, dtm *bow.DocTermMatrix, k int) (mat.Matrix, ModelReport, error) {
	const (
		NOTES = "k=%d, tf-idf weighted"
	)

	docs := dtm.JoinedDocs()
	nr, nc := dtm.Dims()

	pipeline := nlp.NewPipeline(nlp.NewCountVectoriser(), nlp.NewTfidfTransformer(), nlp.NewTruncatedSVD(k))

	start := time.Now()
	reduced, err := pipeline.FitTransform(docs...)
	rpt := ModelReport{
		Model:   "lsa",
		Corpus:  corpusname,
		Docs:    nr,
		Terms:   nc,
		Elapsed: time.Since(start),
		Notes:   fmt.Sprintf(NOTES, k),
	}
	if err != nil {
		return nil, rpt, err
	}

	rpt.OutRows, rpt.OutCols = reduced.Dims()
	return reduced, rpt, nil
}

// runtfidf - term-frequency / inverse-document-frequency weighting alone
func runtfidf(corpusname string, dtm *bow.DocTermMatrix) (mat.Matrix, ModelReport, error) {
	docs := dtm.JoinedDocs()
	nr, nc := dtm.Dims()

	pipeline := nlp.NewPipeline(nlp.NewCountVectoriser(), nlp.NewTfidfTransformer())

	start := time.Now()
	weighted, err := pipeline.FitTransform(docs...)
	rpt := ModelReport{
		Model:   "tfidf",
		Corpus:  corpusname,
		Docs:    nr,
		Terms:   nc,
		Elapsed: time.Since(start),
	}
	if err != nil {
		return nil, rpt, err
	}

	rpt.OutRows, rpt.OutCols = weighted.Dims()
	return weighted, rpt, nil
}

//
// TOPIC INSPECTION
//

type topicsorter struct {
	W string
	V float64
}

// ldasortedtopics - the most significant words for each topic
func ldasortedtopics(topicsOverWords mat.Matrix, vectoriser *nlp.CountVectoriser, topn int) map[int][]topicsorter {
	tr, tc := topicsOverWords.Dims()

	vocab := make([]string, len(vectoriser.Vocabulary))
	for k, v := range vectoriser.Vocabulary {
		vocab[v] = k
	}

	if topn > tc {
		topn = tc
	}

	tops := make(map[int][]topicsorter)
	for topic := 0; topic < tr; topic++ {
		tss := make([]topicsorter, tc)
		for word := 0; word < tc; word++ {
			tss[word] = topicsorter{
				W: vocab[word],
				V: topicsOverWords.At(topic, word),
			}
		}
		sort.Slice(tss, func(i, j int) bool {
			return tss[i].V > tss[j].V
		})
		tops[topic] = tss[0:topn]
	}
	return tops
}

// ldadocpertopic - N documents have topic X as their dominant topic
func ldadocpertopic(ntopics int, docsOverTopics mat.Matrix) []int {
	counter := make([]int, ntopics)
	dr, dc := docsOverTopics.Dims()
	for doc := 0; doc < dc; doc++ {
		max := float64(0)
		winner := 0
		for topic := 0; topic < dr; topic++ {
			if docsOverTopics.At(topic, doc) > max {
				winner = topic
				max = docsOverTopics.At(topic, doc)
			}
		}
		counter[winner] += 1
	}
	return counter
}

// ldadocbyweight - scaled total accumulated weight of each topic
func ldadocbyweight(ntopics int, docsOverTopics mat.Matrix) []float64 {
	counter := make([]float64, ntopics)
	dr, dc := docsOverTopics.Dims()
	for doc := 0; doc < dc; doc++ {
		for topic := 0; topic < dr; topic++ {
			counter[topic] += docsOverTopics.At(topic, doc)
		}
	}

	high := float64(0)
	for i := 0; i < ntopics; i++ {
		if counter[i] > high {
			high = counter[i]
		}
	}
	if high == 0 {
		return counter
	}

	scaled := make([]float64, ntopics)
	for i := 0; i < ntopics; i++ {
		scaled[i] = counter[i] / high
	}
	return scaled
}

// ldatopdocuments - the document most associated with each topic
func ldatopdocuments(dtm *bow.DocTermMatrix, docsOverTopics mat.Matrix) []topicsorter {
	rows, columns := docsOverTopics.Dims()

	winners := make([]topicsorter, rows)
	for topic := 0; topic < rows; topic++ {
		max := float64(0)
		winner := 0
		for doc := 0; doc < columns; doc++ {
			if docsOverTopics.At(topic, doc) > max {
				winner = doc
				max = docsOverTopics.At(topic, doc)
			}
		}
		winners[topic] = topicsorter{W: dtm.DocIDs[winner], V: max}
	}
	return winners
}
