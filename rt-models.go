//    ToposGoServer
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/e-gun/ToposGoServer/internal/bow"
	"github.com/e-gun/wego/pkg/embedding"
	"github.com/labstack/echo/v4"
)

// ModelOutputJSON - what the JS on the other side expects back from a model run
type ModelOutputJSON struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Found   string `json:"found"`
	Image   string `json:"image"`
	JS      string `json:"js"`
}

// LDAArtifact - the cacheable output of one LDA run
type LDAArtifact struct {
	Tables []string
	Image  string
	Bar    string
}

// sessioncorpus - the corpus this client is working on; 404-able error if it is gone
func sessioncorpus(c echo.Context) (string, bow.Corpus, *bow.DocTermMatrix, error) {
	name := c.Param("corpus")
	if name == "" {
		user := readUUIDCookie(c)
		name = AllSessions.GetSess(user).Corpus
	}

	cc, ok := AllCorpora.Get(name)
	if !ok {
		return name, nil, nil, fmt.Errorf("corpus '%s' is not loaded", name)
	}

	b := bow.NewBuilder(readstopconfig())
	b.Workers = Config.WorkerCount
	dtm, err := b.Matrix(cc)
	if err != nil {
		return name, nil, nil, err
	}
	return name, cc, dtm, nil
}

func modelfail(c echo.Context, err error) error {
	return c.JSONPretty(http.StatusNotFound, map[string]string{"error": err.Error()}, JSONINDENT)
}

// RtSurvey - run every modeler over one corpus and return the comparison tables
func RtSurvey(c echo.Context) error {
	name := c.Param("corpus")
	if name == "" {
		user := readUUIDCookie(c)
		name = AllSessions.GetSess(user).Corpus
	}

	cc, ok := AllCorpora.Get(name)
	if !ok {
		return modelfail(c, fmt.Errorf("corpus '%s' is not loaded", name))
	}

	sv, err := runsurvey(name, cc)
	if err != nil {
		return modelfail(c, err)
	}

	out := ModelOutputJSON{
		Title:   fmt.Sprintf("Survey of '%s'", name),
		Summary: fmt.Sprintf("%d models in %.3fs", len(sv.Reports), sv.Elapsed.Seconds()),
		Found:   strings.Join(sv.Tables, ""),
	}
	return JSONresponse(c, out)
}

// RtModelLDA - LDA tables for one corpus; cached under the model fingerprint
func RtModelLDA(c echo.Context) error {
	const (
		MSG1 = "RtModelLDA() serving cached model for '%s'"
	)

	user := readUUIDCookie(c)
	se := AllSessions.GetSess(user)
	ntopics := se.NumTopics

	name, _, dtm, err := sessioncorpus(c)
	if err != nil {
		return modelfail(c, err)
	}
	if w := dtm.Warning(); w != nil {
		return modelfail(c, w)
	}

	cc, _ := AllCorpora.Get(name)
	type ldaopts struct {
		K, Iterations, Passes int
	}
	fp := fingerprintmodel(cc, readstopconfig(), "lda", ldaopts{ntopics, se.LDAIterations, LDAXFORMPASSES})

	var art LDAArtifact
	if artifactcheck(fp) && artifactfetch(fp, &art) == nil {
		msg(fmt.Sprintf(MSG1, name), MSGFYI)
		return ldaoutput(c, name, art)
	}

	dot, tow, vectoriser, _, err := runlda(name, dtm, ntopics, se.LDAIterations)
	if err != nil {
		return modelfail(c, err)
	}

	art.Tables = append(art.Tables, ldatopicsummary(ntopics, tow, vectoriser, dot))
	art.Tables = append(art.Tables, ldatopdocumentstable(dtm, dot))
	art.Bar = topicbarchart(ldadocbyweight(ntopics, dot))
	if se.LDAGraph {
		art.Image = ldaplot(ntopics, dot, dtm.DocIDs)
	}

	artifactadd(fp, "lda", art)

	return ldaoutput(c, name, art)
}

func ldaoutput(c echo.Context, name string, art LDAArtifact) error {
	out := ModelOutputJSON{
		Title: fmt.Sprintf("LDA topics for '%s'", name),
		Found: strings.Join(art.Tables, "") + art.Bar,
		Image: art.Image,
	}
	return JSONresponse(c, out)
}

// RtModelLSA - latent semantic analysis shape report
func RtModelLSA(c echo.Context) error {
	name, _, dtm, err := sessioncorpus(c)
	if err != nil {
		return modelfail(c, err)
	}
	if w := dtm.Warning(); w != nil {
		return modelfail(c, w)
	}

	_, rpt, err := runlsa(name, dtm, LSADIMENSIONS)
	if err != nil {
		return modelfail(c, err)
	}
	return JSONresponse(c, rpt)
}

// RtModelTFIDF - tf-idf weighting shape report
func RtModelTFIDF(c echo.Context) error {
	name, _, dtm, err := sessioncorpus(c)
	if err != nil {
		return modelfail(c, err)
	}
	if w := dtm.Warning(); w != nil {
		return modelfail(c, w)
	}

	_, rpt, err := runtfidf(name, dtm)
	if err != nil {
		return modelfail(c, err)
	}
	return JSONresponse(c, rpt)
}

// RtModelNN - nearest neighbors of one word: "/model/nn/sample?word=cat"
func RtModelNN(c echo.Context) error {
	const (
		MSG1 = "RtModelNN() serving cached embeddings for '%s'"
		NOWD = "no word provided"
	)

	word := c.QueryParam("word")
	if word == "" {
		return modelfail(c, errors.New(NOWD))
	}

	user := readUUIDCookie(c)
	se := AllSessions.GetSess(user)

	name, cc, dtm, err := sessioncorpus(c)
	if err != nil {
		return modelfail(c, err)
	}
	if w := dtm.Warning(); w != nil {
		return modelfail(c, w)
	}

	// cost: embeddings are expensive to train but cheap to cache
	var opts any
	switch se.Modeler {
	case "glove":
		opts = glovevectorconfig()
	case "lexvec":
		opts = lexvecvectorconfig()
	default:
		opts = w2vvectorconfig()
	}
	fp := fingerprintmodel(cc, readstopconfig(), se.Modeler, opts)

	var embs embedding.Embeddings
	if artifactcheck(fp) && artifactfetch(fp, &embs) == nil {
		msg(fmt.Sprintf(MSG1, name), MSGFYI)
	} else {
		jid := AllJobs.NewJob(name, se.Modeler)
		embs, err = generateembeddings(se.Modeler, dtm.TextBlock(), jid)
		AllJobs.Finish(jid)
		if err != nil {
			return modelfail(c, err)
		}
		artifactadd(fp, se.Modeler, embs)
	}

	nn, err := generateneighborsdata(word, embs, se.NeighborCount)
	if err != nil {
		return modelfail(c, err)
	}

	settings := fmt.Sprintf("%s; corpus: %s; neighbors: %d", se.Modeler, name, se.NeighborCount)
	img := buildneighborsgraph(word, settings, nn, se.GraphExt)

	out := ModelOutputJSON{
		Title: fmt.Sprintf("Neighbors of '%s' in '%s'", word, name),
		Image: img,
	}
	return JSONresponse(c, out)
}

// RtModelGraph - t-SNE projection of the LDA document-topic distributions
func RtModelGraph(c echo.Context) error {
	user := readUUIDCookie(c)
	se := AllSessions.GetSess(user)
	ntopics := se.NumTopics

	name, _, dtm, err := sessioncorpus(c)
	if err != nil {
		return modelfail(c, err)
	}
	if w := dtm.Warning(); w != nil {
		return modelfail(c, w)
	}

	dot, _, _, _, err := runlda(name, dtm, ntopics, se.LDAIterations)
	if err != nil {
		return modelfail(c, err)
	}

	out := ModelOutputJSON{
		Title: fmt.Sprintf("Topic projection for '%s'", name),
		Found: topicbarchart(ldadocbyweight(ntopics, dot)),
		Image: ldaplot(ntopics, dot, dtm.DocIDs),
	}
	return JSONresponse(c, out)
}

// RtResetArtifacts - drop the stored models
func RtResetArtifacts(c echo.Context) error {
	artifactreset()
	return c.Redirect(http.StatusFound, "/")
}
