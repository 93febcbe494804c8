//    ToposGoServer
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/e-gun/ToposGoServer/internal/bow"
	"github.com/e-gun/nlp"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/gonum/mat"
)

// the point of the exercise: run every modeler over the same corpus and
// report the results side by side so the packages can be compared

// SurveyResult - everything one corpus yields when all the fitters run over it
type SurveyResult struct {
	Corpus  string
	Reports []ModelReport
	Tables  []string
	Elapsed time.Duration
}

// runsurvey - fit every model against one corpus and collect the reports
func runsurvey(corpusname string, c bow.Corpus) (SurveyResult, error) {
	const (
		MSG1 = "runsurvey() is modeling '%s': %d documents"
		FAIL = "runsurvey() skipped %s: %s"
	)

	start := time.Now()

	sv := SurveyResult{Corpus: corpusname}

	b := bow.NewBuilder(readstopconfig())
	b.Workers = Config.WorkerCount

	dtm, err := b.Matrix(c)
	if err != nil {
		return sv, err
	}

	// the printer gets you "10,000 documents" instead of "10000 documents"
	prt := message.NewPrinter(language.English)
	msg(prt.Sprintf(MSG1, corpusname, len(c)), MSGNOTE)

	if w := dtm.Warning(); w != nil {
		sv.Tables = append(sv.Tables, fmt.Sprintf(`<p class="surveywarning">%s</p>`, w.Error()))
		sv.Elapsed = time.Since(start)
		return sv, nil
	}

	ntopics := Config.NumTopics

	dot, tow, vectoriser, rpt, err := runlda(corpusname, dtm, ntopics, Config.LDAIterations)
	if err != nil {
		msg(fmt.Sprintf(FAIL, "lda", err.Error()), MSGWARN)
	} else {
		sv.Reports = append(sv.Reports, rpt)
		sv.Tables = append(sv.Tables, ldatopicsummary(ntopics, tow, vectoriser, dot))
		sv.Tables = append(sv.Tables, ldatopdocumentstable(dtm, dot))
	}

	if _, rpt, err = runlsa(corpusname, dtm, LSADIMENSIONS); err != nil {
		msg(fmt.Sprintf(FAIL, "lsa", err.Error()), MSGWARN)
	} else {
		sv.Reports = append(sv.Reports, rpt)
	}

	if _, rpt, err = runtfidf(corpusname, dtm); err != nil {
		msg(fmt.Sprintf(FAIL, "tfidf", err.Error()), MSGWARN)
	} else {
		sv.Reports = append(sv.Reports, rpt)
	}

	for _, mt := range []string{"w2v", "glove", "lexvec"} {
		es := time.Now()
		jid := AllJobs.NewJob(corpusname, mt)
		embs, err := generateembeddings(mt, dtm.TextBlock(), jid)
		AllJobs.Finish(jid)
		if err != nil {
			msg(fmt.Sprintf(FAIL, mt, err.Error()), MSGWARN)
			continue
		}
		nr, nc := dtm.Dims()
		sv.Reports = append(sv.Reports, ModelReport{
			Model:   mt,
			Corpus:  corpusname,
			Docs:    nr,
			Terms:   nc,
			OutRows: len(embs),
			Elapsed: time.Since(es),
		})
	}

	sv.Tables = append([]string{surveyreporttable(sv.Reports)}, sv.Tables...)
	sv.Elapsed = time.Since(start)

	return sv, nil
}

// surveyreporttable - html table comparing every fitter that ran
func surveyreporttable(reports []ModelReport) string {
	const (
		NTH = 2

		FULLTABLE = `
	<table class="surveyreports"><tbody>
	%s
	</tbody></table>
	<hr>`

		TABLETOP = `
    <tr class="vectorrow">
        <td class="vectorrank" colspan = "6">Model survey</td>
    </tr>
	<tr class="vectorrow">
		<td class="vectorrank">Model</td>
		<td class="vectorrank">Documents</td>
		<td class="vectorrank">Terms</td>
		<td class="vectorrank">Output shape</td>
		<td class="vectorrank">Elapsed</td>
		<td class="vectorrank">Notes</td>
	</tr>
    %s`

		TABLEROW = `
	<tr class="%s">%s
	</tr>`

		TABLEELEM = `
		<td class="vectorrank">%s</td>
		<td class="vectorscore">%d</td>
		<td class="vectorscore">%d</td>
		<td class="vectorscore">%d x %d</td>
		<td class="vectorscore">%.3fs</td>
		<td class="vectorsent">%s</td>`
	)

	var tablecolumn []string
	for _, r := range reports {
		e := fmt.Sprintf(TABLEELEM, r.Model, r.Docs, r.Terms, r.OutRows, r.OutCols, r.Elapsed.Seconds(), r.Notes)
		tablecolumn = append(tablecolumn, e)
	}

	var tablerows []string
	for i := range tablecolumn {
		rn := "vectorrow"
		if i%NTH == 0 {
			rn = "nthrow"
		}
		tablerows = append(tablerows, fmt.Sprintf(TABLEROW, rn, tablecolumn[i]))
	}

	tableout := fmt.Sprintf(TABLETOP, strings.Join(tablerows, "\n"))
	tableout = fmt.Sprintf(FULLTABLE, tableout)
	return tableout
}

// ldatopicsummary - html table that reports on top words and topic weights in the model
func ldatopicsummary(ntopics int, topicsOverWords mat.Matrix, vectoriser *nlp.CountVectoriser, docsOverTopics mat.Matrix) string {
	const (
		NTH = 2

		FULLTABLE = `
	<table class="ldawords"><tbody>
	%s
	</tbody></table>
	`

		TABLETOP = `
    <tr class="vectorrow">
        <td class="vectorrank" colspan = "4">Topic model of the corpus via Latent Dirichlet Allocation</td>
    </tr>
	<tr class="vectorrow">
		<td class="vectorrank">Topic</td>
		<td class="vectorrank">Top %d words associated with each topic</td>
		<td class="vectorrank"># of documents with topic N as their dominant topic</td>
		<td class="vectorrank">scaled total accumulated weight of each topic</td>
	</tr>
    %s`

		TABLEROW = `
	<tr class="%s">%s
	</tr>`

		TABLEELEM = `
		<td class="vectorrank">%d</td>
		<td class="vectorsent">%s</td>
		<td class="vectorsent">%d (%.2f%%)</td>
		<td class="vectorsent">%.2f%%</td>`
	)

	tops := ldasortedtopics(topicsOverWords, vectoriser, LDATOPNWORDS)
	docspertopic := ldadocpertopic(ntopics, docsOverTopics)
	docsbyweight := ldadocbyweight(ntopics, docsOverTopics)

	tr, _ := topicsOverWords.Dims()
	_, dc := docsOverTopics.Dims()

	var tablecolumn []string
	for topic := 0; topic < tr; topic++ {
		ts := tops[topic]
		ww := make([]string, len(ts))
		for i := 0; i < len(ts); i++ {
			ww[i] = ts[i].W
		}
		data := strings.Join(ww, ", ")
		r := fmt.Sprintf(TABLEELEM, topic+1, data, docspertopic[topic], float64(docspertopic[topic])/float64(dc)*100, docsbyweight[topic]*100)
		tablecolumn = append(tablecolumn, r)
	}

	var tablerows []string
	for i := range tablecolumn {
		rn := "vectorrow"
		if i%NTH == 0 {
			rn = "nthrow"
		}
		tablerows = append(tablerows, fmt.Sprintf(TABLEROW, rn, tablecolumn[i]))
	}

	tableout := fmt.Sprintf(TABLETOP, LDATOPNWORDS, strings.Join(tablerows, "\n"))
	tableout = fmt.Sprintf(FULLTABLE, tableout)
	return tableout
}

// ldatopdocumentstable - html table reporting the documents most associated with each topic
func ldatopdocumentstable(dtm *bow.DocTermMatrix, docsOverTopics mat.Matrix) string {
	const (
		NTH = 2

		FULLTABLE = `
	<table class="ldadocuments"><tbody>
	%s
	</tbody></table>
	<hr>`

		TABLETOP = `
    <tr class="vectorrow">
        <td class="vectorrank" colspan = "4">Documents most associated with each topic</td>
    </tr>
	<tr class="vectorrow">
		<td class="vectorrank">Topic</td>
		<td class="vectorrank">Distance</td>
		<td class="vectorrank">Document</td>
		<td class="vectorrank">Normalized text</td>
	</tr>
    %s`

		TABLEROW = `
	<tr class="%s">%s
	</tr>`

		TABLEELEM = `
		<td class="vectorrank">%d</td>
		<td class="vectorscore">%.4f</td>
		<td class="vectorloc">%s</td>
		<td class="vectorsent">%s</td>`

		CLIP = 40 // tokens shown per winning document
	)

	winners := ldatopdocuments(dtm, docsOverTopics)

	clipped := func(id string) string {
		for i, did := range dtm.DocIDs {
			if did != id {
				continue
			}
			tt := dtm.Tokens[i]
			if len(tt) > CLIP {
				tt = tt[:CLIP]
			}
			return strings.Join(tt, " ")
		}
		return ""
	}

	var tablecolumn []string
	for i, w := range winners {
		r := fmt.Sprintf(TABLEELEM, i+1, w.V, w.W, clipped(w.W))
		tablecolumn = append(tablecolumn, r)
	}

	var tablerows []string
	for i := range tablecolumn {
		rn := "vectorrow"
		if i%NTH == 0 {
			rn = "nthrow"
		}
		tablerows = append(tablerows, fmt.Sprintf(TABLEROW, rn, tablecolumn[i]))
	}

	tableout := fmt.Sprintf(TABLETOP, strings.Join(tablerows, "\n"))
	tableout = fmt.Sprintf(FULLTABLE, tableout)
	return tableout
}
