//    ToposGoServer
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"math"
	"regexp"

	tsne "github.com/e-gun/tsnemp/pkg"
	"github.com/e-gun/wego/pkg/search"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/mat"
)

//
// GRAPHING
//

// renderchart - yield the html+js for a single chart
func renderchart(g components.Charter) string {
	// go-echarts is "too clever" and opaque about how to not do things its way
	// we override their page.Render() to yield html+js (see the ModX and CustomX code below)
	// this gets injected to the "modelgraphing" div on frontpage.html

	p := components.NewPage()
	p.Renderer = NewCustomPageRender(p, p.Validate)

	p.Charts = append(p.Charts, g)
	p.Validate()

	var buf bytes.Buffer
	err := p.Render(&buf)
	chke(err)

	return buf.String()
}

// buildneighborsgraph - generate the html and js for a nearest neighbors graph
func buildneighborsgraph(coreword string, settings string, nn map[string]search.Neighbors, extended bool) string {
	// see also: https://echarts.apache.org/en/option.html#series-graph

	g := generategraph(coreword, settings, nn, extended)
	g.Validate()

	p := components.NewPage()
	p.Renderer = NewCustomPageRender(p, p.Validate)

	assets := g.GetAssets()
	for _, v := range assets.JSAssets.Values {
		p.JSAssets.Add(v)
	}
	for _, v := range assets.CSSAssets.Values {
		p.CSSAssets.Add(v)
	}

	p.Charts = append(p.Charts, g)
	p.Validate()

	var buf bytes.Buffer
	err := p.Render(&buf)
	chke(err)

	return buf.String()
}

func generategraph(coreword string, settings string, nn map[string]search.Neighbors, extended bool) *charts.Graph {
	const (
		REPULSION     = 6000
		GRAVITY       = .15
		EDGELEN       = 40
		SERIESNAME    = ""
		LAYOUTTYPE    = "force"
		LABELPOSITON  = "right"
		LINECURVINESS = 0       // from 0 to 1, but non-zero will double-up the lines...
		LINETYPE      = "solid" // "solid", "dashed", "dotted"
	)

	graph := newtitledgraph(settings, coreword)

	gnn, gll := neighborwebdata(coreword, nn, extended)

	graph.AddSeries(SERIESNAME, gnn, gll,
		charts.WithLabelOpts(
			opts.Label{
				Show:     true,
				Position: LABELPOSITON,
			},
		),
		charts.WithLineStyleOpts(
			opts.LineStyle{
				Curveness: LINECURVINESS,
				Type:      LINETYPE,
			}),
		charts.WithGraphChartOpts(
			// cf. https://echarts.apache.org/en/option.html#series-graph
			opts.GraphChart{
				Layout: LAYOUTTYPE,
				Force: &opts.GraphForce{
					Repulsion:  REPULSION,
					Gravity:    GRAVITY,
					EdgeLength: EDGELEN,
				},
				Roam:               true,
				FocusNodeAdjacency: true,
			},
		),
	)
	return graph
}

// neighborwebdata - the nodes and links of a neighbors web; every directed (source, target) pair appears once
func neighborwebdata(coreword string, nn map[string]search.Neighbors, extended bool) ([]opts.GraphNode, []opts.GraphLink) {
	const (
		SYMSIZE     = 25
		PERIPHSYMSZ = 15
		SIZEDISTORT = 2.25
		PRECISON    = 4
		EDGEFNTSZ   = 8
		DOTHUE      = 236
		DOTSL       = ", 33%, 40%, 1)"
	)

	var gnn []opts.GraphNode
	var gll []opts.GraphLink
	valuelabel := opts.EdgeLabel{Show: true, FontSize: EDGEFNTSZ, Formatter: "{c}"}

	round := func(val float64) float32 {
		ratio := math.Pow(10, float64(PRECISON))
		return float32(math.Round(val*ratio) / ratio)
	}

	// find the top similarity: this will let you adjust bubble size so that most similar are biggest
	var maxsim float64
	for _, w := range nn[coreword] {
		if w.Similarity > maxsim {
			maxsim = w.Similarity
		}
	}

	dot := &opts.ItemStyle{Color: fmt.Sprintf("hsla(%d%s", DOTHUE, DOTSL)}

	used := make(map[string]bool)

	// the center point
	gnn = append(gnn, opts.GraphNode{Name: coreword, Value: 0, SymbolSize: fmt.Sprintf("%.4f", SYMSIZE*SIZEDISTORT), ItemStyle: dot})
	used[coreword] = true

	// the words directly related to this word
	for _, w := range nn[coreword] {
		sizemod := fmt.Sprintf("%.4f", ((w.Similarity/maxsim)*SIZEDISTORT)*SYMSIZE)
		gnn = append(gnn, opts.GraphNode{Name: w.Word, Value: round(w.Similarity), SymbolSize: sizemod, ItemStyle: dot})
		gll = append(gll, opts.GraphLink{Source: coreword, Target: w.Word, Value: round(w.Similarity), Label: &valuelabel})
		used[w.Word] = true
	}

	// the relationships between the other words
	coreterms := ToSet(StringMapKeysIntoSlice(nn))

	// populate the nodes with just the core collection of terms
	simpleweb := func() {
		for t := range coreterms {
			if t == coreword {
				continue
			}
			for _, w := range nn[t] {
				if _, ok := coreterms[w.Word]; ok {
					gll = append(gll, opts.GraphLink{Source: t, Target: w.Word, Value: round(w.Similarity), Label: &valuelabel})
				}
			}
		}
	}

	// populate the nodes with both the core terms and the neighbors of those terms as well
	expandedweb := func() {
		for t := range coreterms {
			if t == coreword {
				continue
			}
			for _, w := range nn[t] {
				if _, ok := coreterms[w.Word]; ok {
					gll = append(gll, opts.GraphLink{Source: t, Target: w.Word, Value: round(w.Similarity), Label: &valuelabel})
					continue
				}
				if _, ok := used[w.Word]; !ok {
					gnn = append(gnn, opts.GraphNode{Name: w.Word, Value: round(w.Similarity), SymbolSize: PERIPHSYMSZ, ItemStyle: dot})
					used[w.Word] = true
				}
				gll = append(gll, opts.GraphLink{Source: t, Target: w.Word, Value: round(w.Similarity), Label: &valuelabel})
			}
		}
	}

	if extended {
		expandedweb()
	} else {
		simpleweb()
	}

	return gnn, gll
}

// newtitledgraph - return a pre-formatted charts.Graph
func newtitledgraph(settings string, coreword string) *charts.Graph {
	const (
		CHRTWIDTH  = "1500px"
		CHRTHEIGHT = "1000px"
		TITLESTR   = "Nearest neighbors of »%s«"
		LEFTALIGN  = "20"
		BOTTALIGN  = "3%"
		SAVETYPE   = "svg"
		SAVESTR    = "Save to file..."
	)

	tst := opts.TextStyle{
		FontSize: 16,
		Padding:  "15",
	}

	sst := opts.TextStyle{
		FontSize: 10,
	}

	tit := opts.Title{
		Title:         fmt.Sprintf(TITLESTR, coreword),
		TitleStyle:    &tst,
		Subtitle:      settings, // can not see this if you put the title on the bottom of the image
		SubtitleStyle: &sst,
		Bottom:        BOTTALIGN,
		Left:          LEFTALIGN,
	}

	tbs := opts.ToolBoxFeatureSaveAsImage{
		Show:  true,
		Type:  SAVETYPE, // svg, jpeg, png; svg requires specific chart initialization
		Name:  fmt.Sprintf(TITLESTR, coreword),
		Title: SAVESTR, // get chinese if ""
	}

	tbo := opts.Toolbox{
		Show:    true,
		Orient:  "vertical",
		Left:    LEFTALIGN,
		Feature: &opts.ToolBoxFeature{SaveAsImage: &tbs},
	}

	graph := charts.NewGraph()
	graph.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: CHRTWIDTH, Height: CHRTHEIGHT}),
		charts.WithTitleOpts(tit),
		charts.WithToolboxOpts(tbo),
	)

	return graph
}

//
// LDA graphing prep
//

// ldaplot - project the document-over-topic distributions onto a plane and scatter them
func ldaplot(ntopics int, docsOverTopics mat.Matrix, doclabels []string) string {
	const (
		VERBOSE = false
		MINDOCS = 4 // t-SNE degenerates below a handful of points
		TOOFEW  = `<p class="graphfail">too few documents to project (%d)</p>`
	)

	dr, dc := docsOverTopics.Dims()

	if dc < MINDOCS {
		return fmt.Sprintf(TOOFEW, dc)
	}

	// the dominant topic of each document picks its color on the plot
	winners := make([]int, dc)
	for doc := 0; doc < dc; doc++ {
		max := float64(0)
		for topic := 0; topic < dr; topic++ {
			if docsOverTopics.At(topic, doc) > max {
				winners[doc] = topic
				max = docsOverTopics.At(topic, doc)
			}
		}
	}

	// note that we flop r & c: the embedder wants documents as rows
	var dd []float64
	for doc := 0; doc < dc; doc++ {
		for topic := 0; topic < dr; topic++ {
			dd = append(dd, docsOverTopics.At(topic, doc))
		}
	}
	wv := mat.NewDense(dc, dr, dd)

	t := tsne.NewTSNE(2, TSNEPERPLEXITY, TSNELEARNRATE, TSNEMAXITER, VERBOSE)
	t.EmbedData(wv, nil)

	return ldascatter(ntopics, t.Y, winners, doclabels)
}

// ldascatter - one scatter series per topic so the legend can toggle them
func ldascatter(ntopics int, embedded mat.Matrix, winners []int, doclabels []string) string {
	const (
		CHRTWIDTH  = "1500px"
		CHRTHEIGHT = "1000px"
		TITLESTR   = "Documents by dominant topic (t-SNE projection)"
		SERIES     = "topic %d"
		SYMSIZE    = 12
	)

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: CHRTWIDTH, Height: CHRTHEIGHT}),
		charts.WithTitleOpts(opts.Title{Title: TITLESTR}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithXAxisOpts(opts.XAxis{Show: false}),
		charts.WithYAxisOpts(opts.YAxis{Show: false}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Formatter: "{b}"}),
	)

	er, _ := embedded.Dims()

	for topic := 0; topic < ntopics; topic++ {
		var sd []opts.ScatterData
		for doc := 0; doc < er && doc < len(winners); doc++ {
			if winners[doc] != topic {
				continue
			}
			sd = append(sd, opts.ScatterData{
				Name:       doclabels[doc],
				Value:      []float64{embedded.At(doc, 0), embedded.At(doc, 1)},
				SymbolSize: SYMSIZE,
			})
		}
		scatter.AddSeries(fmt.Sprintf(SERIES, topic+1), sd)
	}

	return renderchart(scatter)
}

// topicbarchart - the scaled weight of each topic across the whole corpus
func topicbarchart(weights []float64) string {
	const (
		CHRTWIDTH  = "900px"
		CHRTHEIGHT = "500px"
		TITLESTR   = "Accumulated topic weight (scaled)"
		SERIES     = "weight"
		XNAME      = "topic %d"
	)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: CHRTWIDTH, Height: CHRTHEIGHT}),
		charts.WithTitleOpts(opts.Title{Title: TITLESTR}),
	)

	var xx []string
	var bd []opts.BarData
	for i, w := range weights {
		xx = append(xx, fmt.Sprintf(XNAME, i+1))
		bd = append(bd, opts.BarData{Value: w})
	}

	bar.SetXAxis(xx)
	bar.AddSeries(SERIES, bd)

	return renderchart(bar)
}

//
// OVERRIDE GO-ECHARTS [original code at https://github.com/go-echarts/go-echarts]
//

// ModRenderer etc modified from https://github.com/go-echarts/go-echarts/render/engine.go
type ModRenderer interface {
	Render(w io.Writer) error
}

type CustomPageRender struct {
	c      interface{}
	before []func()
}

// NewCustomPageRender returns a render implementation for Page.
func NewCustomPageRender(c interface{}, before ...func()) ModRenderer {
	return &CustomPageRender{c: c, before: before}
}

// Render renders the page into the given io.Writer.
func (r *CustomPageRender) Render(w io.Writer) error {
	const (
		TEMPLNAME = "chart"
		PATTERN   = `(__f__")|("__f__)|(__f__)`
	)

	for _, fn := range r.before {
		fn()
	}

	contents := []string{CustomHeaderTpl, CustomBaseTpl, CustomPageTpl}
	tpl := ModMustTemplate(TEMPLNAME, contents)

	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, TEMPLNAME, r.c); err != nil {
		return err
	}

	pat := regexp.MustCompile(PATTERN)
	content := pat.ReplaceAll(buf.Bytes(), []byte(""))

	_, err := w.Write(content)
	return err
}

// ModMustTemplate creates a new template with the given name and parsed contents.
func ModMustTemplate(name string, contents []string) *template.Template {
	const (
		JSNAME = "safeJS"
	)

	tpl := template.Must(template.New(name).Parse(contents[0])).Funcs(template.FuncMap{
		JSNAME: func(s interface{}) template.JS {
			return template.JS(fmt.Sprint(s))
		},
	})

	for _, cont := range contents[1:] {
		tpl = template.Must(tpl.Parse(cont))
	}
	return tpl
}

// CustomHeaderTpl etc. adapted from https://github.com/go-echarts/go-echarts/templates/
var CustomHeaderTpl = `
{{ define "header" }}
<head>
	<!-- CustomHeaderTpl -->
    <meta charset="utf-8">
    <title>{{ .PageTitle }}</title>
{{- range .JSAssets.Values }}
    <script src="{{ . }}"></script>
{{- end }}
{{- range .CustomizedJSAssets.Values }}
    <script src="{{ . }}"></script>
{{- end }}
{{- range .CSSAssets.Values }}
    <link href="{{ . }}" rel="stylesheet">
{{- end }}
{{- range .CustomizedCSSAssets.Values }}
    <link href="{{ . }}" rel="stylesheet">
{{- end }}
</head>
{{ end }}
`

var CustomBaseTpl = `
{{- define "base" }}
<!-- CustomBaseTpl -->
<div class="container">
    <div class="item" id="{{ .ChartID }}" style="width:{{ .Initialization.Width }};height:{{ .Initialization.Height }};"></div>
</div>
<script type="text/javascript">
    "use strict";
    let goecharts_{{ .ChartID | safeJS }} = echarts.init(document.getElementById('{{ .ChartID | safeJS }}'), "{{ .Theme }}");
    let option_{{ .ChartID | safeJS }} = {{ .JSONNotEscaped | safeJS }};
	let action_{{ .ChartID | safeJS }} = {{ .JSONNotEscapedAction | safeJS }};
    goecharts_{{ .ChartID | safeJS }}.setOption(option_{{ .ChartID | safeJS }});
 	goecharts_{{ .ChartID | safeJS }}.dispatchAction(action_{{ .ChartID | safeJS }});

    {{- range .JSFunctions.Fns }}
    {{ . | safeJS }}
    {{- end }}
</script>
{{ end }}
`

var CustomPageTpl = `
{{- define "chart" }}
	<!-- "style" overridden because it is set in tgs.css -->
	<!-- CustomPageTpl -->
	{{ if eq .Layout "none" }}
		{{- range .Charts }} {{ template "base" . }} {{- end }}
	{{ end }}

	{{ if eq .Layout "center" }}
		{{- range .Charts }} {{ template "base" . }} {{- end }}
	{{ end }}

	{{ if eq .Layout "flex" }}
		<div class="box"> {{- range .Charts }} {{ template "base" . }} {{- end }} </div>
	{{ end }}
{{ end }}
`
