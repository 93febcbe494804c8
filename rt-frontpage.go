//    ToposGoServer
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"runtime"
	"strings"

	"github.com/labstack/echo/v4"
)

//
// ROUTING
//

// RtFrontpage - send the html for "/"
func RtFrontpage(c echo.Context) error {
	// html/template and not text/template: corpus names arrive via
	// "/corpora/load?name=..." and have to be escaped on the way out

	// will set if missing
	user := readUUIDCookie(c)
	s := AllSessions.GetSess(user)

	env := fmt.Sprintf("%s: %s - %s (%d workers)", runtime.Version(), runtime.GOOS, runtime.GOARCH, Config.WorkerCount)

	subs := map[string]interface{}{
		"version":   VERSION,
		"env":       env,
		"user":      "Anonymous",
		"corpus":    s.Corpus,
		"corpora":   strings.Join(AllCorpora.Names(), ", "),
		"numtopics": s.NumTopics,
		"modeler":   s.Modeler}

	f, e := efs.ReadFile("emb/frontpage.html")
	chke(e)

	tmpl, e := template.New("fp").Parse(string(f))
	chke(e)

	var b bytes.Buffer
	err := tmpl.Execute(&b, subs)
	chke(err)

	return c.HTML(http.StatusOK, b.String())
}
