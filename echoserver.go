//    ToposGoServer
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// StartEchoServer - start serving; this blocks and does not return while the program remains alive
func StartEchoServer() {
	// https://echo.labstack.com/guide/

	const (
		LLOGFMT = "r: ${status}\tt: ${latency_human}\tu: ${uri}\n"
		RLOGFMT = "i: ${remote_ip}\t r: ${status}\tt: ${latency_human}\tu: ${uri}\n"
	)

	//
	// SETUP
	//

	e := echo.New()

	e.Server.ReadTimeout = TIMEOUTRD
	e.Server.WriteTimeout = TIMEOUTWR

	if Config.EchoLog == 2 {
		e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{Format: RLOGFMT}))
	} else if Config.EchoLog == 1 {
		e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{Format: LLOGFMT}))
	}

	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(MAXECHOREQPERSECONDPERIP)))

	e.Use(middleware.Recover())

	if Config.Gzip {
		e.Use(middleware.GzipWithConfig(middleware.GzipConfig{Level: 5}))
	}

	//
	// ROUTES
	//

	//
	// [a] frontpage ("rt-frontpage.go")
	//

	e.GET("/", RtFrontpage)

	//
	// [b] corpora ("rt-corpora.go")
	//

	e.GET("/corpora", RtCorporaList)
	e.GET("/corpora/load", RtCorporaLoad) // "u: /corpora/load?src=file&path=reviews.tsv"

	//
	// [c] surveys and models ("rt-models.go")
	//

	e.GET("/survey/:corpus", RtSurvey)       // "u: /survey/sample"
	e.GET("/model/lda/:corpus", RtModelLDA)  // "u: /model/lda/sample"
	e.GET("/model/lsa/:corpus", RtModelLSA)  //
	e.GET("/model/tfidf/:corpus", RtModelTFIDF)
	e.GET("/model/nn/:corpus", RtModelNN)    // "u: /model/nn/sample?word=cat"
	e.GET("/model/graph/:corpus", RtModelGraph)

	//
	// [d] session ("rt-session.go")
	//

	e.GET("/reset/session", RtResetSession)
	e.GET("/setoption/:opt", RtSetOption) // "u: /setoption/topics/7"
	e.GET("/get/json/sessionvariables", RtGetJSSession)

	//
	// [e] resets ("rt-models.go")
	//

	e.GET("/reset/artifacts", RtResetArtifacts)

	//
	// [f] websocket ("rt-websocket.go")
	//

	e.GET("/ws", RtWebsocket)

	e.HideBanner = true
	e.Logger.Fatal(e.Start(fmt.Sprintf("%s:%d", Config.HostIP, Config.HostPort)))
}
