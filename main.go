//    ToposGoServer
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"
	"sync"
	"time"
)

func main() {
	configatlaunch()

	versioninfo := fmt.Sprintf("%s (v.%s)", MYNAME, VERSION)
	versioninfo = versioninfo + fmt.Sprintf(" [loglevel=%d]", Config.LogLevel)
	if !Config.QuietStart {
		msg(versioninfo, MSGMAND)
	}

	// concurrent launching
	var awaiting sync.WaitGroup

	awaiting.Add(1)
	go func(awaiting *sync.WaitGroup) {
		defer awaiting.Done()

		start := time.Now()
		previous := time.Now()

		loadembeddedcorpora()
		timetracker("A1", fmt.Sprintf("%d embedded corpora registered", len(AllCorpora.Names())), start, previous)
	}(&awaiting)

	awaiting.Add(1)
	go func(awaiting *sync.WaitGroup) {
		defer awaiting.Done()

		start := time.Now()
		previous := time.Now()

		GetArtifactDB()
		timetracker("B1", fmt.Sprintf("artifact store opened at '%s'", Config.ArtifactDB), start, previous)

		artifactcount(MSGFYI)
	}(&awaiting)

	awaiting.Wait()

	runselftests()

	StartEchoServer()
}
