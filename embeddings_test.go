//    ToposGoServer
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReportProgressFeedsAndReleases(t *testing.T) {
	jid := AllJobs.NewJob("sample", "w2v")
	defer AllJobs.Delete(jid)

	ct := make(chan int)
	rep := make(chan string)
	done := make(chan struct{})
	returned := make(chan struct{})

	go func() {
		reportprogress(jid, 10, ct, rep, done)
		close(returned)
	}()

	ct <- 3
	assert.Eventually(t, func() bool {
		j, ok := AllJobs.Get(jid)
		return ok && j.Iteration == 3
	}, time.Second, 10*time.Millisecond)

	// training is over: the Reporter has gone silent, so closing done has to
	// be enough to release the monitor on its own
	close(done)
	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("progress monitor failed to exit after release")
	}
}
