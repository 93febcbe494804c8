//    ToposGoServer
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	AllJobs = MakeJobVault()
)

// ModelJob - the pollable state of one long-running model fit
type ModelJob struct {
	ID        string
	Corpus    string
	Model     string
	Msg       string
	Iteration int
	TotalIter int
	Launched  time.Time
	IsActive  bool
}

// JobVault - there should be only one of these; progress reports all flow through it
type JobVault struct {
	JobMap map[string]ModelJob
	mutex  sync.RWMutex
}

func MakeJobVault() *JobVault {
	return &JobVault{
		JobMap: make(map[string]ModelJob),
	}
}

// NewJob - register a fresh job and hand back its ID
func (jv *JobVault) NewJob(corpus string, model string) string {
	j := ModelJob{
		ID:       uuid.New().String(),
		Corpus:   corpus,
		Model:    model,
		Launched: time.Now(),
		IsActive: true,
	}
	jv.mutex.Lock()
	defer jv.mutex.Unlock()
	jv.JobMap[j.ID] = j
	return j.ID
}

func (jv *JobVault) Get(id string) (ModelJob, bool) {
	jv.mutex.RLock()
	defer jv.mutex.RUnlock()
	j, t := jv.JobMap[id]
	return j, t
}

// Update - swap in a new message and iteration count for a running job
func (jv *JobVault) Update(id string, m string, iter int, total int) {
	jv.mutex.Lock()
	defer jv.mutex.Unlock()
	j, t := jv.JobMap[id]
	if !t {
		return
	}
	j.Msg = m
	j.Iteration = iter
	j.TotalIter = total
	jv.JobMap[id] = j
}

// Finish - mark a job inactive; it lingers so late pollers see the final state
func (jv *JobVault) Finish(id string) {
	jv.mutex.Lock()
	defer jv.mutex.Unlock()
	j, t := jv.JobMap[id]
	if !t {
		return
	}
	j.IsActive = false
	jv.JobMap[id] = j
}

func (jv *JobVault) Delete(id string) {
	jv.mutex.Lock()
	defer jv.mutex.Unlock()
	delete(jv.JobMap, id)
}
