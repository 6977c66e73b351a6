// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package parallel runs many independent phone-number scans concurrently,
// one MatcherInstance per job, over a fixed-size worker pool.
package parallel

import (
	"context"
	"sync"
	"time"

	"phonehound/internal/matcher"
	"phonehound/internal/observability"
)

// WorkerPool scans multiple texts concurrently. Each Job gets its own
// MatcherInstance, so jobs never share mutable matcher state (spec §5).
type WorkerPool struct {
	workers  int
	jobs     chan *Job
	results  chan *Result
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
	observer *observability.StandardObserver
}

// Job is one text to scan.
type Job struct {
	Source          string
	Text            string
	PreferredRegion string
	Leniency        matcher.Leniency
	MaxTries        int
}

// Result is the outcome of scanning one Job.
type Result struct {
	Source   string
	Matches  []*matcher.PhoneMatch
	Duration time.Duration
}

// NewWorkerPool creates a worker pool with the given concurrency.
func NewWorkerPool(workers int, observer *observability.StandardObserver) *WorkerPool {
	ctx, cancel := context.WithCancel(context.Background())
	return &WorkerPool{
		workers:  workers,
		jobs:     make(chan *Job, workers*2),
		results:  make(chan *Result, workers*2),
		ctx:      ctx,
		cancel:   cancel,
		observer: observer,
	}
}

// Start launches the worker goroutines.
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.workers; i++ {
		wp.wg.Add(1)
		go wp.worker(i)
	}
}

// Stop waits for all in-flight jobs to finish, then closes the results
// channel.
func (wp *WorkerPool) Stop() {
	wp.wg.Wait()
	close(wp.results)
	wp.cancel()
}

// Submit queues a job. It blocks if the queue is full and the pool has not
// been cancelled.
func (wp *WorkerPool) Submit(job *Job) {
	select {
	case wp.jobs <- job:
	case <-wp.ctx.Done():
	}
}

// CloseJobs signals that no further jobs will be submitted.
func (wp *WorkerPool) CloseJobs() {
	close(wp.jobs)
}

// Results returns the channel results are delivered on.
func (wp *WorkerPool) Results() <-chan *Result {
	return wp.results
}

func (wp *WorkerPool) worker(id int) {
	defer wp.wg.Done()

	for job := range wp.jobs {
		result := wp.processJob(job, id)
		select {
		case wp.results <- result:
		case <-wp.ctx.Done():
			return
		}
	}
}

func (wp *WorkerPool) processJob(job *Job, workerID int) *Result {
	start := time.Now()

	var finishTiming func(bool, map[string]interface{})
	if wp.observer != nil {
		finishTiming = wp.observer.StartTiming("worker_pool", "scan", job.Source)
	}

	m := matcher.New(job.Text, job.PreferredRegion, job.Leniency, job.MaxTries)
	var matches []*matcher.PhoneMatch
	for m.HasNext() {
		matches = append(matches, m.Next())
	}

	duration := time.Since(start)

	if finishTiming != nil {
		finishTiming(true, map[string]interface{}{
			"worker_id":   workerID,
			"match_count": len(matches),
			"duration_ms": duration.Milliseconds(),
		})
	}

	return &Result{
		Source:   job.Source,
		Matches:  matches,
		Duration: duration,
	}
}

// ScanAll runs one job per input through a worker pool of the given size
// and returns the results in the same order the inputs were given.
func ScanAll(jobs []*Job, workers int, observer *observability.StandardObserver) []*Result {
	if workers < 1 {
		workers = 1
	}

	pool := NewWorkerPool(workers, observer)
	pool.Start()

	go func() {
		for _, job := range jobs {
			pool.Submit(job)
		}
		pool.CloseJobs()
	}()

	bySource := make(map[string]*Result, len(jobs))
	done := make(chan struct{})
	go func() {
		for result := range pool.Results() {
			bySource[result.Source] = result
		}
		close(done)
	}()

	pool.Stop()
	<-done

	results := make([]*Result, 0, len(jobs))
	for _, job := range jobs {
		if result, ok := bySource[job.Source]; ok {
			results = append(results, result)
		}
	}
	return results
}
