// Package parallel provides the fixed-size worker pool behind pixconv's
// data-parallel loops.
//
// Work is split into contiguous index ranges that are queued round-robin on
// per-worker queues. Idle workers steal ranges from their peers, so a slow
// range does not leave the rest of the pool waiting.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Task is a unit of work. The argument is the id of the worker executing it,
// in [0, Workers()).
type Task func(worker int)

// chunksPerWorker controls how finely For splits an index range. More chunks
// than workers gives the stealing loop something to balance.
const chunksPerWorker = 4

// WorkerPool is a pool of goroutines for data-parallel loops.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	// workers is the number of worker goroutines.
	workers int

	// workQueues holds per-worker work queues.
	// Each worker primarily pulls from its own queue but can steal from others.
	workQueues []chan Task

	// done signals workers to stop.
	done chan struct{}

	// wg waits for all workers to finish.
	wg sync.WaitGroup

	// running indicates whether the pool is accepting work.
	running atomic.Bool
}

// NewWorkerPool creates a new worker pool with the specified number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
// The pool starts immediately and workers begin waiting for work.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := workers * chunksPerWorker
	if queueSize < 8 {
		queueSize = 8
	}

	p := &WorkerPool{
		workers:    workers,
		workQueues: make([]chan Task, workers),
		done:       make(chan struct{}),
	}
	for i := range workers {
		p.workQueues[i] = make(chan Task, queueSize)
	}

	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}

	return p
}

// worker is the main loop for each worker goroutine.
func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	myQueue := p.workQueues[id]

	for {
		select {
		case <-p.done:
			p.drainQueue(id, myQueue)
			return

		case task := <-myQueue:
			if task != nil {
				task(id)
			}

		default:
			if stolen := p.steal(id); stolen != nil {
				stolen(id)
				continue
			}
			// Nothing anywhere, block on own queue.
			select {
			case <-p.done:
				p.drainQueue(id, myQueue)
				return
			case task := <-myQueue:
				if task != nil {
					task(id)
				}
			}
		}
	}
}

// drainQueue executes all remaining work in a queue.
func (p *WorkerPool) drainQueue(id int, queue chan Task) {
	for {
		select {
		case task := <-queue:
			if task != nil {
				task(id)
			}
		default:
			return
		}
	}
}

// steal attempts to take work from another worker's queue.
// Returns nil if no work is available.
func (p *WorkerPool) steal(myID int) Task {
	for i := range p.workers {
		if i == myID {
			continue
		}
		select {
		case task := <-p.workQueues[i]:
			return task
		default:
		}
	}
	return nil
}

// ExecuteAll distributes tasks across workers and waits for all to complete.
// If the pool is closed, this is a no-op.
func (p *WorkerPool) ExecuteAll(tasks []Task) {
	if len(tasks) == 0 || !p.running.Load() {
		return
	}

	var completion sync.WaitGroup
	completion.Add(len(tasks))

	for i, fn := range tasks {
		task := fn
		wrapped := func(worker int) {
			defer completion.Done()
			task(worker)
		}

		select {
		case p.workQueues[i%p.workers] <- wrapped:
		case <-p.done:
			completion.Done()
		}
	}

	completion.Wait()
}

// For runs fn over [0, n) split into contiguous ranges [start, end) and
// waits for every range to finish. Each index is covered by exactly one call.
// Ranges are not processed in any particular order.
func (p *WorkerPool) For(n int, fn func(worker, start, end int)) {
	if n <= 0 {
		return
	}

	chunks := p.workers * chunksPerWorker
	if chunks > n {
		chunks = n
	}
	size := (n + chunks - 1) / chunks

	tasks := make([]Task, 0, chunks)
	for start := 0; start < n; start += size {
		end := min(start+size, n)
		lo, hi := start, end
		tasks = append(tasks, func(worker int) {
			fn(worker, lo, hi)
		})
	}

	p.ExecuteAll(tasks)
}

// Close gracefully shuts down the pool.
// It stops accepting new work, waits for all queued work to complete,
// and then stops all workers.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning returns true if the pool is still accepting work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
