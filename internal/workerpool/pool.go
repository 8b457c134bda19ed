// Package workerpool provides a fixed-size pool of goroutines
// consuming a FIFO queue of typed tasks, each submission returning a
// Future for its result. It is the generic building block behind the
// indexer's tokenization fan-out: tasks are dequeued in FIFO order but
// executed concurrently, with no ordering guarantee across workers.
//
// Shutdown is graceful and idempotent: it signals every waiting
// worker, lets in-flight tasks finish, and joins all goroutines.
// Submitted tasks are never cancelled once accepted.
package workerpool

import (
	"container/list"
	"sync"

	"github.com/arcbeam-labs/lexidex/internal/core/domain"
)

type job[T, R any] struct {
	task   T
	result chan result[R]
}

type result[R any] struct {
	value R
	err   error
}

// Future is the handle returned by Submit. Get blocks until the task
// completes.
type Future[R any] struct {
	ch <-chan result[R]
}

// Get blocks until the task's result is available.
func (f Future[R]) Get() (R, error) {
	r := <-f.ch
	return r.value, r.err
}

// Pool runs n worker goroutines, each repeatedly pulling the head of a
// FIFO queue and invoking fn on it.
type Pool[T, R any] struct {
	fn      func(T) (R, error)
	n       int
	mu      sync.Mutex
	cond    *sync.Cond
	queue   *list.List // of *job[T, R]
	running bool
	wg      sync.WaitGroup
}

// New creates a Pool of n worker goroutines applying fn to each
// submitted task. The pool starts immediately.
func New[T, R any](n int, fn func(T) (R, error)) *Pool[T, R] {
	if n < 1 {
		n = 1
	}
	p := &Pool[T, R]{
		fn:      fn,
		n:       n,
		queue:   list.New(),
		running: true,
	}
	p.cond = sync.NewCond(&p.mu)

	for i := 0; i < n; i++ {
		p.wg.Add(1)
		go p.workerLoop()
	}
	return p
}

// Submit enqueues task and returns a Future for its eventual result.
// It fails with domain.ErrPoolShutdown if the pool has been shut down.
func (p *Pool[T, R]) Submit(task T) (Future[R], error) {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return Future[R]{}, domain.ErrPoolShutdown
	}

	ch := make(chan result[R], 1)
	p.queue.PushBack(&job[T, R]{task: task, result: ch})
	p.mu.Unlock()
	p.cond.Signal()

	return Future[R]{ch: ch}, nil
}

func (p *Pool[T, R]) workerLoop() {
	defer p.wg.Done()
	for {
		p.mu.Lock()
		for p.running && p.queue.Len() == 0 {
			p.cond.Wait()
		}
		if !p.running && p.queue.Len() == 0 {
			p.mu.Unlock()
			return
		}
		front := p.queue.Front()
		p.queue.Remove(front)
		p.mu.Unlock()

		j := front.Value.(*job[T, R])
		value, err := p.fn(j.task)
		j.result <- result[R]{value: value, err: err}
		close(j.result)
	}
}

// Shutdown signals all workers, lets queued and in-flight tasks drain,
// and joins every worker goroutine. Idempotent.
func (p *Pool[T, R]) Shutdown() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	p.mu.Unlock()
	p.cond.Broadcast()
	p.wg.Wait()
}
