package workerpool

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/arcbeam-labs/lexidex/internal/core/domain"
)

func TestPoolSubmitAndGet(t *testing.T) {
	p := New(2, func(n int) (int, error) { return n * 2, nil })
	defer p.Shutdown()

	f, err := p.Submit(21)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, err := f.Get()
	if err != nil || v != 42 {
		t.Fatalf("got (%d, %v), want (42, nil)", v, err)
	}
}

func TestPoolFIFODequeueOrder(t *testing.T) {
	var mu sync.Mutex
	var seen []int
	started := make(chan struct{})

	p := New(1, func(n int) (int, error) {
		if n == 0 {
			<-started // hold the single worker until all tasks are queued
		}
		mu.Lock()
		seen = append(seen, n)
		mu.Unlock()
		return n, nil
	})
	defer p.Shutdown()

	var futures []Future[int]
	for i := 0; i < 5; i++ {
		f, err := p.Submit(i)
		if err != nil {
			t.Fatalf("submit %d failed: %v", i, err)
		}
		futures = append(futures, f)
	}
	close(started)

	for _, f := range futures {
		if _, err := f.Get(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	mu.Lock()
	defer mu.Unlock()
	for i, n := range seen {
		if n != i {
			t.Fatalf("tasks dequeued out of FIFO order: %v", seen)
		}
	}
}

func TestPoolConcurrentExecution(t *testing.T) {
	const n = 20
	var active, maxActive atomic.Int32

	p := New(4, func(int) (int, error) {
		cur := active.Add(1)
		for {
			m := maxActive.Load()
			if cur <= m || maxActive.CompareAndSwap(m, cur) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		active.Add(-1)
		return 0, nil
	})
	defer p.Shutdown()

	var futures []Future[int]
	for i := 0; i < n; i++ {
		f, _ := p.Submit(i)
		futures = append(futures, f)
	}
	for _, f := range futures {
		f.Get()
	}

	if maxActive.Load() < 2 {
		t.Fatalf("expected concurrent execution across workers, max active was %d", maxActive.Load())
	}
}

func TestPoolPropagatesTaskError(t *testing.T) {
	wantErr := errors.New("boom")
	p := New(1, func(int) (int, error) { return 0, wantErr })
	defer p.Shutdown()

	f, _ := p.Submit(1)
	_, err := f.Get()
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected %v, got %v", wantErr, err)
	}
}

func TestPoolShutdownDrainsQueueThenRejects(t *testing.T) {
	var done atomic.Int32
	release := make(chan struct{})

	p := New(1, func(n int) (int, error) {
		if n == 0 {
			<-release
		}
		done.Add(1)
		return n, nil
	})

	// task 0 blocks the single worker; tasks 1 and 2 queue behind it.
	f0, _ := p.Submit(0)
	f1, _ := p.Submit(1)
	f2, _ := p.Submit(2)

	shutdownDone := make(chan struct{})
	go func() {
		p.Shutdown()
		close(shutdownDone)
	}()

	// Shutdown must not return while task 0 is still running and the
	// queue still holds tasks 1 and 2.
	select {
	case <-shutdownDone:
		t.Fatal("shutdown returned before in-flight/queued tasks drained")
	case <-time.After(20 * time.Millisecond):
	}

	close(release)
	<-shutdownDone

	for _, f := range []Future[int]{f0, f1, f2} {
		if _, err := f.Get(); err != nil {
			t.Fatalf("queued task should have completed during drain: %v", err)
		}
	}
	if done.Load() != 3 {
		t.Fatalf("expected all 3 tasks to run, got %d", done.Load())
	}

	if _, err := p.Submit(99); !errors.Is(err, domain.ErrPoolShutdown) {
		t.Fatalf("expected ErrPoolShutdown after shutdown, got %v", err)
	}
}

func TestPoolShutdownIdempotent(t *testing.T) {
	p := New(2, func(n int) (int, error) { return n, nil })
	p.Shutdown()
	p.Shutdown() // must not panic or block
}
