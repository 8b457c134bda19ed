// Package clientpool provides a fixed-size pool of "holder" goroutines
// serving accepted connections from a shared FIFO queue, plus a
// periodic Notifier that reports queue position to connections still
// waiting to be picked up.
//
// A connection remains in the queue until a holder is free; the
// number of concurrently active sessions is bounded by the pool size,
// and additional connections experience backpressure by waiting.
package clientpool

import (
	"container/list"
	"log/slog"
	"net"
	"sync"
	"sync/atomic"

	"github.com/arcbeam-labs/lexidex/internal/core/domain"
)

// connEntry tracks one accepted connection's lifecycle state alongside
// the socket itself. The Notifier does not read the state: it only
// walks the queue, which holds an entry only while it is Queued.
type connEntry struct {
	conn  net.Conn
	state atomic.Int32 // domain.SessionState
}

func newConnEntry(conn net.Conn) *connEntry {
	e := &connEntry{conn: conn}
	e.state.Store(int32(domain.SessionQueued))
	return e
}

func (e *connEntry) setState(s domain.SessionState) {
	e.state.Store(int32(s))
}

func (e *connEntry) State() domain.SessionState {
	return domain.SessionState(e.state.Load())
}

// Pool runs m holder goroutines, each repeatedly popping the head of
// a FIFO queue of accepted connections and running handle on it.
type Pool struct {
	handle func(net.Conn)
	logger *slog.Logger
	m      int

	mu      sync.Mutex
	cond    *sync.Cond
	queue   *list.List // of *connEntry, only connections NOT yet picked up
	running bool
	wg      sync.WaitGroup
}

// New creates a Pool of m holder goroutines, each invoking handle on
// every dequeued connection and closing it afterward. The pool starts
// immediately. If logger is nil, slog.Default() is used.
func New(m int, handle func(net.Conn), logger *slog.Logger) *Pool {
	if m < 1 {
		m = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	p := &Pool{
		handle:  handle,
		logger:  logger,
		m:       m,
		queue:   list.New(),
		running: true,
	}
	p.cond = sync.NewCond(&p.mu)

	for i := 0; i < m; i++ {
		p.wg.Add(1)
		go p.holderLoop(i)
	}
	return p
}

// Enqueue appends conn to the waiting queue and signals one holder.
// It fails with domain.ErrPoolShutdown if the pool has been shut down,
// in which case the caller is responsible for closing conn.
func (p *Pool) Enqueue(conn net.Conn) error {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return domain.ErrPoolShutdown
	}
	p.queue.PushBack(newConnEntry(conn))
	p.mu.Unlock()
	p.cond.Signal()
	return nil
}

// WaitingLen returns the number of connections currently queued (not
// yet picked up by a holder).
func (p *Pool) WaitingLen() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.queue.Len()
}

// waitingConns returns the connections currently queued, in FIFO
// order, without removing them. Used by Notifier to report position.
func (p *Pool) waitingConns() []net.Conn {
	p.mu.Lock()
	defer p.mu.Unlock()
	conns := make([]net.Conn, 0, p.queue.Len())
	for e := p.queue.Front(); e != nil; e = e.Next() {
		conns = append(conns, e.Value.(*connEntry).conn)
	}
	return conns
}

func (p *Pool) holderLoop(id int) {
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

		entry := front.Value.(*connEntry)
		entry.setState(domain.SessionActive)
		p.runSession(id, entry)
	}
}

func (p *Pool) runSession(id int, entry *connEntry) {
	defer func() {
		entry.setState(domain.SessionClosing)
		if r := recover(); r != nil {
			p.logger.Error("session panicked", "holder", id, "panic", r)
		}
	}()
	defer entry.conn.Close()
	p.handle(entry.conn)
}

// Shutdown signals all holders, drains queued connections by closing
// them without serving a session, and joins every holder goroutine.
// Idempotent.
func (p *Pool) Shutdown() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	remaining := p.queue
	p.queue = list.New()
	p.mu.Unlock()
	p.cond.Broadcast()

	for e := remaining.Front(); e != nil; e = e.Next() {
		entry := e.Value.(*connEntry)
		entry.setState(domain.SessionClosing)
		entry.conn.Close()
	}

	p.wg.Wait()
}
