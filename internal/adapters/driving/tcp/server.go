// Package tcp is the thin wire-protocol adapter: it owns the
// listening socket and accept loop, and frames the line-oriented
// session protocol over each accepted connection. It knows nothing
// about indexing or query semantics — those live in
// internal/core/services.Session, which this package merely drives.
package tcp

import (
	"fmt"
	"log"
	"net"
	"sync"

	"github.com/arcbeam-labs/lexidex/internal/clientpool"
)

// Config holds the listening address.
type Config struct {
	Host string
	Port int
}

// Server accepts TCP connections and enqueues them onto a client
// pool. It does not itself run any sessions.
type Server struct {
	addr     string
	pool     *clientpool.Pool
	listener net.Listener

	mu     sync.Mutex
	closed bool
}

// NewServer creates a Server that will listen on cfg.Host:cfg.Port and
// hand every accepted connection to pool.
func NewServer(cfg Config, pool *clientpool.Pool) *Server {
	return &Server{
		addr: fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		pool: pool,
	}
}

// Start binds the listening socket. A failure here is startup-fatal:
// the caller should log it and abort the process.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("tcp: listen on %s: %w", s.addr, err)
	}
	s.listener = ln
	return nil
}

// Addr returns the bound listener's address. Only valid after Start.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Serve accepts connections until Shutdown closes the listener. It
// blocks and is meant to be run in its own goroutine.
func (s *Server) Serve() {
	log.Printf("lexidex listening on %s", s.addr)
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			s.mu.Lock()
			closed := s.closed
			s.mu.Unlock()
			if closed {
				return
			}
			log.Printf("tcp: accept error: %v", err)
			continue
		}
		if err := s.pool.Enqueue(conn); err != nil {
			conn.Close()
		}
	}
}

// Shutdown closes the listening socket, unblocking Serve. It does not
// tear down the client pool; a caller that wants in-flight sessions
// drained should also call the pool's Shutdown.
func (s *Server) Shutdown() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	if s.listener == nil {
		return nil
	}
	return s.listener.Close()
}
