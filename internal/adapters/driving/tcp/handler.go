package tcp

import (
	"bufio"
	"log/slog"
	"net"
	"strings"

	"github.com/arcbeam-labs/lexidex/internal/core/services"
)

// SessionHandler returns a clientpool-compatible connection handler
// that runs one line-oriented session to completion over conn: it
// sends "start\n", then reads commands one per line, trimming ASCII
// whitespace (including a tolerated trailing "\r"), dispatching each
// to session, and writing back the response. It returns when the
// client closes the connection or a write fails; the caller (the
// client pool) closes conn afterward.
func SessionHandler(session *services.Session, logger *slog.Logger) func(net.Conn) {
	if logger == nil {
		logger = slog.Default()
	}
	return func(conn net.Conn) {
		if _, err := conn.Write([]byte("start\n")); err != nil {
			return
		}

		scanner := bufio.NewScanner(conn)
		for scanner.Scan() {
			line := strings.Trim(scanner.Text(), " \t\r\n")
			response := session.Handle(line)
			if _, err := conn.Write([]byte(response)); err != nil {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			logger.Debug("tcp: connection read error", "error", err)
		}
	}
}
