// Package server listens on the local control socket and translates
// client messages into Actions on the daemon's inbound channel. It never
// touches daemon state: the control loop is the sole consumer.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"sync"

	"github.com/sunwatch/sunwatch/common"
	"github.com/sunwatch/sunwatch/pkg/logger"
)

var (
	// ErrInvalidAction is returned when a client submits a malformed or
	// daemon-internal action kind. The offending connection is closed;
	// the listener keeps running.
	ErrInvalidAction = errors.New("invalid action")
)

// Server accepts control connections and forwards decoded Actions.
type Server struct {
	log      logger.Logger
	actions  chan<- common.Action
	listener net.Listener
	mu       sync.Mutex
}

// New creates a Server forwarding onto the given action channel.
func New(l logger.Logger, actions chan<- common.Action) *Server {
	return &Server{log: l, actions: actions}
}

// Listen binds the control socket. Failing here usually means another
// daemon instance already owns it.
func (s *Server) Listen() error {
	path := SocketPath()
	_ = os.Remove(path)
	l, err := net.Listen("unix", path)
	if err != nil {
		return fmt.Errorf("control socket listen failed (%s): %w", path, err)
	}
	_ = os.Chmod(path, 0600)

	s.mu.Lock()
	s.listener = l
	s.mu.Unlock()
	return nil
}

// Serve accepts connections until Shutdown closes the listener. Each
// connection is handled on its own goroutine so a stalled client cannot
// block others. Accept errors are logged and survived.
func (s *Server) Serve() error {
	s.mu.Lock()
	l := s.listener
	s.mu.Unlock()
	if l == nil {
		return errors.New("serve called before listen")
	}

	for {
		conn, err := l.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			s.log.Warning("error accepting connection: %s", err.Error())
			continue
		}
		go s.handleConnection(conn)
	}
}

// Shutdown closes the listener and removes the socket file.
func (s *Server) Shutdown() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		if err := s.listener.Close(); err != nil {
			s.log.Warning("error closing listener: %s", err.Error())
		}
		s.listener = nil
	}
	if err := os.Remove(SocketPath()); err != nil && !os.IsNotExist(err) {
		s.log.Warning("error removing socket file: %s", err.Error())
	}
	return nil
}

// handleConnection decodes actions off one client connection until it
// closes or produces malformed input. Malformed input ends the
// connection without a reply.
func (s *Server) handleConnection(conn net.Conn) {
	defer conn.Close()
	for {
		buf, err := readFrame(conn)
		if err != nil {
			if err != io.EOF {
				s.log.Warning("error reading connection: %s", err.Error())
			}
			return
		}
		act, err := decodeAction(buf)
		if err != nil {
			s.log.Warning("dropping connection: %s", err.Error())
			return
		}
		s.actions <- act
	}
}

// decodeAction parses a wire frame into an Action and rejects kinds
// that are not valid from external clients.
func decodeAction(b []byte) (common.Action, error) {
	var act common.Action
	if err := json.Unmarshal(b, &act); err != nil {
		return common.Action{}, fmt.Errorf("%w: %s", ErrInvalidAction, err.Error())
	}
	if !act.Kind.External() {
		return common.Action{}, fmt.Errorf("%w: %q", ErrInvalidAction, act.Kind)
	}
	return act, nil
}
