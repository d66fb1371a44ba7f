// Package sunctl is the client library for the sunwatch control socket.
// It is consumed by the CLI and usable by any local process that wants
// to drive the daemon.
package sunctl

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"

	"github.com/sunwatch/sunwatch/common"
)

var (
	// ErrDaemonNotRunning is returned when no daemon is listening on the
	// control socket.
	ErrDaemonNotRunning = errors.New("sunwatch daemon is not running")
)

// Client holds one connection to the daemon control socket.
type Client struct {
	conn net.Conn
}

// NewClient dials the control socket.
func NewClient() (*Client, error) {
	conn, err := net.Dial("unix", socketPath())
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDaemonNotRunning, err.Error())
	}
	return &Client{conn: conn}, nil
}

// send encodes one action and writes it as a single frame. The control
// protocol is one-way: the daemon answers nothing.
func (c *Client) send(kind common.ActionKind) error {
	buf, err := json.Marshal(common.Action{Kind: kind})
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", kind, err)
	}
	if err := writeFrame(c.conn, buf); err != nil {
		return fmt.Errorf("failed to send %s: %w", kind, err)
	}
	return nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
