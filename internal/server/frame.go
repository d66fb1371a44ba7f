package server

import (
	"fmt"
	"io"
	"net"
)

// maxFrameSize bounds a single control message. Control actions are a
// few dozen bytes; anything larger is a broken or hostile client.
const maxFrameSize = 1 << 16

func intToBytes(v uint32) []byte {
	b := make([]byte, 4)
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	return b
}

func bytesToInt(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// readFrame reads one length-prefixed message from conn.
func readFrame(conn net.Conn) ([]byte, error) {
	head := make([]byte, 4)
	if _, err := io.ReadFull(conn, head); err != nil {
		return nil, err
	}
	size := bytesToInt(head)
	if size > maxFrameSize {
		return nil, fmt.Errorf("frame too large: %d bytes", size)
	}
	buf := make([]byte, size)
	if _, err := io.ReadFull(conn, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// writeFrame writes one length-prefixed message to conn.
func writeFrame(conn net.Conn, b []byte) error {
	if _, err := conn.Write(intToBytes(uint32(len(b)))); err != nil {
		return err
	}
	_, err := conn.Write(b)
	return err
}
