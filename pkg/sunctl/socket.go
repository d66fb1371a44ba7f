package sunctl

import (
	"net"
	"os"
	"path/filepath"

	"github.com/sunwatch/sunwatch/common"
)

func socketPath() string {
	if path := os.Getenv(common.SocketPathEnv); path != "" {
		return path
	}
	return filepath.Join(os.TempDir(), common.SocketName)
}

func writeFrame(conn net.Conn, b []byte) error {
	head := []byte{
		byte(len(b)),
		byte(len(b) >> 8),
		byte(len(b) >> 16),
		byte(len(b) >> 24),
	}
	if _, err := conn.Write(head); err != nil {
		return err
	}
	_, err := conn.Write(b)
	return err
}
