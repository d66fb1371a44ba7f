package server

import (
	"os"
	"path/filepath"

	"github.com/sunwatch/sunwatch/common"
)

// SocketPath returns the control socket location, overridable through
// the SUNWATCH_SOCKET_PATH environment variable.
func SocketPath() string {
	if path := os.Getenv(common.SocketPathEnv); path != "" {
		return path
	}
	return filepath.Join(os.TempDir(), common.SocketName)
}
