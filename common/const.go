package common

const (
	// SocketName is the file name of the daemon control socket.
	SocketName = "sunwatch.sock"

	// SocketPathEnv overrides the full control socket path.
	SocketPathEnv = "SUNWATCH_SOCKET_PATH"

	// ConfigPathEnv overrides the configuration file path.
	ConfigPathEnv = "SUNWATCH_CONFIG"

	// DebugEnv enables client-side debug logging when set to "1".
	DebugEnv = "SUNWATCH_DEBUG"
)
