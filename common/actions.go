// Package common holds the wire types shared between the daemon, the
// control socket server and the sunctl client library.
package common

// ActionKind discriminates the control messages understood by the daemon
// loop. Trigger and Nothing are daemon-internal and never valid on the
// control socket.
type ActionKind string

const (
	ActionStop         ActionKind = "stop"
	ActionEnable       ActionKind = "enable"
	ActionDisable      ActionKind = "disable"
	ActionToggle       ActionKind = "toggle"
	ActionReloadConfig ActionKind = "reload_config"
	ActionTrigger      ActionKind = "trigger"
	ActionNothing      ActionKind = "nothing"
)

// Action is a single control message. Command carries the shell command to
// spawn and is only set for ActionTrigger.
type Action struct {
	Kind    ActionKind `json:"kind"`
	Command string     `json:"command,omitempty"`
}

// External reports whether the kind may be submitted by a client over the
// control socket.
func (k ActionKind) External() bool {
	switch k {
	case ActionStop, ActionEnable, ActionDisable, ActionToggle, ActionReloadConfig:
		return true
	}
	return false
}

func (k ActionKind) String() string {
	return string(k)
}
