//go:build !windows

package daemon

import (
	"os/exec"
	"syscall"
)

// spawnShell runs command through the system shell in its own session.
// The daemon neither waits for nor inspects the exit status; the
// background Wait only reaps the child.
func spawnShell(command string) error {
	cmd := exec.Command("sh", "-c", command)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
