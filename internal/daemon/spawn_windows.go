//go:build windows

package daemon

import "os/exec"

// spawnShell runs command through cmd.exe. The daemon neither waits for
// nor inspects the exit status; the background Wait only reaps the
// child.
func spawnShell(command string) error {
	cmd := exec.Command("cmd", "/C", command)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
