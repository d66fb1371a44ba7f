package sunctl

import "github.com/sunwatch/sunwatch/common"

// Enable turns trigger execution on.
func (c *Client) Enable() error {
	return c.send(common.ActionEnable)
}

// Disable turns trigger execution off. The scheduler keeps running;
// fired triggers spawn nothing while disabled.
func (c *Client) Disable() error {
	return c.send(common.ActionDisable)
}

// Toggle flips the enabled flag.
func (c *Client) Toggle() error {
	return c.send(common.ActionToggle)
}

// Stop terminates the daemon.
func (c *Client) Stop() error {
	return c.send(common.ActionStop)
}

// Reload asks the daemon to re-read its configuration file.
func (c *Client) Reload() error {
	return c.send(common.ActionReloadConfig)
}
