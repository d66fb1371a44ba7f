package cmd

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/sunwatch/sunwatch/pkg/sunctl"
)

// sendControl runs one client verb against the daemon socket.
func sendControl(ctx *cli.Context, name string, call func(*sunctl.Client) error) error {
	client, err := sunctl.NewClient()
	if err != nil {
		printRuntimeErr(ctx, name, "new_client", err)
		return nil
	}
	defer client.Close()
	if err := call(client); err != nil {
		printRuntimeErr(ctx, name, "send", err)
		return nil
	}
	fmt.Printf("%s sent.\n", name)
	return nil
}

func enable(ctx *cli.Context) error {
	return sendControl(ctx, "enable", (*sunctl.Client).Enable)
}

func disable(ctx *cli.Context) error {
	return sendControl(ctx, "disable", (*sunctl.Client).Disable)
}

func toggle(ctx *cli.Context) error {
	return sendControl(ctx, "toggle", (*sunctl.Client).Toggle)
}

func stopDaemon(ctx *cli.Context) error {
	return sendControl(ctx, "stop", (*sunctl.Client).Stop)
}

func reload(ctx *cli.Context) error {
	return sendControl(ctx, "reload", (*sunctl.Client).Reload)
}
