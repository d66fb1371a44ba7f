package cmd

import (
	"github.com/spf13/afero"
	"github.com/urfave/cli"

	"github.com/sunwatch/sunwatch/internal/config"
	"github.com/sunwatch/sunwatch/internal/daemon"
	"github.com/sunwatch/sunwatch/pkg/logger"
)

// start loads the configuration and runs the daemon in the foreground
// until Stop arrives over the socket or through a termination signal.
func start(ctx *cli.Context) error {
	path := configPath(ctx)
	cfg, err := config.Load(afero.NewOsFs(), path)
	if err != nil {
		printRuntimeErr(ctx, "start", "load_config", err)
		return nil
	}
	log := logger.NewConsoleLogger("sunwatch")
	defer log.Close()

	d := daemon.New(log, cfg, path)
	if err := d.Start(); err != nil {
		printRuntimeErr(ctx, "start", "start_daemon", err)
		return nil
	}
	return d.Run()
}
