package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/afero"
	"github.com/urfave/cli"

	"github.com/sunwatch/sunwatch/internal/config"
	"github.com/sunwatch/sunwatch/internal/scheduler"
)

// status answers locally, without the daemon: it loads the
// configuration, builds a trigger source and prints the next pending
// event plus the effective configuration.
func status(ctx *cli.Context) error {
	cfg, err := config.Load(afero.NewOsFs(), configPath(ctx))
	if err != nil {
		printRuntimeErr(ctx, "status", "load_config", err)
		return nil
	}

	src, err := scheduler.FromConfig(&cfg)
	if err != nil {
		fmt.Printf("no active scheduler: %s\n", err.Error())
	} else {
		ev, err := src.NextEventAt(time.Now().UTC())
		switch {
		case err != nil:
			printRuntimeErr(ctx, "status", "next_event", err)
			return nil
		case ev == nil:
			fmt.Println("no pending event")
		default:
			fmt.Printf("next event: %s at %s", ev.Trigger, ev.At.Local().Format(time.RFC1123))
			if ev.Command != "" {
				fmt.Printf(" (%s)", ev.Command)
			}
			fmt.Println()
		}
	}

	rendered, err := cfg.TOML()
	if err != nil {
		printRuntimeErr(ctx, "status", "encode_config", err)
		return nil
	}
	fmt.Print(rendered)
	return nil
}

// defaultConfig prints the default configuration as TOML.
func defaultConfig(ctx *cli.Context) error {
	rendered, err := config.Default().TOML()
	if err != nil {
		printRuntimeErr(ctx, "default-config", "encode_config", err)
		return nil
	}
	fmt.Print(rendered)
	return nil
}
