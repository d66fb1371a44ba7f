// Package cmd wires the sunwatch command-line surface: one binary that
// either runs the daemon (start) or drives a running one over the
// control socket.
package cmd

import (
	"fmt"

	"github.com/urfave/cli"
)

// BuildArgs carries build metadata injected through ldflags.
type BuildArgs struct {
	Version   string
	Commit    string
	Date      string
	BuildType string
}

var build BuildArgs

func Execute(args []string, buildArgs BuildArgs) error {
	build = buildArgs
	if build.Version == "" {
		build.Version = "dev"
	}
	app := cli.App{
		Name:         "sunwatch",
		HelpName:     "sunwatch",
		Usage:        "run commands at sunrise, sunset, dawn and dusk",
		Version:      fmt.Sprintf("%s-%s", build.Version, build.BuildType),
		UsageText:    "sunwatch <command> [arguments...]",
		OnUsageError: usageErrorCallback,
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "config, c",
				Usage: "path to the configuration file",
			},
		},
		Commands: []cli.Command{
			{
				Name:   "start",
				Usage:  "run the daemon in the foreground",
				Action: start,
			},
			{
				Name:   "enable",
				Usage:  "enable trigger execution",
				Action: enable,
			},
			{
				Name:   "disable",
				Usage:  "disable trigger execution",
				Action: disable,
			},
			{
				Name:   "toggle",
				Usage:  "toggle trigger execution",
				Action: toggle,
			},
			{
				Name:   "stop",
				Usage:  "stop the running daemon",
				Action: stopDaemon,
			},
			{
				Name:   "reload",
				Usage:  "ask the daemon to re-read its configuration",
				Action: reload,
			},
			{
				Name:    "status",
				Aliases: []string{"info"},
				Usage:   "show the next pending event and the configuration",
				Action:  status,
			},
			{
				Name:   "default-config",
				Usage:  "print the default configuration as TOML",
				Action: defaultConfig,
			},
			{
				Name:    "help",
				Aliases: []string{"h"},
				Usage:   "prints the help message",
				Action:  help,
			},
			{
				Name:    "version",
				Aliases: []string{"v"},
				Usage:   "prints the installed version of sunwatch",
				Action:  getVersion,
			},
		},
		Action:      status,
		HideHelp:    true,
		HideVersion: true,
	}
	return app.Run(args)
}
