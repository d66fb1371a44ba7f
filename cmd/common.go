package cmd

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/urfave/cli"

	"github.com/sunwatch/sunwatch/internal/config"
)

// configPath resolves the configuration file location: --config flag
// first, then the SUNWATCH_CONFIG environment variable, then the
// default user config directory.
func configPath(ctx *cli.Context) string {
	if path := ctx.GlobalString("config"); path != "" {
		return path
	}
	if path := ctx.String("config"); path != "" {
		return path
	}
	return config.DefaultPath()
}

func help(ctx *cli.Context) error {
	arg := ctx.Args().First()
	if arg == "" || arg == "help" {
		fmt.Printf("%s %s\n", ctx.App.Name, ctx.App.Version)
		cli.ShowAppHelpAndExit(ctx, 0)
		return nil
	}
	err := cli.ShowCommandHelp(ctx, arg)
	if err != nil {
		fmt.Println(err.Error())
	}
	return nil
}

func getVersion(ctx *cli.Context) error {
	fmt.Printf("sunwatch %s (%s/%s)\n", ctx.App.Version, runtime.GOOS, runtime.GOARCH)
	if build.Commit != "" {
		fmt.Printf("commit: %s\n", build.Commit)
	}
	if build.Date != "" {
		fmt.Printf("built:  %s\n", build.Date)
	}
	return nil
}

func printRuntimeErr(ctx *cli.Context, cmd, action string, err error) {
	if err == nil {
		return
	}
	var name string
	if ctx != nil {
		name = ctx.App.HelpName
	} else {
		name = os.Args[0]
	}
	fmt.Printf("%s: %s[%s]: %s\n", name, cmd, action, err.Error())
}

func printErrWithCmdHelp(ctx *cli.Context, err error) error {
	return printErrWithCallback(
		ctx,
		err,
		func() {
			err := cli.ShowCommandHelp(ctx, ctx.Command.Name)
			if err != nil {
				fmt.Println(err.Error())
			}
		},
	)
}

func printErrWithHelp(ctx *cli.Context, err error) error {
	return printErrWithCallback(
		ctx,
		err,
		func() {
			cli.ShowAppHelpAndExit(ctx, 1)
		},
	)
}

func printErrWithCallback(ctx *cli.Context, err error, callback func()) error {
	if err == nil {
		return nil
	}
	estr := strings.ToLower(err.Error())
	if estr == "flag: help requested" {
		return help(ctx)
	}
	fmt.Printf("%s: %s\n\n", ctx.App.HelpName, err.Error())
	callback()
	return nil
}

func usageErrorCallback(ctx *cli.Context, err error, _ bool) error {
	if ctx.Command.Name != "" {
		return printErrWithCmdHelp(ctx, err)
	}
	return printErrWithHelp(ctx, err)
}
