package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/vocab/internal/build"
	"github.com/dtnitsch/vocab/pkg/help"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &cli.App{
		Name:  "vocab",
		Usage: "build word frequency tables from text, files, HTML pages and SQLite rows",
		Commands: []*cli.Command{
			{
				Name:      "build",
				Usage:     "Build the vocabulary of one or more inputs",
				ArgsUsage: "[file ...] (- reads stdin)",
				Flags:     build.Flags(),
				Action:    build.BuildAction,
			},
			{
				Name:  "quickstart",
				Usage: "Print examples and the config file format",
				Action: func(c *cli.Context) error {
					fmt.Fprint(c.App.Writer, help.ColdstartYAML)
					return nil
				},
			},
		},
	}

	if err := app.RunContext(ctx, os.Args); err != nil {
		// cli.Exit errors have already been printed and exited
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
