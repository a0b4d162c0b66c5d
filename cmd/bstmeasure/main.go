package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/carlmjohnson/versioninfo"
	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	app := cli.App{
		Name:    "bstmeasure",
		Usage:   "build unbalanced binary search trees and measure their lookup costs",
		Version: versioninfo.Short(),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Usage:   "log at debug level",
				EnvVars: []string{"BST_VERBOSE"},
			},
		},
		Before: func(cctx *cli.Context) error {
			level := slog.LevelInfo
			if cctx.Bool("verbose") {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
			return nil
		},
	}
	app.Commands = []*cli.Command{
		cmdShow,
		cmdCompare,
	}
	return app.Run(args)
}
