// Copyright 2024 Hedgehog
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"
	"go.githedgehog.com/fsops/pkg/fsops"
	"go.githedgehog.com/fsops/pkg/util/logutil"
	"go.githedgehog.com/fsops/pkg/version"
)

const (
	FlagCatGlobal = "Global options:"
)

func main() {
	if err := Run(context.Background(), os.Args); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func Run(ctx context.Context, args []string) error {
	var debug bool
	var logFile string
	var force, interactive, verbose bool

	var closer io.Closer

	cli.VersionFlag.(*cli.BoolFlag).Aliases = []string{"V"}
	app := &cli.App{
		Name:  "mv",
		Usage: "rename SOURCE to DEST, or move SOURCE(s) to DIRECTORY",
		UsageText: "mv [OPTION]... SOURCE DEST\n" +
			"mv [OPTION]... SOURCE... DIRECTORY",
		Version:                version.Version,
		HideHelpCommand:        true,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "force",
				Aliases:     []string{"f"},
				Usage:       "do not prompt before overwriting",
				Destination: &force,
			},
			&cli.BoolFlag{
				Name:        "interactive",
				Aliases:     []string{"i"},
				Usage:       "prompt before overwrite",
				Destination: &interactive,
			},
			&cli.BoolFlag{
				Name:        "verbose",
				Aliases:     []string{"v"},
				Usage:       "explain what is being done",
				Destination: &verbose,
			},
			&cli.BoolFlag{
				Name:        "debug",
				Usage:       "debug logging",
				EnvVars:     []string{"FSOPS_DEBUG"},
				Destination: &debug,
				Category:    FlagCatGlobal,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "also write debug log to `PATH`",
				EnvVars:     []string{"FSOPS_LOG_FILE"},
				Destination: &logFile,
				Category:    FlagCatGlobal,
			},
		},
		Before: func(_ *cli.Context) error {
			closer = logutil.Setup("mv", version.Version, logutil.Options{Debug: debug, LogFile: logFile})

			return nil
		},
		Action: func(cCtx *cli.Context) error {
			if cCtx.NArg() < 2 {
				_ = cli.ShowAppHelp(cCtx)

				return fmt.Errorf("%w: at least two arguments required", fsops.ErrOperands)
			}

			if _, err := fsops.MoveAll(ctx, fsops.NewOsFs(), fsops.MoveConfig{
				Interactive: interactive,
				Force:       force,
				Verbose:     verbose,
				Confirmer:   fsops.NewConfirmer(os.Stdin, os.Stderr),
				Out:         cCtx.App.Writer,
			}, cCtx.Args().Slice()); err != nil {
				return err //nolint:wrapcheck
			}

			return nil
		},
	}

	err := app.Run(args)

	if closer != nil {
		closer.Close()
	}

	return err //nolint:wrapcheck
}
