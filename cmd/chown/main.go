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
	var recursive, verbose, noDereference bool
	maxOpenDirs := fsops.DefaultMaxOpenDirs

	var closer io.Closer

	cli.VersionFlag.(*cli.BoolFlag).Aliases = []string{"V"}
	app := &cli.App{
		Name:                   "chown",
		Usage:                  "change the owner and group of files",
		UsageText:              "chown [OPTION]... OWNER[:GROUP] FILE...",
		Version:                version.Version,
		HideHelpCommand:        true,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "recursive",
				Aliases:     []string{"R"},
				Usage:       "operate on files and directories recursively",
				Destination: &recursive,
			},
			&cli.BoolFlag{
				Name:        "verbose",
				Aliases:     []string{"v"},
				Usage:       "output a diagnostic for every file processed",
				Destination: &verbose,
			},
			&cli.BoolFlag{
				Name:        "no-dereference",
				Aliases:     []string{"d"},
				Usage:       "affect symbolic links instead of any referenced file",
				Destination: &noDereference,
			},
			&cli.StringSliceFlag{
				Name:    "type",
				Usage:   "entry `TYPE`s changed in recursive mode (file, dir, symlink, other)",
				EnvVars: []string{"FSOPS_CHOWN_TYPE"},
				Value:   cli.NewStringSlice(fsops.File.String()),
			},
			&cli.IntFlag{
				Name:        "max-open-dirs",
				Usage:       "maximum `NUMBER` of directories kept open in recursive mode",
				EnvVars:     []string{"FSOPS_MAX_OPEN_DIRS"},
				Value:       fsops.DefaultMaxOpenDirs,
				Destination: &maxOpenDirs,
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
			closer = logutil.Setup("chown", version.Version, logutil.Options{Debug: debug, LogFile: logFile})

			return nil
		},
		Action: func(cCtx *cli.Context) error {
			if cCtx.NArg() < 2 {
				_ = cli.ShowAppHelp(cCtx)

				return fmt.Errorf("%w: missing operand", fsops.ErrOperands)
			}

			typeSet, err := fsops.ParseTypeSet(cCtx.StringSlice("type"))
			if err != nil {
				return fmt.Errorf("parsing types: %w", err)
			}

			ownership, err := fsops.NewResolver().Resolve(cCtx.Args().First())
			if err != nil {
				return fmt.Errorf("resolving owner: %w", err)
			}

			res, err := fsops.ChownAll(ctx, fsops.NewOsFs(), fsops.ChownConfig{
				Ownership:     ownership,
				Recursive:     recursive,
				NoDereference: noDereference,
				Verbose:       verbose,
				Walk: fsops.WalkOptions{
					Types:       typeSet,
					MaxOpenDirs: maxOpenDirs,
				},
				Out: cCtx.App.Writer,
			}, cCtx.Args().Tail())
			if err != nil {
				return fmt.Errorf("changing ownership: %w", err)
			}

			return res.Err() //nolint:wrapcheck
		},
	}

	err := app.Run(args)

	if closer != nil {
		closer.Close()
	}

	return err //nolint:wrapcheck
}
