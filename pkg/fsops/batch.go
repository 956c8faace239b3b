// Copyright 2024 Hedgehog
// SPDX-License-Identifier: Apache-2.0

package fsops

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/lo"
)

// Result is the outcome for a single path, Err is nil on success.
type Result struct {
	Path string
	Err  error
}

func (r Result) Error() string {
	if r.Err == nil {
		return r.Path
	}

	return r.Path + ": " + r.Err.Error()
}

func (r Result) Unwrap() error {
	return r.Err
}

type BatchResult struct {
	Results []Result
}

func (b *BatchResult) add(path string, err error) {
	b.Results = append(b.Results, Result{Path: path, Err: err})
}

func (b *BatchResult) Succeeded() []Result {
	return lo.Filter(b.Results, func(r Result, _ int) bool { return r.Err == nil })
}

func (b *BatchResult) Failed() []Result {
	return lo.Filter(b.Results, func(r Result, _ int) bool { return r.Err != nil })
}

// Err returns ErrPartialFailure if anything in the batch failed.
func (b *BatchResult) Err() error {
	if failed := len(b.Failed()); failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrPartialFailure, failed, len(b.Results))
	}

	return nil
}

// ChownAll changes ownership of every operand, walking directory trees in
// recursive mode. A symlinked operand is resolved before walking unless
// NoDereference is set. Every operand gets at least one result. Failures are
// recorded per path and never stop the batch; check BatchResult.Err for the
// overall outcome.
func ChownAll(ctx context.Context, fsys FS, cfg ChownConfig, operands []string) (*BatchResult, error) {
	if len(operands) == 0 {
		return nil, fmt.Errorf("%w: missing file operand", ErrOperands)
	}
	if err := cfg.Default(); err != nil {
		return nil, err
	}

	owner := cfg.Ownership
	follow := !cfg.NoDereference
	res := &BatchResult{}

	changed := func(path string) {
		if cfg.Verbose {
			fmt.Fprintf(cfg.Out, "changed ownership of '%s' to '%s'\n", path, owner)
		}
	}

	for _, operand := range operands {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("changing ownership: %w", err)
		}

		op, err := NewOperand(fsys, operand)
		if err != nil {
			slog.Error("Failed to inspect", "path", operand, "err", err)
			res.add(op.Path, err)

			continue
		}
		path := op.Path
		slog.Debug("Changing ownership", "path", path, "type", op.Type, "owner", owner)

		// a symlink operand is never descended without dereferencing, so it's
		// changed itself just like without recursion
		if !cfg.Recursive || (op.Type == Symlink && !follow) {
			err := Chown(fsys, path, owner.UID, owner.GID, follow)
			if err != nil {
				slog.Error("Failed to change ownership", "path", path, "err", err)
			} else {
				changed(path)
			}
			res.add(path, err)

			continue
		}

		walk, err := ChownTree(fsys, path, ChownOptions{
			UID:            owner.UID,
			GID:            owner.GID,
			FollowSymlinks: follow,
			Walk:           cfg.Walk,
			Changed: func(entry string) {
				changed(entry)
				res.add(entry, nil)
			},
		})
		for _, failed := range walk.Failed {
			slog.Error("Failed to change ownership", "path", failed.Path, "err", failed.Err)
			res.add(failed.Path, failed.Err)
		}
		if err != nil {
			slog.Error("Failed to walk", "root", path, "err", err)
			res.add(path, err)
		} else if walk.Visited == 0 && len(walk.Failed) == 0 {
			// nothing below matched the type filter, still an outcome for the operand
			res.add(path, nil)
		}

		slog.Debug("Walked", "root", path, "visited", walk.Visited, "failed", len(walk.Failed))
	}

	return res, nil
}

// MoveAll renames operands[0] to operands[1], or moves all but the last operand
// into the last one, which has to be a directory then. The first failure stops
// the batch and is returned; moves done before it are kept.
func MoveAll(ctx context.Context, fsys FS, cfg MoveConfig, operands []string) (*BatchResult, error) {
	if len(operands) < 2 {
		return nil, fmt.Errorf("%w: at least two arguments required", ErrOperands)
	}
	cfg.Default()

	sources, dest := operands[:len(operands)-1], operands[len(operands)-1]

	intoDir, err := DestinationIsDirectory(fsys, dest, len(sources))
	if err != nil {
		return nil, err
	}

	opts := MoveOptions{
		IntoDirectory: intoDir,
		Interactive:   cfg.Interactive,
		Force:         cfg.Force,
		Confirmer:     cfg.Confirmer,
	}

	res := &BatchResult{}
	for _, source := range sources {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("moving: %w", err)
		}

		slog.Debug("Moving", "source", source, "dest", dest, "intoDir", intoDir)

		target, err := Move(fsys, source, dest, opts)
		res.add(source, err)
		if err != nil {
			return res, err
		}

		if cfg.Verbose {
			fmt.Fprintf(cfg.Out, "'%s' -> '%s'\n", source, target)
		}
	}

	return res, nil
}
