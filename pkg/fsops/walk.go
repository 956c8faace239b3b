// Copyright 2024 Hedgehog
// SPDX-License-Identifier: Apache-2.0

package fsops

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
)

// EntryFunc is called for every walked entry matching the type filter.
type EntryFunc func(path string, typ EntryType) error

type WalkResult struct {
	Visited int
	Failed  []Result
}

type walker struct {
	fsys FS
	opts WalkOptions
	fn   EntryFunc
	open int
	res  WalkResult
}

// Walk visits root and everything below it in pre-order, children sorted by
// name. Symlinks are reported but never descended into, except for root itself
// with FollowRoot set. Errors returned by fn and unreadable nested directories
// are collected in the result; only a root that can't be read, or running out
// of the directory handle budget, fails the walk itself.
func Walk(fsys FS, root string, opts WalkOptions, fn EntryFunc) (WalkResult, error) {
	opts, err := opts.WithDefaults()
	if err != nil {
		return WalkResult{}, err
	}

	var fi os.FileInfo
	if opts.FollowRoot {
		fi, err = fsys.Stat(root)
	} else {
		fi, err = lstat(fsys, root)
	}
	if err != nil {
		return WalkResult{}, fmt.Errorf("%w %q: %w", ErrTraversal, root, err)
	}

	w := &walker{fsys: fsys, opts: opts, fn: fn}
	if err := w.walk(root, EntryTypeOf(fi.Mode()), true); err != nil {
		return w.res, err
	}

	return w.res, nil
}

func (w *walker) fail(path string, err error) {
	slog.Debug("Walk entry failed", "path", path, "err", err)
	w.res.Failed = append(w.res.Failed, Result{Path: path, Err: err})
}

func (w *walker) walk(path string, typ EntryType, root bool) error {
	if w.opts.Types.Has(typ) {
		w.res.Visited++
		if err := w.fn(path, typ); err != nil {
			w.fail(path, err)
		}
	}

	if typ != Directory {
		return nil
	}

	if w.open >= w.opts.MaxOpenDirs {
		return fmt.Errorf("%w: %q is nested deeper than %d directories", ErrTooManyOpenDirs, path, w.opts.MaxOpenDirs)
	}

	dir, err := w.fsys.Open(path)
	if err != nil {
		if root {
			return fmt.Errorf("%w %q: %w", ErrTraversal, path, err)
		}
		w.fail(path, fmt.Errorf("opening directory: %w", err))

		return nil
	}
	w.open++
	defer func() {
		w.open--
		dir.Close()
	}()

	names, err := dir.Readdirnames(-1)
	if err != nil {
		if root {
			return fmt.Errorf("%w %q: %w", ErrTraversal, path, err)
		}
		w.fail(path, fmt.Errorf("reading directory: %w", err))

		return nil
	}
	slices.Sort(names)

	for _, name := range names {
		child := filepath.Join(path, name)

		fi, err := lstat(w.fsys, child)
		if err != nil {
			w.fail(child, err)

			continue
		}

		if err := w.walk(child, EntryTypeOf(fi.Mode()), false); err != nil {
			return err
		}
	}

	return nil
}
