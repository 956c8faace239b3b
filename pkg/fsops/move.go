// Copyright 2024 Hedgehog
// SPDX-License-Identifier: Apache-2.0

package fsops

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"golang.org/x/sys/unix"
)

type MoveOptions struct {
	// IntoDirectory moves source to destination/basename(source).
	IntoDirectory bool
	// Interactive asks Confirmer before replacing an existing entry.
	Interactive bool
	// Force suppresses the question even if Interactive is set.
	Force     bool
	Confirmer Confirmer
}

// Move renames source and returns where it ended up. The rename is a single
// OS rename, there is no copy fallback across filesystems.
func Move(fsys FS, source, destination string, opts MoveOptions) (string, error) {
	target := destination
	if opts.IntoDirectory {
		target = targetPath(source, destination)
	}

	if opts.Interactive && !opts.Force {
		_, err := lstat(fsys, target)
		switch {
		case err == nil:
			if opts.Confirmer == nil {
				return target, fmt.Errorf("%w: %q exists and there is no one to ask", ErrDeclined, target)
			}

			ok, err := opts.Confirmer.Confirm(target)
			if err != nil {
				return target, fmt.Errorf("confirming overwrite of %q: %w", target, err)
			}
			if !ok {
				return target, fmt.Errorf("%w: %q", ErrDeclined, target)
			}
		case !errors.Is(err, fs.ErrNotExist):
			return target, fmt.Errorf("checking %q: %w", target, err)
		}
	}

	slog.Debug("Renaming", "from", source, "to", target)

	if err := fsys.Rename(source, target); err != nil {
		if errors.Is(err, unix.EXDEV) {
			return target, fmt.Errorf("%w: moving %q to %q: %w", ErrCrossDevice, source, target, err)
		}

		return target, fmt.Errorf("moving %q to %q: %w", source, target, err)
	}

	return target, nil
}
