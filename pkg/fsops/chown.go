// Copyright 2024 Hedgehog
// SPDX-License-Identifier: Apache-2.0

package fsops

import "fmt"

// Chown changes the owner and group of path. Unset keeps the corresponding id.
// Without followSymlinks a symlink itself is changed instead of its target.
func Chown(fsys FS, path string, uid, gid int, followSymlinks bool) error {
	chown := fsys.Chown
	if !followSymlinks {
		chown = fsys.Lchown
	}

	if err := chown(path, uid, gid); err != nil {
		return fmt.Errorf("changing ownership of %q: %w", path, err)
	}

	return nil
}

type ChownOptions struct {
	UID int
	GID int

	// FollowSymlinks resolves a symlinked root and changes the targets of
	// symlinks given directly. Symlinks met inside the tree are always changed
	// themselves so the walk never leaves the tree or revisits parts of it.
	FollowSymlinks bool
	Walk           WalkOptions

	// Changed is called for every entry changed successfully.
	Changed func(path string)
}

// ChownTree applies Chown to every entry of the tree at root that matches the
// walk type filter.
func ChownTree(fsys FS, root string, opts ChownOptions) (WalkResult, error) {
	walkOpts := opts.Walk
	walkOpts.FollowRoot = opts.FollowSymlinks

	return Walk(fsys, root, walkOpts, func(path string, typ EntryType) error {
		if err := Chown(fsys, path, opts.UID, opts.GID, opts.FollowSymlinks && typ != Symlink); err != nil {
			return err
		}
		if opts.Changed != nil {
			opts.Changed(path)
		}

		return nil
	})
}
