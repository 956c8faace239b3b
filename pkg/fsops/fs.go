// Copyright 2024 Hedgehog
// SPDX-License-Identifier: Apache-2.0

// Package fsops resolves and applies ownership changes and renames for
// batches of paths.
package fsops

import (
	"os"

	"github.com/spf13/afero"
)

// FS is the part of a filesystem the mutation engine works with. It matches the
// afero.Fs method set, extended with Lchown for the no-dereference mode.
type FS interface {
	Stat(name string) (os.FileInfo, error)
	LstatIfPossible(name string) (os.FileInfo, bool, error)
	Open(name string) (afero.File, error)
	Chown(name string, uid, gid int) error
	Lchown(name string, uid, gid int) error
	Rename(oldname, newname string) error
}

type osFs struct {
	afero.OsFs
}

var _ FS = (*osFs)(nil)

// NewOsFs returns an FS backed by the host operating system.
func NewOsFs() FS {
	return &osFs{}
}

func (f *osFs) Lchown(name string, uid, gid int) error {
	return os.Lchown(name, uid, gid) //nolint:wrapcheck
}

// lstat is Lstat where the filesystem supports it and Stat otherwise.
func lstat(fsys FS, name string) (os.FileInfo, error) {
	fi, _, err := fsys.LstatIfPossible(name)

	return fi, err //nolint:wrapcheck
}
