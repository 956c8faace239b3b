// Copyright 2024 Hedgehog
// SPDX-License-Identifier: Apache-2.0

package fsops

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/samber/lo"
)

type EntryType uint8

const (
	Missing EntryType = iota
	File
	Directory
	Symlink
	Other
)

var entryTypeNames = map[EntryType]string{
	Missing:   "missing",
	File:      "file",
	Directory: "dir",
	Symlink:   "symlink",
	Other:     "other",
}

func (t EntryType) String() string {
	if name, ok := entryTypeNames[t]; ok {
		return name
	}

	return fmt.Sprintf("EntryType(%d)", uint8(t))
}

// EntryTypeOf maps file mode bits to an entry type. The mode should come from
// Lstat so that symlinks are reported as such.
func EntryTypeOf(mode fs.FileMode) EntryType {
	switch {
	case mode.IsRegular():
		return File
	case mode.IsDir():
		return Directory
	case mode&fs.ModeSymlink != 0:
		return Symlink
	default:
		return Other
	}
}

// TypeSet is a set of entry types used to filter walked entries.
type TypeSet uint8

const (
	OnlyFiles TypeSet = 1 << File
	AllTypes  TypeSet = 1<<File | 1<<Directory | 1<<Symlink | 1<<Other
)

func TypeSetOf(types ...EntryType) TypeSet {
	var set TypeSet
	for _, t := range types {
		set |= 1 << t
	}

	return set
}

func (s TypeSet) Has(t EntryType) bool {
	return s&(1<<t) != 0
}

func (s TypeSet) String() string {
	names := []string{}
	for _, t := range []EntryType{File, Directory, Symlink, Other} {
		if s.Has(t) {
			names = append(names, t.String())
		}
	}

	return strings.Join(names, ",")
}

// ParseTypeSet parses entry type names as printed by EntryType.String.
func ParseTypeSet(names []string) (TypeSet, error) {
	valid := lo.Without(lo.Values(entryTypeNames), Missing.String())
	slices.Sort(valid)

	types := make([]EntryType, 0, len(names))
	for _, name := range names {
		t, ok := lo.FindKey(entryTypeNames, strings.ToLower(strings.TrimSpace(name)))
		if !ok || t == Missing {
			return 0, fmt.Errorf("unknown entry type %q, expected one of %s", name, strings.Join(valid, ", ")) //nolint:goerr113
		}
		types = append(types, t)
	}

	return TypeSetOf(types...), nil
}

// Classify reports the type of the entry at path without following a final
// symlink. A missing path is not an error.
func Classify(fsys FS, path string) (EntryType, error) {
	fi, err := lstat(fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		return Missing, nil
	}
	if err != nil {
		return Missing, fmt.Errorf("classifying %q: %w", path, err)
	}

	return EntryTypeOf(fi.Mode()), nil
}

// Operand is a path given on the command line.
type Operand struct {
	Raw  string
	Path string
	Type EntryType
}

func NewOperand(fsys FS, raw string) (Operand, error) {
	op := Operand{Raw: raw, Path: filepath.Clean(raw)}

	typ, err := Classify(fsys, op.Path)
	if err != nil {
		return op, err
	}
	op.Type = typ

	return op, nil
}

// DestinationIsDirectory reports whether sources should be moved into dest
// rather than renamed to it. A single source is always a literal rename and
// dest isn't inspected at all. With several sources dest has to be an
// existing directory (symlinks to directories are fine).
func DestinationIsDirectory(fsys FS, dest string, sources int) (bool, error) {
	if sources <= 1 {
		return false, nil
	}

	fi, err := fsys.Stat(dest)
	if err != nil {
		return false, fmt.Errorf("%w: cannot stat %q: %w", ErrNotDirectory, dest, err)
	}
	if !fi.IsDir() {
		return false, fmt.Errorf("%w: %q: last argument must be a directory", ErrNotDirectory, dest)
	}

	return true, nil
}

// targetPath is where source ends up when moved into dir.
func targetPath(source, dir string) string {
	return filepath.Join(dir, filepath.Base(filepath.Clean(source)))
}
