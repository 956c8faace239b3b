// Copyright 2024 Hedgehog
// SPDX-License-Identifier: Apache-2.0

package fsops

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestClassify(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "file"), "x")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "dir"), 0o755))
	require.NoError(t, os.Symlink("dir", filepath.Join(dir, "link")))
	require.NoError(t, os.Symlink("nowhere", filepath.Join(dir, "dangling")))
	require.NoError(t, unix.Mkfifo(filepath.Join(dir, "fifo"), 0o644))

	fsys := NewOsFs()
	for _, test := range []struct {
		path     string
		expected EntryType
	}{
		{"file", File},
		{"dir", Directory},
		{"link", Symlink},
		{"dangling", Symlink},
		{"fifo", Other},
		{"missing", Missing},
	} {
		t.Run(test.path, func(t *testing.T) {
			got, err := Classify(fsys, filepath.Join(dir, test.path))
			require.NoError(t, err)
			require.Equal(t, test.expected, got)
		})
	}
}

func TestDestinationIsDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "file"), "x")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "dir"), 0o755))
	require.NoError(t, os.Symlink("dir", filepath.Join(dir, "dirlink")))

	fsys := NewOsFs()
	for _, test := range []struct {
		name     string
		dest     string
		sources  int
		expected bool
		err      error
	}{
		{name: "single source to dir", dest: "dir", sources: 1},
		{name: "single source to missing", dest: "missing", sources: 1},
		{name: "single source to file", dest: "file", sources: 1},
		{name: "many sources to dir", dest: "dir", sources: 2, expected: true},
		{name: "many sources to dir symlink", dest: "dirlink", sources: 3, expected: true},
		{name: "many sources to file", dest: "file", sources: 2, err: ErrNotDirectory},
		{name: "many sources to missing", dest: "missing", sources: 2, err: ErrNotDirectory},
	} {
		t.Run(test.name, func(t *testing.T) {
			got, err := DestinationIsDirectory(fsys, filepath.Join(dir, test.dest), test.sources)
			if test.err != nil {
				require.ErrorIs(t, err, test.err)

				return
			}

			require.NoError(t, err)
			require.Equal(t, test.expected, got)
		})
	}
}

func TestParseTypeSet(t *testing.T) {
	for _, test := range []struct {
		name     string
		in       []string
		expected TypeSet
		err      bool
	}{
		{name: "file", in: []string{"file"}, expected: OnlyFiles},
		{name: "file and dir", in: []string{"file", "DIR"}, expected: TypeSetOf(File, Directory)},
		{name: "all", in: []string{"file", "dir", "symlink", "other"}, expected: AllTypes},
		{name: "missing is not walkable", in: []string{"missing"}, err: true},
		{name: "unknown", in: []string{"socket"}, err: true},
	} {
		t.Run(test.name, func(t *testing.T) {
			got, err := ParseTypeSet(test.in)
			if test.err {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			require.Equal(t, test.expected, got)
		})
	}
}

func TestTypeSetString(t *testing.T) {
	require.Equal(t, "file", OnlyFiles.String())
	require.Equal(t, "file,dir,symlink,other", AllTypes.String())
	require.True(t, TypeSetOf(Symlink).Has(Symlink))
	require.False(t, TypeSetOf(Symlink).Has(File))
}
