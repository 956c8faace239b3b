// Copyright 2024 Hedgehog
// SPDX-License-Identifier: Apache-2.0

package fsops

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type ownerCall struct {
	Op   string
	Path string
	UID  int
	GID  int
}

// recordingFs passes everything to the host filesystem except ownership
// changes, which are only recorded so tests don't need to run as root.
type recordingFs struct {
	FS
	calls     []ownerCall
	fail      map[string]error
	renameErr error
}

func newRecordingFs() *recordingFs {
	return &recordingFs{FS: NewOsFs(), fail: map[string]error{}}
}

func (r *recordingFs) record(op, name string, uid, gid int) error {
	if err, ok := r.fail[name]; ok {
		return &os.PathError{Op: op, Path: name, Err: err}
	}
	r.calls = append(r.calls, ownerCall{Op: op, Path: name, UID: uid, GID: gid})

	return nil
}

func (r *recordingFs) Chown(name string, uid, gid int) error {
	return r.record("chown", name, uid, gid)
}

func (r *recordingFs) Lchown(name string, uid, gid int) error {
	return r.record("lchown", name, uid, gid)
}

func (r *recordingFs) Rename(oldname, newname string) error {
	if r.renameErr != nil {
		return &os.LinkError{Op: "rename", Old: oldname, New: newname, Err: r.renameErr}
	}

	return r.FS.Rename(oldname, newname)
}

func (r *recordingFs) paths() []string {
	paths := make([]string, 0, len(r.calls))
	for _, c := range r.calls {
		paths = append(paths, c.Path)
	}

	return paths
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(data)
}

// testTree creates:
//
//	a.txt
//	b/c.txt
//	b/d/e.txt
//	b/dlink -> ../b
//	link -> a.txt
func testTree(t *testing.T) string {
	t.Helper()

	root := filepath.Join(t.TempDir(), "root")
	writeFile(t, filepath.Join(root, "a.txt"), "a")
	writeFile(t, filepath.Join(root, "b", "c.txt"), "c")
	writeFile(t, filepath.Join(root, "b", "d", "e.txt"), "e")
	require.NoError(t, os.Symlink("../b", filepath.Join(root, "b", "dlink")))
	require.NoError(t, os.Symlink("a.txt", filepath.Join(root, "link")))

	return root
}
