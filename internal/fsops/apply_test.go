package fsops

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skelgen/internal/layout"
	"skelgen/internal/safety"
	"skelgen/internal/tree"
)

func scenario() tree.Dir {
	return tree.NewDir(
		tree.Sub("a", tree.Text("b.txt", "hello")),
		tree.Empty("c.txt"),
	)
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(b)
}

func TestMaterialize_Scenario(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Materialize(osfs.New(dir), "out", scenario()))

	assert.DirExists(t, filepath.Join(dir, "out"))
	assert.DirExists(t, filepath.Join(dir, "out", "a"))
	assert.Equal(t, "hello", readFile(t, filepath.Join(dir, "out", "a", "b.txt")))

	info, err := os.Stat(filepath.Join(dir, "out", "c.txt"))
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular())
	assert.Zero(t, info.Size())
}

func TestApply_SecondRunSucceeds(t *testing.T) {
	fs := osfs.New(t.TempDir())

	first, err := Apply(ApplyArgs{FS: fs, Root: scenario(), DestRoot: "out"})
	require.NoError(t, err)
	assert.Equal(t, Result{DirsCreated: 2, FilesWritten: 2}, first)

	second, err := Apply(ApplyArgs{FS: fs, Root: scenario(), DestRoot: "out"})
	require.NoError(t, err)
	assert.Equal(t, Result{DirsExisting: 2, FilesWritten: 2}, second)
}

func TestApply_TruncatesExistingFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out", "a", "b.txt")

	require.NoError(t, os.MkdirAll(filepath.Dir(target), 0o755))
	require.NoError(t, os.WriteFile(target, []byte("stale content that is longer"), 0o644))

	require.NoError(t, Materialize(osfs.New(dir), "out", scenario()))

	assert.Equal(t, "hello", readFile(t, target))
}

func TestApply_EmptyDir(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Materialize(osfs.New(dir), "out", tree.NewDir(tree.Sub("empty"))))

	entries, err := os.ReadDir(filepath.Join(dir, "out", "empty"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestApply_EmptyRoot(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Materialize(osfs.New(dir), "nested/out", tree.Dir{}))

	assert.DirExists(t, filepath.Join(dir, "nested", "out"))
}

func TestApply_ExistingNonEmptyBase(t *testing.T) {
	dir := t.TempDir()
	keep := filepath.Join(dir, "out", "keep.md")

	require.NoError(t, os.MkdirAll(filepath.Dir(keep), 0o755))
	require.NoError(t, os.WriteFile(keep, []byte("mine"), 0o644))

	require.NoError(t, Materialize(osfs.New(dir), "out", scenario()))

	assert.Equal(t, "mine", readFile(t, keep))
	assert.FileExists(t, filepath.Join(dir, "out", "c.txt"))
}

func TestApply_FileWhereDirExpected(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "out", "a")

	require.NoError(t, os.MkdirAll(filepath.Dir(blocker), 0o755))
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	err := Materialize(osfs.New(dir), "out", scenario())

	require.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, "x", readFile(t, blocker))
	assert.NoFileExists(t, filepath.Join(dir, "out", "c.txt"))
}

func TestApply_DirWhereFileExpected(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "out", "c.txt"), 0o755))

	err := Materialize(osfs.New(dir), "out", scenario())

	require.ErrorIs(t, err, ErrConflict)
	assert.DirExists(t, filepath.Join(dir, "out", "c.txt"))
}

func TestApply_BaseIsFile(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "out"), nil, 0o644))

	err := Materialize(osfs.New(dir), "out", scenario())

	require.ErrorIs(t, err, ErrConflict)
}

func TestApply_AncestorIsFile(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "blocker"), nil, 0o644))

	err := Materialize(osfs.New(dir), "blocker/out", scenario())

	require.Error(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "c.txt"))
}

func TestApply_InvalidTreeTouchesNothing(t *testing.T) {
	dir := t.TempDir()
	root := tree.NewDir(tree.Empty("ok"), tree.Empty("../escape"))

	err := Materialize(osfs.New(dir), "out", root)

	require.ErrorIs(t, err, ErrInvalidTree)
	require.ErrorIs(t, err, safety.ErrInvalidName)
	assert.NoDirExists(t, filepath.Join(dir, "out"))
}

func TestApply_DryRun(t *testing.T) {
	fs := memfs.New()
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	res, err := Apply(ApplyArgs{
		FS:       fs,
		Root:     scenario(),
		DestRoot: "out",
		DryRun:   true,
		Log:      logger,
	})
	require.NoError(t, err)

	assert.Equal(t, Result{DirsCreated: 2, FilesWritten: 2}, res)

	_, err = fs.Stat("out")
	assert.True(t, os.IsNotExist(err))

	var actions []string
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.InfoLevel {
			actions = append(actions, e.Message+" "+e.Data["path"].(string))
		}
	}
	assert.Equal(t, []string{
		"mkdir -p out",
		"mkdir -p " + filepath.Join("out", "a"),
		"write " + filepath.Join("out", "a", "b.txt"),
		"write " + filepath.Join("out", "c.txt"),
	}, actions)
}

func TestApply_Permissions(t *testing.T) {
	tests := []struct {
		desc     string
		dirPerm  os.FileMode
		filePerm os.FileMode
	}{
		{"restrictive", 0o700, 0o600},
		{"wider than umask", 0o777, 0o666},
		{"defaults", 0, 0},
	}

	for i, tc := range tests {
		dir := t.TempDir()

		_, err := Apply(ApplyArgs{
			FS:       NewHostFS(dir),
			Root:     scenario(),
			DestRoot: "out",
			DirPerm:  tc.dirPerm,
			FilePerm: tc.filePerm,
		})
		require.NoError(t, err, "TEST[%d], Failed.\n%s", i, tc.desc)

		wantDir, wantFile := tc.dirPerm, tc.filePerm
		if wantDir == 0 {
			wantDir, wantFile = DefaultDirPerm, DefaultFilePerm
		}

		info, err := os.Stat(filepath.Join(dir, "out", "a"))
		require.NoError(t, err)
		assert.Equal(t, wantDir, info.Mode().Perm(), "TEST[%d], Failed.\n%s", i, tc.desc)

		info, err = os.Stat(filepath.Join(dir, "out", "a", "b.txt"))
		require.NoError(t, err)
		assert.Equal(t, wantFile, info.Mode().Perm(), "TEST[%d], Failed.\n%s", i, tc.desc)
	}
}

func TestApply_TruncatedFileGetsFilePerm(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out", "c.txt")

	require.NoError(t, os.MkdirAll(filepath.Dir(target), 0o755))
	require.NoError(t, os.WriteFile(target, []byte("old"), 0o600))

	_, err := Apply(ApplyArgs{FS: NewHostFS(dir), Root: scenario(), DestRoot: "out", FilePerm: 0o664})
	require.NoError(t, err)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o664), info.Mode().Perm())
	assert.Zero(t, info.Size())
}

func TestApply_SymlinkedBase(t *testing.T) {
	dir := t.TempDir()
	linked := filepath.Join(dir, "real")

	require.NoError(t, os.Mkdir(linked, 0o755))
	require.NoError(t, os.Symlink(linked, filepath.Join(dir, "out")))

	res, err := Apply(ApplyArgs{FS: NewHostFS(dir), Root: scenario(), DestRoot: "out"})
	require.NoError(t, err)

	assert.Equal(t, Result{DirsCreated: 1, DirsExisting: 1, FilesWritten: 2}, res)
	assert.Equal(t, "hello", readFile(t, filepath.Join(linked, "a", "b.txt")))
	assert.FileExists(t, filepath.Join(linked, "c.txt"))
}

func TestApply_SymlinkedSubdir(t *testing.T) {
	dir := t.TempDir()
	realA := filepath.Join(dir, "realA")

	require.NoError(t, os.Mkdir(realA, 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "out"), 0o755))
	require.NoError(t, os.Symlink(realA, filepath.Join(dir, "out", "a")))

	require.NoError(t, Materialize(NewHostFS(dir), "out", scenario()))

	assert.Equal(t, "hello", readFile(t, filepath.Join(realA, "b.txt")))
}

func TestApply_SymlinkToFileWhereDirExpected(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain")

	require.NoError(t, os.WriteFile(file, nil, 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "out"), 0o755))
	require.NoError(t, os.Symlink(file, filepath.Join(dir, "out", "a")))

	err := Materialize(NewHostFS(dir), "out", scenario())

	require.ErrorIs(t, err, ErrConflict)
}

func TestApply_SymlinkToDirWhereFileExpected(t *testing.T) {
	dir := t.TempDir()
	realDir := filepath.Join(dir, "realDir")

	require.NoError(t, os.Mkdir(realDir, 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "out"), 0o755))
	require.NoError(t, os.Symlink(realDir, filepath.Join(dir, "out", "c.txt")))

	err := Materialize(NewHostFS(dir), "out", tree.NewDir(tree.Empty("c.txt")))

	require.ErrorIs(t, err, ErrConflict)
}

func TestHostFS_ChmodStaysInsideRoot(t *testing.T) {
	fs := NewHostFS(t.TempDir())

	err := fs.Chmod("../outside", 0o777)

	require.ErrorIs(t, err, safety.ErrOutsideRoot)
}

func TestMaterialize_EveryPathExists(t *testing.T) {
	fs := memfs.New()
	root := layout.Flutter()

	require.NoError(t, Materialize(fs, "project_structure", root))

	err := tree.Walk(root, func(rel string, n tree.Node) error {
		info, err := fs.Stat(filepath.Join("project_structure", filepath.FromSlash(rel)))
		require.NoError(t, err, rel)

		_, isDir := n.(tree.Dir)
		assert.Equal(t, isDir, info.IsDir(), rel)
		if !isDir {
			assert.Zero(t, info.Size(), rel)
		}
		return nil
	})
	require.NoError(t, err)
}
