package archive_test

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/drivertools/driverget/pkg/infra/archive"
)

type tarEntry struct {
	name    string
	content string
	mode    int64
}

func writeTarGz(t *testing.T, dir string, entries []tarEntry) string {
	t.Helper()

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)
	for _, e := range entries {
		gt.NoError(t, tw.WriteHeader(&tar.Header{
			Name:     e.name,
			Mode:     e.mode,
			Size:     int64(len(e.content)),
			Typeflag: tar.TypeReg,
		}))
		_, err := tw.Write([]byte(e.content))
		gt.NoError(t, err)
	}
	gt.NoError(t, tw.Close())
	gt.NoError(t, gz.Close())

	path := filepath.Join(dir, "test.tar.gz")
	gt.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestUntar(t *testing.T) {
	dir := t.TempDir()
	src := writeTarGz(t, dir, []tarEntry{
		{name: "geckodriver", content: "binary content", mode: 0o755},
	})

	dest := filepath.Join(dir, "out")
	gt.NoError(t, os.MkdirAll(dest, 0o755))
	gt.NoError(t, archive.Untar(src, dest))

	data, err := os.ReadFile(filepath.Join(dest, "geckodriver"))
	gt.NoError(t, err)
	gt.Value(t, string(data)).Equal("binary content")
}

func TestUntar_PreservesMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not meaningful on windows")
	}

	dir := t.TempDir()
	src := writeTarGz(t, dir, []tarEntry{
		{name: "geckodriver", content: "binary", mode: 0o755},
	})

	dest := filepath.Join(dir, "out")
	gt.NoError(t, os.MkdirAll(dest, 0o755))
	gt.NoError(t, archive.Untar(src, dest))

	info, err := os.Stat(filepath.Join(dest, "geckodriver"))
	gt.NoError(t, err)
	gt.Value(t, info.Mode().Perm()&0o100 != 0).Equal(true)
}

func TestUntar_RejectsPathTraversal(t *testing.T) {
	dir := t.TempDir()
	src := writeTarGz(t, dir, []tarEntry{
		{name: "../evil", content: "escape attempt", mode: 0o644},
	})

	dest := filepath.Join(dir, "out")
	gt.NoError(t, os.MkdirAll(dest, 0o755))
	gt.Error(t, archive.Untar(src, dest))
}

func TestUntar_CorruptArchive(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "corrupt.tar.gz")
	gt.NoError(t, os.WriteFile(src, []byte("this is not gzip data"), 0o644))

	gt.Error(t, archive.Untar(src, dir))
}
