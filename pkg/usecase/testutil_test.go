package usecase_test

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"testing"

	"github.com/m-mizutani/gt"
)

// createDriverZip returns a ZIP archive holding a single file. Entries
// created this way carry no execute bit.
func createDriverZip(t *testing.T, name string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create(name)
	gt.NoError(t, err)
	_, err = w.Write([]byte("#!/bin/sh\necho fake driver\n"))
	gt.NoError(t, err)
	gt.NoError(t, zw.Close())

	return buf.Bytes()
}

// createDriverTarGz returns a gzip-compressed tar archive holding a single
// file with the given mode
func createDriverTarGz(t *testing.T, name string, mode int64) []byte {
	t.Helper()

	content := []byte("#!/bin/sh\necho fake driver\n")

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)
	gt.NoError(t, tw.WriteHeader(&tar.Header{
		Name:     name,
		Mode:     mode,
		Size:     int64(len(content)),
		Typeflag: tar.TypeReg,
	}))
	_, err := tw.Write(content)
	gt.NoError(t, err)
	gt.NoError(t, tw.Close())
	gt.NoError(t, gz.Close())

	return buf.Bytes()
}
