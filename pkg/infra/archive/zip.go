package archive

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Unzip extracts all entries of the ZIP archive at src into destDir
func Unzip(src, destDir string) error {
	r, err := zip.OpenReader(src)
	if err != nil {
		return goerr.Wrap(err, "failed to open zip archive", goerr.V("path", src))
	}
	defer r.Close()

	for _, file := range r.File {
		if err := extractZipEntry(file, destDir); err != nil {
			return goerr.Wrap(err, "failed to extract zip entry", goerr.V("name", file.Name))
		}
	}

	return nil
}

func extractZipEntry(file *zip.File, destDir string) error {
	// Reject entries that would escape the destination directory
	destPath := filepath.Join(destDir, file.Name)
	if !strings.HasPrefix(destPath, filepath.Clean(destDir)+string(os.PathSeparator)) {
		return goerr.New("invalid file path in archive", goerr.V("name", file.Name))
	}

	if file.FileInfo().IsDir() {
		return os.MkdirAll(destPath, file.FileInfo().Mode())
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return goerr.Wrap(err, "failed to create parent directory", goerr.V("path", destPath))
	}

	rc, err := file.Open()
	if err != nil {
		return goerr.Wrap(err, "failed to open entry in zip")
	}
	defer rc.Close()

	dst, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, file.FileInfo().Mode())
	if err != nil {
		return goerr.Wrap(err, "failed to create file", goerr.V("path", destPath))
	}

	if _, err := io.Copy(dst, rc); err != nil {
		dst.Close()
		return goerr.Wrap(err, "failed to write file", goerr.V("path", destPath))
	}

	return dst.Close()
}
