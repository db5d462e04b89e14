package archive

import (
	"archive/tar"
	"compress/gzip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Untar extracts all entries of the gzip-compressed tar archive at src into
// destDir. Regular files and directories only; driver tarballs contain
// nothing else.
func Untar(src, destDir string) error {
	f, err := os.Open(src)
	if err != nil {
		return goerr.Wrap(err, "failed to open tar archive", goerr.V("path", src))
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return goerr.Wrap(err, "failed to read gzip stream", goerr.V("path", src))
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return goerr.Wrap(err, "failed to read tar archive", goerr.V("path", src))
		}

		if err := extractTarEntry(tr, hdr, destDir); err != nil {
			return goerr.Wrap(err, "failed to extract tar entry", goerr.V("name", hdr.Name))
		}
	}
}

func extractTarEntry(tr *tar.Reader, hdr *tar.Header, destDir string) error {
	destPath := filepath.Join(destDir, hdr.Name)
	if !strings.HasPrefix(destPath, filepath.Clean(destDir)+string(os.PathSeparator)) {
		return goerr.New("invalid file path in archive", goerr.V("name", hdr.Name))
	}

	switch hdr.Typeflag {
	case tar.TypeDir:
		return os.MkdirAll(destPath, hdr.FileInfo().Mode())

	case tar.TypeReg:
		if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
			return goerr.Wrap(err, "failed to create parent directory", goerr.V("path", destPath))
		}

		dst, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, hdr.FileInfo().Mode())
		if err != nil {
			return goerr.Wrap(err, "failed to create file", goerr.V("path", destPath))
		}

		if _, err := io.Copy(dst, tr); err != nil {
			dst.Close()
			return goerr.Wrap(err, "failed to write file", goerr.V("path", destPath))
		}

		return dst.Close()

	default:
		// skip links and special files
		return nil
	}
}
