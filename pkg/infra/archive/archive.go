// Package archive extracts driver archives. Driver releases ship as either
// ZIP or gzip-compressed tar; nothing else is expected or handled.
package archive

import (
	"github.com/m-mizutani/goerr/v2"

	"github.com/drivertools/driverget/pkg/domain/model"
)

// Extract extracts the archive at src into destDir according to kind.
// Extraction failures leave any partially written files in place.
func Extract(kind model.ArchiveKind, src, destDir string) error {
	switch kind {
	case model.ArchiveZip:
		return Unzip(src, destDir)
	case model.ArchiveTarGz:
		return Untar(src, destDir)
	default:
		return goerr.New("unknown archive kind", goerr.V("kind", kind))
	}
}
