package model

// ArchiveKind identifies the container format of a driver archive
type ArchiveKind int

const (
	ArchiveZip ArchiveKind = iota
	ArchiveTarGz
)

// String returns a human-readable name for logging
func (k ArchiveKind) String() string {
	switch k {
	case ArchiveZip:
		return "zip"
	case ArchiveTarGz:
		return "tar.gz"
	default:
		return "unknown"
	}
}

// Ext returns the filename extension used for the downloaded archive
func (k ArchiveKind) Ext() string {
	switch k {
	case ArchiveTarGz:
		return ".tar.gz"
	default:
		return ".zip"
	}
}
