package model

// DownloadResult represents the outcome of a driver download and extraction
type DownloadResult struct {
	BinaryPath string // Path to the extracted driver binary
	Version    string // Version that was downloaded
	Size       int64  // Downloaded archive size in bytes
}
