package model

import (
	"runtime"
	"strings"
)

// Platform describes the host OS family and machine architecture
type Platform struct {
	OS   string // Operating system (darwin, linux, windows)
	Arch string // Architecture identifier (e.g. amd64, arm64, x86_64, i686)
}

// DetectPlatform returns the platform of the running process. Tests inject
// synthetic Platform values instead of calling this.
func DetectPlatform() Platform {
	return Platform{
		OS:   runtime.GOOS,
		Arch: runtime.GOARCH,
	}
}

// Is64Bit reports whether the architecture identifier looks 64-bit.
// Substring match on "64", the same heuristic the driver release naming uses.
func (p Platform) Is64Bit() bool {
	return strings.Contains(p.Arch, "64")
}
