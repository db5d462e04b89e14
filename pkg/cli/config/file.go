package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
)

// File is the optional TOML configuration carrying defaults for flags.
// Flags and environment variables take precedence over file values.
type File struct {
	Output struct {
		Dir string `toml:"dir"`
	} `toml:"output"`
	Chrome struct {
		Version string `toml:"version"`
	} `toml:"chrome"`
	Gecko struct {
		Version string `toml:"version"`
	} `toml:"gecko"`
}

// LoadFile reads and parses a TOML configuration file
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V("path", path))
	}

	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, goerr.Wrap(err, "failed to parse config file", goerr.V("path", path))
	}

	return &f, nil
}
