package config

import (
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Output holds output directory and config file settings
type Output struct {
	Dir        string
	ConfigPath string
}

// Flags returns CLI flags for output configuration
func (c *Output) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "output-dir",
			Aliases:     []string{"o"},
			Usage:       "Directory to place the driver binary (defaults to the executable's directory)",
			Destination: &c.Dir,
			Sources:     cli.EnvVars("DRIVERGET_OUTPUT_DIR"),
		},
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Path to a TOML config file with default settings",
			Destination: &c.ConfigPath,
			Sources:     cli.EnvVars("DRIVERGET_CONFIG"),
		},
	}
}

// Load parses the config file named by the --config flag, or returns nil
// when none was given
func (c *Output) Load() (*File, error) {
	if c.ConfigPath == "" {
		return nil, nil
	}
	return LoadFile(c.ConfigPath)
}

// Resolve fills the output directory from the config file when the flag was
// not set, falling back to the directory containing the executable
func (c *Output) Resolve(file *File) error {
	if c.Dir == "" && file != nil {
		c.Dir = file.Output.Dir
	}

	if c.Dir == "" {
		exe, err := os.Executable()
		if err != nil {
			return goerr.Wrap(err, "failed to locate executable")
		}
		c.Dir = filepath.Dir(exe)
	}

	return nil
}
