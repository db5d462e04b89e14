package config

import "github.com/urfave/cli/v3"

// Driver holds the requested driver version
type Driver struct {
	Version string
}

// ChromeFlags returns CLI flags for the chromedriver version
func (c *Driver) ChromeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "driver-version",
			Aliases:     []string{"V"},
			Usage:       "chromedriver version: \"latest\", a major version (e.g. 78), or a full version",
			Destination: &c.Version,
			Sources:     cli.EnvVars("DRIVERGET_CHROME_VERSION"),
		},
	}
}

// GeckoFlags returns CLI flags for the geckodriver version
func (c *Driver) GeckoFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "driver-version",
			Aliases:     []string{"V"},
			Usage:       "geckodriver version (e.g. 0.26.0)",
			Destination: &c.Version,
			Sources:     cli.EnvVars("DRIVERGET_GECKO_VERSION"),
		},
	}
}
