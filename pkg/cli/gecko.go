package cli

import (
	"context"
	"log/slog"

	"github.com/fatih/color"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/drivertools/driverget/pkg/cli/config"
	"github.com/drivertools/driverget/pkg/domain/model"
	"github.com/drivertools/driverget/pkg/infra/fetch"
	"github.com/drivertools/driverget/pkg/usecase"
)

func cmdGecko() *cli.Command {
	var (
		outputCfg config.Output
		driverCfg config.Driver
	)

	flags := append(outputCfg.Flags(), driverCfg.GeckoFlags()...)

	return &cli.Command{
		Name:    "gecko",
		Aliases: []string{"geckodriver"},
		Usage:   "Download the geckodriver for an exact version",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			file, err := outputCfg.Load()
			if err != nil {
				return err
			}
			if err := outputCfg.Resolve(file); err != nil {
				return err
			}

			version := driverCfg.Version
			if version == "" && file != nil {
				version = file.Gecko.Version
			}
			if version == "" {
				return goerr.New("geckodriver version is required (set --driver-version)")
			}

			platform := model.DetectPlatform()
			driver, err := usecase.NewGecko(fetch.New(), platform, outputCfg.Dir, version)
			if err != nil {
				return err
			}

			logger.Info("Downloading geckodriver release",
				slog.String("version", driver.Version()),
				slog.String("url", driver.URL()),
				slog.String("kind", driver.ArchiveKind().String()),
			)

			result, err := driver.Download(ctx)
			if err != nil {
				return err
			}

			color.New(color.FgGreen).Printf("geckodriver %s installed at %s\n", result.Version, result.BinaryPath)
			return nil
		},
	}
}
