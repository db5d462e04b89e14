package cli

import (
	"context"
	"log/slog"

	"github.com/fatih/color"
	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"

	"github.com/drivertools/driverget/pkg/cli/config"
	"github.com/drivertools/driverget/pkg/domain/model"
	"github.com/drivertools/driverget/pkg/infra/fetch"
	"github.com/drivertools/driverget/pkg/usecase"
)

func cmdChrome() *cli.Command {
	var (
		outputCfg config.Output
		driverCfg config.Driver
	)

	flags := append(outputCfg.Flags(), driverCfg.ChromeFlags()...)

	return &cli.Command{
		Name:    "chrome",
		Aliases: []string{"chromedriver"},
		Usage:   "Download the chromedriver matching the requested version",
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
				version = file.Chrome.Version
			}
			if version == "" {
				version = usecase.VersionLatest
			}

			platform := model.DetectPlatform()
			logger.Info("Resolving chromedriver release",
				slog.String("requested", version),
				slog.String("os", platform.OS),
				slog.String("arch", platform.Arch),
			)

			driver, err := usecase.NewChrome(ctx, fetch.New(), platform, outputCfg.Dir, version)
			if err != nil {
				return err
			}

			logger.Info("Resolved chromedriver release",
				slog.String("version", driver.Version()),
				slog.String("url", driver.URL()),
			)

			result, err := driver.Download(ctx)
			if err != nil {
				return err
			}

			color.New(color.FgGreen).Printf("chromedriver %s installed at %s\n", result.Version, result.BinaryPath)
			return nil
		},
	}
}
