package usecase

import (
	"context"
	"os"
	"path/filepath"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/drivertools/driverget/pkg/domain/interfaces"
	"github.com/drivertools/driverget/pkg/domain/model"
	"github.com/drivertools/driverget/pkg/infra/archive"
)

var _ interfaces.Driver = (*GeckoDriver)(nil)

// GeckoDriver downloads the Firefox-compatible driver. The caller supplies
// the exact version; no remote resolution happens. The download URL is built
// eagerly at construction.
type GeckoDriver struct {
	fetcher   interfaces.HTTPFetcher
	platform  model.Platform
	outputDir string
	baseURL   string
	version   string
	url       string
	kind      model.ArchiveKind
}

// GeckoOption adjusts GeckoDriver construction
type GeckoOption func(*GeckoDriver)

// WithGeckoBaseURL overrides the release download base URL (for testing)
func WithGeckoBaseURL(baseURL string) GeckoOption {
	return func(g *GeckoDriver) {
		g.baseURL = baseURL
	}
}

// NewGecko creates a Firefox-like driver flow for an exact version string
// (e.g. "0.26.0")
func NewGecko(fetcher interfaces.HTTPFetcher, platform model.Platform, outputDir, version string, opts ...GeckoOption) (*GeckoDriver, error) {
	if version == "" {
		return nil, goerr.New("geckodriver version is required")
	}

	g := &GeckoDriver{
		fetcher:   fetcher,
		platform:  platform,
		outputDir: outputDir,
		baseURL:   GeckoReleaseURL,
		version:   version,
	}
	for _, opt := range opts {
		opt(g)
	}

	url, kind, err := GeckoDownloadURL(g.baseURL, version, platform)
	if err != nil {
		return nil, err
	}
	g.url = url
	g.kind = kind

	return g, nil
}

// Version returns the requested geckodriver version
func (g *GeckoDriver) Version() string {
	return g.version
}

// URL returns the archive download URL
func (g *GeckoDriver) URL() string {
	return g.url
}

// ArchiveKind returns the archive format the platform's release ships as
func (g *GeckoDriver) ArchiveKind() model.ArchiveKind {
	return g.kind
}

// Download fetches the geckodriver archive into the output directory,
// extracts it, and deletes the archive. The tarball already carries the
// execute bit; the ZIP release is Windows-only, so no permission fixup runs.
func (g *GeckoDriver) Download(ctx context.Context) (*model.DownloadResult, error) {
	logger := ctxlog.From(ctx)

	archivePath := filepath.Join(g.outputDir, "geckodriver"+g.kind.Ext())
	size, err := g.fetcher.FetchFile(ctx, g.url, archivePath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to download geckodriver archive", goerr.V("url", g.url))
	}

	logger.Info("Downloaded geckodriver archive",
		"url", g.url,
		"path", archivePath,
		"kind", g.kind.String(),
		"size_bytes", size,
	)

	if err := archive.Extract(g.kind, archivePath, g.outputDir); err != nil {
		return nil, goerr.Wrap(err, "failed to extract geckodriver archive", goerr.V("path", archivePath))
	}

	if err := os.Remove(archivePath); err != nil {
		return nil, goerr.Wrap(err, "failed to remove archive", goerr.V("path", archivePath))
	}

	binaryPath := filepath.Join(g.outputDir, g.binaryName())
	logger.Info("geckodriver ready",
		"path", binaryPath,
		"version", g.version,
	)

	return &model.DownloadResult{
		BinaryPath: binaryPath,
		Version:    g.version,
		Size:       size,
	}, nil
}

func (g *GeckoDriver) binaryName() string {
	if g.platform.OS == "windows" {
		return "geckodriver.exe"
	}
	return "geckodriver"
}
