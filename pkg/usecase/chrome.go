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

// VersionLatest is the sentinel requesting the newest chromedriver release
const VersionLatest = "latest"

var _ interfaces.Driver = (*ChromeDriver)(nil)

// ChromeDriver downloads the Chrome-compatible driver. Construction resolves
// the version and download URL eagerly, so resolution failures surface before
// any download is requested.
type ChromeDriver struct {
	fetcher   interfaces.HTTPFetcher
	platform  model.Platform
	outputDir string
	baseURL   string
	version   string
	url       string
}

// ChromeOption adjusts ChromeDriver construction
type ChromeOption func(*ChromeDriver)

// WithChromeBaseURL overrides the release bucket URL (for testing)
func WithChromeBaseURL(baseURL string) ChromeOption {
	return func(c *ChromeDriver) {
		c.baseURL = baseURL
	}
}

// NewChrome creates a Chrome-like driver flow. The requested version is
// "latest", a major version (e.g. "78"), or a full version string; all of
// them are resolved against the LATEST_RELEASE endpoint.
func NewChrome(ctx context.Context, fetcher interfaces.HTTPFetcher, platform model.Platform, outputDir, version string, opts ...ChromeOption) (*ChromeDriver, error) {
	c := &ChromeDriver{
		fetcher:   fetcher,
		platform:  platform,
		outputDir: outputDir,
		baseURL:   ChromeStorageURL,
	}
	for _, opt := range opts {
		opt(c)
	}

	resolved, err := c.resolveVersion(ctx, version)
	if err != nil {
		return nil, err
	}
	c.version = resolved

	url, err := ChromeDownloadURL(c.baseURL, resolved, platform)
	if err != nil {
		return nil, err
	}
	c.url = url

	return c, nil
}

// Version returns the resolved chromedriver version
func (c *ChromeDriver) Version() string {
	return c.version
}

// URL returns the resolved archive download URL
func (c *ChromeDriver) URL() string {
	return c.url
}

// Download fetches the chromedriver archive into the output directory,
// extracts it, marks the binary executable on non-Windows platforms, and
// deletes the archive
func (c *ChromeDriver) Download(ctx context.Context) (*model.DownloadResult, error) {
	logger := ctxlog.From(ctx)

	archivePath := filepath.Join(c.outputDir, "chromedriver.zip")
	size, err := c.fetcher.FetchFile(ctx, c.url, archivePath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to download chromedriver archive", goerr.V("url", c.url))
	}

	logger.Info("Downloaded chromedriver archive",
		"url", c.url,
		"path", archivePath,
		"size_bytes", size,
	)

	if err := archive.Extract(model.ArchiveZip, archivePath, c.outputDir); err != nil {
		return nil, goerr.Wrap(err, "failed to extract chromedriver archive", goerr.V("path", archivePath))
	}

	binaryPath := filepath.Join(c.outputDir, c.binaryName())
	if c.platform.OS != "windows" {
		if err := addOwnerExec(binaryPath); err != nil {
			return nil, err
		}
	}

	if err := os.Remove(archivePath); err != nil {
		return nil, goerr.Wrap(err, "failed to remove archive", goerr.V("path", archivePath))
	}

	logger.Info("chromedriver ready",
		"path", binaryPath,
		"version", c.version,
	)

	return &model.DownloadResult{
		BinaryPath: binaryPath,
		Version:    c.version,
		Size:       size,
	}, nil
}

func (c *ChromeDriver) binaryName() string {
	if c.platform.OS == "windows" {
		return "chromedriver.exe"
	}
	return "chromedriver"
}

func (c *ChromeDriver) resolveVersion(ctx context.Context, requested string) (string, error) {
	endpoint := c.baseURL + "/LATEST_RELEASE"
	if requested != "" && requested != VersionLatest {
		endpoint += "_" + requested
	}

	// The endpoint body is the full version string, returned verbatim
	body, err := c.fetcher.FetchString(ctx, endpoint)
	if err != nil {
		return "", goerr.Wrap(err, "failed to resolve chromedriver version",
			goerr.V("endpoint", endpoint),
			goerr.V("requested", requested),
		)
	}

	return body, nil
}

// addOwnerExec adds the owner-execute bit, preserving all other mode bits
func addOwnerExec(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return goerr.Wrap(err, "failed to stat driver binary", goerr.V("path", path))
	}

	if err := os.Chmod(path, info.Mode()|0o100); err != nil {
		return goerr.Wrap(err, "failed to set execute permission", goerr.V("path", path))
	}

	return nil
}
