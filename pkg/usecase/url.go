package usecase

import (
	"fmt"

	"github.com/m-mizutani/goerr/v2"

	"github.com/drivertools/driverget/pkg/domain/model"
	"github.com/drivertools/driverget/pkg/domain/types"
)

const (
	// ChromeStorageURL is the release bucket serving chromedriver archives
	// and the LATEST_RELEASE version endpoint
	ChromeStorageURL = "https://chromedriver.storage.googleapis.com"

	// GeckoReleaseURL is the base of geckodriver release download URLs
	GeckoReleaseURL = "https://github.com/mozilla/geckodriver/releases/download"
)

// ChromeDownloadURL maps a resolved version and platform to the chromedriver
// archive URL. Chromedriver archives are always ZIP.
func ChromeDownloadURL(baseURL, version string, p model.Platform) (string, error) {
	var suffix string
	switch p.OS {
	case "darwin":
		suffix = "mac64"
	case "linux":
		suffix = "linux64"
	case "windows":
		suffix = "win32"
	default:
		return "", goerr.Wrap(types.ErrUnsupportedOS, "no chromedriver build for this platform", goerr.V("os", p.OS))
	}

	return fmt.Sprintf("%s/%s/chromedriver_%s.zip", baseURL, version, suffix), nil
}

// GeckoDownloadURL maps a version and platform to the geckodriver archive URL
// and its archive kind. Windows releases ship as ZIP, everything else as
// gzip-compressed tar.
func GeckoDownloadURL(baseURL, version string, p model.Platform) (string, model.ArchiveKind, error) {
	var suffix string
	kind := model.ArchiveTarGz

	switch p.OS {
	case "darwin":
		suffix = "macos.tar.gz"
	case "linux":
		if p.Is64Bit() {
			suffix = "linux64.tar.gz"
		} else {
			suffix = "linux32.tar.gz"
		}
	case "windows":
		kind = model.ArchiveZip
		if p.Is64Bit() {
			suffix = "win64.zip"
		} else {
			suffix = "win32.zip"
		}
	default:
		return "", 0, goerr.Wrap(types.ErrUnsupportedOS, "no geckodriver build for this platform", goerr.V("os", p.OS))
	}

	return fmt.Sprintf("%s/v%s/geckodriver-v%s-%s", baseURL, version, version, suffix), kind, nil
}
