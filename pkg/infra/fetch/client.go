package fetch

import (
	"context"
	"io"
	"net/http"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/drivertools/driverget/pkg/domain/interfaces"
)

type client struct {
	httpClient *http.Client
}

// New creates an HTTP fetcher backed by the default transport. No auth, no
// retries; any transport failure or non-2xx status is surfaced as-is.
func New() interfaces.HTTPFetcher {
	return &client{
		httpClient: &http.Client{},
	}
}

// FetchString retrieves url and returns the raw response body as text
func (c *client) FetchString(ctx context.Context, url string) (string, error) {
	body, err := c.get(ctx, url)
	if err != nil {
		return "", err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return "", goerr.Wrap(err, "failed to read response body", goerr.V("url", url))
	}

	return string(data), nil
}

// FetchFile retrieves url and writes the full body to dst, overwriting any
// existing file of that name
func (c *client) FetchFile(ctx context.Context, url, dst string) (int64, error) {
	logger := ctxlog.From(ctx)

	body, err := c.get(ctx, url)
	if err != nil {
		return 0, err
	}
	defer body.Close()

	f, err := os.Create(dst)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to create download file", goerr.V("path", dst))
	}

	written, err := io.Copy(f, body)
	if err != nil {
		f.Close()
		return written, goerr.Wrap(err, "failed to write download file", goerr.V("path", dst))
	}

	if err := f.Close(); err != nil {
		return written, goerr.Wrap(err, "failed to close download file", goerr.V("path", dst))
	}

	logger.Debug("Fetched file",
		"url", url,
		"path", dst,
		"size_bytes", written,
	)

	return written, nil
}

func (c *client) get(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create request", goerr.V("url", url))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch URL", goerr.V("url", url))
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, goerr.New("unexpected status code",
			goerr.V("url", url),
			goerr.V("status", resp.StatusCode),
		)
	}

	return resp.Body, nil
}
