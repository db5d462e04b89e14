package interfaces

import "context"

// HTTPFetcher defines the transport operations the driver flows depend on
type HTTPFetcher interface {
	// FetchString retrieves url and returns the raw response body as text
	FetchString(ctx context.Context, url string) (string, error)

	// FetchFile retrieves url and writes the full body to dst, overwriting
	// any existing file. Returns the number of bytes written.
	FetchFile(ctx context.Context, url, dst string) (int64, error)
}
