package fetch_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/drivertools/driverget/pkg/infra/fetch"
)

func TestFetchString_ReturnsRawBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("78.0.3904.70"))
	}))
	defer srv.Close()

	client := fetch.New()
	body, err := client.FetchString(context.Background(), srv.URL)
	gt.NoError(t, err)
	gt.Value(t, body).Equal("78.0.3904.70")
}

func TestFetchString_NoTrimming(t *testing.T) {
	// The body is returned verbatim, whitespace included
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("  80.0.3987.106\n"))
	}))
	defer srv.Close()

	client := fetch.New()
	body, err := client.FetchString(context.Background(), srv.URL)
	gt.NoError(t, err)
	gt.Value(t, body).Equal("  80.0.3987.106\n")
}

func TestFetchString_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	client := fetch.New()
	_, err := client.FetchString(context.Background(), srv.URL)
	gt.Error(t, err)
}

func TestFetchFile_WritesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("archive bytes"))
	}))
	defer srv.Close()

	dst := filepath.Join(t.TempDir(), "driver.zip")

	client := fetch.New()
	size, err := client.FetchFile(context.Background(), srv.URL, dst)
	gt.NoError(t, err)
	gt.Value(t, size).Equal(int64(len("archive bytes")))

	data, err := os.ReadFile(dst)
	gt.NoError(t, err)
	gt.Value(t, string(data)).Equal("archive bytes")
}

func TestFetchFile_OverwritesExisting(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("new"))
	}))
	defer srv.Close()

	dst := filepath.Join(t.TempDir(), "driver.zip")
	gt.NoError(t, os.WriteFile(dst, []byte("stale content from a previous run"), 0o644))

	client := fetch.New()
	_, err := client.FetchFile(context.Background(), srv.URL, dst)
	gt.NoError(t, err)

	data, err := os.ReadFile(dst)
	gt.NoError(t, err)
	gt.Value(t, string(data)).Equal("new")
}

func TestFetchFile_ErrorStatusWritesNothing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	dst := filepath.Join(t.TempDir(), "driver.zip")

	client := fetch.New()
	_, err := client.FetchFile(context.Background(), srv.URL, dst)
	gt.Error(t, err)

	_, statErr := os.Stat(dst)
	gt.Value(t, os.IsNotExist(statErr)).Equal(true)
}
