package fetcher_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmgpulse/rmgpulse/internal/fetcher"
	"github.com/rmgpulse/rmgpulse/internal/logger"
)

func newFetcher() *fetcher.Fetcher {
	return fetcher.New(fetcher.Config{}, logger.NewNoOp())
}

func TestFetchParsesDocument(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><h1>Export Growth</h1></body></html>`))
	}))
	defer srv.Close()

	doc, err := newFetcher().Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "Export Growth", doc.Find("h1").Text())
}

func TestFetchSendsConfiguredUserAgent(t *testing.T) {
	t.Parallel()

	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("<html></html>"))
	}))
	defer srv.Close()

	f := fetcher.New(fetcher.Config{UserAgent: "rmgpulse-test/1.0"}, logger.NewNoOp())
	_, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "rmgpulse-test/1.0", gotUA)
}

func TestFetchNonSuccessStatusIsError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newFetcher().Fetch(context.Background(), srv.URL)
	require.Error(t, err)
}

func TestFetchUnreachableHostIsError(t *testing.T) {
	t.Parallel()

	_, err := newFetcher().Fetch(context.Background(), "http://127.0.0.1:1/nothing")
	require.Error(t, err)
}

func TestFetchTruncatesOversizedBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body><p>" + strings.Repeat("x", 8*1024) + "</p></body></html>"))
	}))
	defer srv.Close()

	f := fetcher.New(fetcher.Config{MaxBodySize: 1024}, logger.NewNoOp())
	doc, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err, "a capped body is truncated, not failed")
	assert.Less(t, len(doc.Find("p").Text()), 2*1024)
}

func TestFetchSequentialRequestsToSameURL(t *testing.T) {
	t.Parallel()

	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		_, _ = w.Write([]byte("<html><p>ok page</p></html>"))
	}))
	defer srv.Close()

	f := newFetcher()
	for i := 0; i < 2; i++ {
		_, err := f.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, hits, "fresh collector per fetch must allow revisits")
}
