// Package downloader retrieves stream bytes over HTTP. It knows nothing
// about stream selection; callers hand it a URL the humanizer already
// ranked and chose.
package downloader

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/henrique-coder/syncgroove/internal/humanizer"
	"github.com/henrique-coder/syncgroove/internal/log"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

var sharedTransport = &http.Transport{
	MaxIdleConns:        100,
	MaxIdleConnsPerHost: 10,
	DialContext: (&net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}).DialContext,
	TLSHandshakeTimeout:   10 * time.Second,
	ResponseHeaderTimeout: 15 * time.Second,
	IdleConnTimeout:       90 * time.Second,
}

// consistentTransport pins default headers so every stream request looks
// the same to the origin.
type consistentTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *consistentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", t.userAgent)
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "*/*")
	}
	return t.base.RoundTrip(req)
}

// Client streams remote bytes to local files.
type Client struct {
	http   *http.Client
	logger zerolog.Logger
}

func New(timeout time.Duration) *Client {
	var transport http.RoundTripper = &consistentTransport{
		base:      sharedTransport,
		userAgent: defaultUserAgent,
	}
	transport = newRetryTransport(transport, defaultRetryConfig)
	return &Client{
		http: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		logger: log.WithComponent("downloader"),
	}
}

// Fetch downloads url into dest, creating parent directories as needed.
// It returns the number of bytes written.
func (c *Client) Fetch(ctx context.Context, url, dest string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, humanizer.WrapCategory(humanizer.CategoryNetwork, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, humanizer.WrapCategory(humanizer.CategoryNetwork, fmt.Errorf("fetching stream: %w", err))
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, humanizer.WrapCategory(humanizer.CategoryNetwork, fmt.Errorf("unexpected response %d fetching stream", resp.StatusCode))
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return 0, humanizer.WrapCategory(humanizer.CategoryFilesystem, fmt.Errorf("creating output directory: %w", err))
	}
	file, err := os.Create(dest)
	if err != nil {
		return 0, humanizer.WrapCategory(humanizer.CategoryFilesystem, fmt.Errorf("creating output file: %w", err))
	}
	defer file.Close()

	written, err := io.Copy(file, resp.Body)
	if err != nil {
		return written, humanizer.WrapCategory(humanizer.CategoryNetwork, fmt.Errorf("download failed: %w", err))
	}

	c.logger.Debug().Str("dest", dest).Int64("bytes", written).Msg("download complete")
	return written, nil
}
