// Package fetcher resolves media identifiers into raw metadata payloads and
// enumerates playlist/channel members. It is a thin collaborator around
// yt-dlp and the YouTube web endpoints; all normalization happens in the
// humanizer package.
package fetcher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os/exec"
	"strings"
	"time"

	"github.com/kkdai/youtube/v2"
	"github.com/rs/zerolog"

	"github.com/henrique-coder/syncgroove/internal/humanizer"
	"github.com/henrique-coder/syncgroove/internal/log"
)

const defaultBinary = "yt-dlp"

// Options configure a Client.
type Options struct {
	// Binary is the yt-dlp executable name or path.
	Binary string
	// Timeout bounds each metadata extraction.
	Timeout time.Duration
	// HTTPClient is used for search and channel resolution. A nil value
	// falls back to a default client honoring Timeout.
	HTTPClient *http.Client
}

// Client resolves metadata through yt-dlp and enumerates playlists through
// the YouTube innertube/web surfaces.
type Client struct {
	binary   string
	timeout  time.Duration
	http     *http.Client
	playlist *youtube.Client
	logger   zerolog.Logger
}

func New(opts Options) *Client {
	binary := opts.Binary
	if binary == "" {
		binary = defaultBinary
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 45 * time.Second
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		binary:   binary,
		timeout:  timeout,
		http:     httpClient,
		playlist: &youtube.Client{HTTPClient: httpClient},
		logger:   log.WithComponent("fetcher"),
	}
}

// Resolve extracts the media identifier from idOrURL, canonicalizes it to a
// watch URL and returns the raw metadata payload. Unrecognized input is an
// invalid-identifier error; extractor failures are network errors.
func (c *Client) Resolve(ctx context.Context, idOrURL string) (humanizer.RawPayload, error) {
	mediaID, err := humanizer.ExtractMediaID(idOrURL)
	if err != nil {
		return nil, err
	}
	watchURL := humanizer.WatchURL(mediaID)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, c.binary, "-J", "--no-warnings", "--skip-download", watchURL)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	c.logger.Debug().Str("url", watchURL).Msg("extracting metadata")
	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return nil, humanizer.WrapCategory(humanizer.CategoryNetwork, fmt.Errorf("extracting %s: %s: %w", watchURL, detail, err))
		}
		return nil, humanizer.WrapCategory(humanizer.CategoryNetwork, fmt.Errorf("extracting %s: %w", watchURL, err))
	}

	return parsePayload(stdout.Bytes())
}

// parsePayload decodes a yt-dlp JSON dump into a raw payload tree.
func parsePayload(data []byte) (humanizer.RawPayload, error) {
	var payload humanizer.RawPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, humanizer.WrapCategory(humanizer.CategoryMalformed, fmt.Errorf("decoding metadata: %w", err))
	}
	if payload == nil {
		return nil, humanizer.WrapCategory(humanizer.CategoryMalformed, fmt.Errorf("metadata payload is empty"))
	}
	return payload, nil
}
