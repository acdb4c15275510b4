package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/henrique-coder/syncgroove/internal/humanizer"
)

var channelIDPattern = regexp.MustCompile(`"channelId":"(UC[0-9A-Za-z_-]{22})"`)

// PlaylistURLs enumerates the watch URLs of every video in a playlist.
func (c *Client) PlaylistURLs(ctx context.Context, rawURL string) ([]string, error) {
	playlistID, err := humanizer.ExtractPlaylistID(rawURL)
	if err != nil {
		return nil, err
	}
	return c.playlistVideoURLs(ctx, playlistID)
}

// ChannelSelector identifies a channel by exactly one of id, URL or
// username/handle.
type ChannelSelector struct {
	ID       string
	URL      string
	Username string
}

// ChannelURLs enumerates the watch URLs of a channel's uploaded videos.
// Supplying zero or multiple selectors is a caller error.
func (c *Client) ChannelURLs(ctx context.Context, selector ChannelSelector) ([]string, error) {
	provided := 0
	for _, value := range []string{selector.ID, selector.URL, selector.Username} {
		if value != "" {
			provided++
		}
	}
	if provided != 1 {
		return nil, errors.New("provide exactly one of channel id, url or username")
	}

	channelID := selector.ID
	switch {
	case selector.URL != "":
		id, err := c.channelIDFromURL(ctx, selector.URL)
		if err != nil {
			return nil, err
		}
		channelID = id
	case selector.Username != "":
		handle := strings.TrimPrefix(selector.Username, "@")
		id, err := c.scrapeChannelID(ctx, "https://www.youtube.com/@"+url.PathEscape(handle))
		if err != nil {
			return nil, err
		}
		channelID = id
	}

	uploads, err := uploadsPlaylistID(channelID)
	if err != nil {
		return nil, err
	}
	return c.playlistVideoURLs(ctx, uploads)
}

func (c *Client) playlistVideoURLs(ctx context.Context, playlistID string) ([]string, error) {
	playlist, err := c.playlist.GetPlaylistContext(ctx, playlistID)
	if err != nil {
		return nil, humanizer.WrapCategory(humanizer.CategoryNetwork, fmt.Errorf("fetching playlist %s: %w", playlistID, err))
	}
	if len(playlist.Videos) == 0 {
		return nil, nil
	}
	urls := make([]string, 0, len(playlist.Videos))
	for _, entry := range playlist.Videos {
		if entry == nil || entry.ID == "" {
			continue
		}
		urls = append(urls, humanizer.WatchURL(entry.ID))
	}
	c.logger.Debug().Str("playlist", playlistID).Int("videos", len(urls)).Msg("enumerated playlist")
	return urls, nil
}

// channelIDFromURL resolves a channel URL to its UC identifier, scraping
// the channel page for handle/custom URLs.
func (c *Client) channelIDFromURL(ctx context.Context, rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", humanizer.WrapCategory(humanizer.CategoryInvalidURL, fmt.Errorf("invalid channel url: %w", err))
	}
	parts := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(parts) >= 2 && parts[0] == "channel" && strings.HasPrefix(parts[1], "UC") {
		return parts[1], nil
	}
	return c.scrapeChannelID(ctx, rawURL)
}

// scrapeChannelID fetches a channel page and pulls the canonical channel id
// out of the embedded player config.
func (c *Client) scrapeChannelID(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return "", humanizer.WrapCategory(humanizer.CategoryNetwork, fmt.Errorf("fetching channel page: %w", err))
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", humanizer.WrapCategory(humanizer.CategoryNetwork, fmt.Errorf("unexpected response %d from channel page", resp.StatusCode))
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", humanizer.WrapCategory(humanizer.CategoryNetwork, fmt.Errorf("reading channel page: %w", err))
	}
	match := channelIDPattern.FindSubmatch(body)
	if match == nil {
		return "", humanizer.WrapCategory(humanizer.CategoryInvalidURL, fmt.Errorf("no channel id found at %s", pageURL))
	}
	return string(match[1]), nil
}

// uploadsPlaylistID derives the uploads playlist from a channel id: the UC
// prefix becomes UU, the rest is shared.
func uploadsPlaylistID(channelID string) (string, error) {
	if !strings.HasPrefix(channelID, "UC") || len(channelID) != 24 {
		return "", humanizer.WrapCategory(humanizer.CategoryInvalidURL, fmt.Errorf("invalid channel id %q", channelID))
	}
	return "UU" + channelID[2:], nil
}
