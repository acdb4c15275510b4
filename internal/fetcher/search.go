package fetcher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"

	"github.com/henrique-coder/syncgroove/internal/humanizer"
)

const (
	searchEndpoint = "https://www.youtube.com/youtubei/v1/search?prettyPrint=false"
	// videoFilter restricts search results to plain videos.
	videoFilter = "EgIQAQ=="
)

// FromQuery searches YouTube for the query text and returns the watch URL
// of the first video result. An empty string means nothing matched; that is
// not an error.
func (c *Client) FromQuery(ctx context.Context, query string) (string, error) {
	payload := map[string]any{
		"context": map[string]any{
			"client": map[string]any{
				"clientName":    "WEB",
				"clientVersion": "2.20240401.00.00",
				"hl":            "en",
				"gl":            "US",
			},
		},
		"query":  query,
		"params": videoFilter,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, searchEndpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", humanizer.WrapCategory(humanizer.CategoryNetwork, fmt.Errorf("searching: %w", err))
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", humanizer.WrapCategory(humanizer.CategoryNetwork, fmt.Errorf("unexpected response %d from search", resp.StatusCode))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", humanizer.WrapCategory(humanizer.CategoryNetwork, fmt.Errorf("reading search response: %w", err))
	}

	var response map[string]any
	if err := json.Unmarshal(data, &response); err != nil {
		return "", humanizer.WrapCategory(humanizer.CategoryMalformed, fmt.Errorf("decoding search response: %w", err))
	}

	id := firstVideoID(response)
	if id == "" {
		c.logger.Debug().Str("query", query).Msg("no search results")
		return "", nil
	}
	return humanizer.WatchURL(id), nil
}

// firstVideoID walks the renderer tree depth-first and returns the first
// videoRenderer's id. Map keys are visited in sorted order so the walk is
// deterministic; result lists are arrays and keep their order.
func firstVideoID(node any) string {
	switch value := node.(type) {
	case map[string]any:
		if renderer, ok := value["videoRenderer"].(map[string]any); ok {
			if id, ok := renderer["videoId"].(string); ok && id != "" {
				return id
			}
		}
		keys := make([]string, 0, len(value))
		for key := range value {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if id := firstVideoID(value[key]); id != "" {
				return id
			}
		}
	case []any:
		for _, item := range value {
			if id := firstVideoID(item); id != "" {
				return id
			}
		}
	}
	return ""
}
