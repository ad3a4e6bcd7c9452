// Package youtube searches the YouTube Data API v3 for supportive videos.
package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"youmatter.app/server/internal/model"
)

const (
	// DefaultTimeout bounds a single search round trip.
	DefaultTimeout = 15 * time.Second

	watchURL = "https://www.youtube.com/watch?v="
)

// Searcher finds videos for a free-text query. A query with no matches
// returns an empty slice, not an error.
type Searcher interface {
	Search(ctx context.Context, query string) ([]model.Video, error)
}

type Client struct {
	apiKey     string
	baseURL    string
	maxResults int
	httpClient *http.Client
}

func NewClient(apiKey, baseURL string, maxResults int) *Client {
	if maxResults <= 0 {
		maxResults = 3
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		maxResults: maxResults,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title      string `json:"title"`
			Thumbnails struct {
				Medium struct {
					URL string `json:"url"`
				} `json:"medium"`
				Default struct {
					URL string `json:"url"`
				} `json:"default"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) Search(ctx context.Context, query string) ([]model.Video, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("type", "video")
	params.Set("maxResults", strconv.Itoa(c.maxResults))
	params.Set("q", query)
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("youtube: build request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("youtube: request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("youtube: read response: %w", err)
	}

	var parsed searchResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("youtube: decode response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := http.StatusText(resp.StatusCode)
		if parsed.Error != nil && parsed.Error.Message != "" {
			msg = parsed.Error.Message
		}
		return nil, fmt.Errorf("youtube: upstream status %d: %s", resp.StatusCode, msg)
	}

	videos := make([]model.Video, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if item.ID.VideoID == "" {
			continue
		}
		thumb := item.Snippet.Thumbnails.Medium.URL
		if thumb == "" {
			thumb = item.Snippet.Thumbnails.Default.URL
		}
		videos = append(videos, model.Video{
			ID:        item.ID.VideoID,
			Title:     item.Snippet.Title,
			Thumbnail: thumb,
			URL:       watchURL + item.ID.VideoID,
		})
	}

	slog.DebugContext(ctx, "youtube search completed",
		"query", query,
		"results", len(videos),
		"duration_ms", time.Since(start).Milliseconds())

	return videos, nil
}
