// ABOUTME: Podcast Index API client implementing the Directory interface
// ABOUTME: Authenticates with the SHA-1 key+secret+timestamp scheme the API requires

package podcastindex

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"time"

	"podcheck-api/core/errors"
	"podcheck-api/core/interfaces"
)

const (
	baseURL   = "https://api.podcastindex.org/api/1.0"
	userAgent = "PodcheckAPI/1.0"
)

// Client is a Podcast Index API client. API key and secret come from
// configuration; without them every lookup is a miss.
type Client struct {
	apiKey    string
	apiSecret string
	http      interfaces.HTTPClient
	logger    interfaces.Logger

	// now is replaceable in tests to pin the auth timestamp
	now func() time.Time
}

// NewClient creates a Podcast Index client.
func NewClient(apiKey, apiSecret string, httpClient interfaces.HTTPClient, logger interfaces.Logger) *Client {
	return &Client{
		apiKey:    apiKey,
		apiSecret: apiSecret,
		http:      httpClient,
		logger:    logger,
		now:       time.Now,
	}
}

// Configured reports whether API credentials are present.
func (c *Client) Configured() bool {
	return c.apiKey != "" && c.apiSecret != ""
}

// PodcastByGUID resolves a feed GUID to its directory record. A GUID
// the directory does not know returns (nil, nil).
func (c *Client) PodcastByGUID(ctx context.Context, feedGuid string) (*interfaces.DirectoryFeed, error) {
	if !c.Configured() || feedGuid == "" {
		return nil, nil
	}

	endpoint := fmt.Sprintf("%s/podcasts/byguid?guid=%s", baseURL, url.QueryEscape(feedGuid))
	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Feed *interfaces.DirectoryFeed `json:"feed"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &errors.ParseError{Format: "JSON", Message: err.Error()}
	}
	if payload.Feed == nil || payload.Feed.URL == "" {
		return nil, nil
	}
	return payload.Feed, nil
}

// EpisodeByGUID resolves an item GUID, optionally scoped to a feed
// GUID, to its directory record. A miss returns (nil, nil).
func (c *Client) EpisodeByGUID(ctx context.Context, itemGuid, feedGuid string) (*interfaces.DirectoryEpisode, error) {
	if !c.Configured() || itemGuid == "" {
		return nil, nil
	}

	endpoint := fmt.Sprintf("%s/episodes/byguid?guid=%s", baseURL, url.QueryEscape(itemGuid))
	if feedGuid != "" {
		endpoint += "&podcastguid=" + url.QueryEscape(feedGuid)
	}

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	// The endpoint answers with a single episode object or a list,
	// depending on how the lookup matched
	var payload struct {
		Episode  json.RawMessage               `json:"episode"`
		Episodes []interfaces.DirectoryEpisode `json:"episodes"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &errors.ParseError{Format: "JSON", Message: err.Error()}
	}

	if len(payload.Episode) > 0 && string(payload.Episode) != "null" {
		var episode interfaces.DirectoryEpisode
		if err := json.Unmarshal(payload.Episode, &episode); err == nil && episode.ID != 0 {
			return &episode, nil
		}
		// Some responses wrap the episode in a one-element array
		var list []interfaces.DirectoryEpisode
		if err := json.Unmarshal(payload.Episode, &list); err == nil && len(list) > 0 {
			return &list[0], nil
		}
	}
	if len(payload.Episodes) > 0 {
		return &payload.Episodes[0], nil
	}
	return nil, nil
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	resp, err := c.http.GetWithHeaders(ctx, endpoint, c.authHeaders())
	if err != nil {
		return nil, err
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, &errors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "unexpected status",
			API:        "podcastindex",
		}
	}

	return io.ReadAll(resp.Body())
}

// authHeaders builds the Podcast Index auth headers: the Authorization
// value is the SHA-1 hex digest of key + secret + unix timestamp, with
// the same timestamp sent as X-Auth-Date.
func (c *Client) authHeaders() map[string]string {
	ts := strconv.FormatInt(c.now().Unix(), 10)
	digest := sha1.Sum([]byte(c.apiKey + c.apiSecret + ts))

	return map[string]string{
		"X-Auth-Key":    c.apiKey,
		"X-Auth-Date":   ts,
		"Authorization": hex.EncodeToString(digest[:]),
		"User-Agent":    userAgent,
	}
}
