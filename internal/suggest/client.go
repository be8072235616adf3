// Package suggest queries a public autosuggest endpoint and parses the
// completions out of its array-shaped response.
package suggest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/amal-alexander/autocomplete-keyword-engine/internal/config"
)

// maxPayload caps how much of a suggest response is read.
const maxPayload = 1 << 20

// Client issues autosuggest queries. BaseURL is a field so tests can
// substitute an httptest server.
type Client struct {
	HTTPClient *http.Client
	BaseURL    string
}

// NewClient builds a client for the configured endpoint and timeout.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: cfg.SuggestTimeout},
		BaseURL:    cfg.SuggestBaseURL,
	}
}

// Suggest issues one query and returns the suggested completions. Any
// failure — network error, non-2xx status, malformed payload — yields an
// empty result: keyword generation is exploratory, so one dead query must
// not abort the batch. Errors are logged at debug level and never returned.
func (c *Client) Suggest(ctx context.Context, query, market string) []string {
	params := url.Values{
		"client": {"firefox"},
		"q":      {query},
		"hl":     {"en"},
	}
	if market != "" {
		params.Set("gl", market)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		slog.Debug("suggest request build failed", "query", query, "error", err)
		return nil
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		slog.Debug("suggest request failed", "query", query, "error", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Debug("suggest returned non-OK status", "query", query, "status", resp.StatusCode)
		return nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayload))
	if err != nil {
		slog.Debug("suggest response read failed", "query", query, "error", err)
		return nil
	}

	values, ok := parsePayload(body)
	if !ok {
		slog.Debug("suggest payload malformed", "query", query)
		return nil
	}
	return values
}

// parsePayload decodes the suggest wire shape ["<query>", ["s1", "s2"], ...].
// ok is false when the payload does not carry a string array at index 1.
func parsePayload(data []byte) ([]string, bool) {
	var outer []json.RawMessage
	if err := json.Unmarshal(data, &outer); err != nil || len(outer) < 2 {
		return nil, false
	}
	var values []string
	if err := json.Unmarshal(outer[1], &values); err != nil {
		return nil, false
	}
	return values, true
}
