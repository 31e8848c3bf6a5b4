package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/aiometa/aiometa/internal/config"
)

var (
	ErrAPIKeyMissing = errors.New("OMDb API key is not configured")
	ErrNotFound      = errors.New("not found on OMDb")
	ErrAPIError      = errors.New("OMDb API error")
)

// Client is an OMDb API client used as the external IMDb rating source.
type Client struct {
	httpClient *http.Client
	config     config.OMDBConfig
	logger     zerolog.Logger
}

// NewClient creates a new OMDb client.
func NewClient(cfg config.OMDBConfig, logger zerolog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		config: cfg,
		logger: logger.With().Str("component", "omdb").Logger(),
	}
}

// IsConfigured returns true if the API key is set.
func (c *Client) IsConfigured() bool {
	return c.config.APIKey != ""
}

// GetRating fetches the IMDb rating for a title, formatted as a one-decimal
// string ("8.7"). An empty string means the source has no rating; callers
// fall back to the provider's own score.
func (c *Client) GetRating(ctx context.Context, imdbID, mediaType string) (string, error) {
	if !c.IsConfigured() {
		return "", ErrAPIKeyMissing
	}

	if imdbID == "" {
		return "", ErrNotFound
	}

	params := url.Values{}
	params.Set("apikey", c.config.APIKey)
	params.Set("i", imdbID)
	if mediaType != "" {
		params.Set("type", mediaType)
	}

	reqURL := fmt.Sprintf("%s?%s", c.config.BaseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("imdbId", imdbID).Msg("HTTP request failed")
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrAPIError, resp.StatusCode)
	}

	var omdbResp Response
	if err := json.NewDecoder(resp.Body).Decode(&omdbResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if omdbResp.Response == "False" {
		if omdbResp.Error == "Movie not found!" || omdbResp.Error == "Incorrect IMDb ID." {
			return "", ErrNotFound
		}
		c.logger.Warn().Str("error", omdbResp.Error).Str("imdbId", imdbID).Msg("OMDb API returned error")
		return "", fmt.Errorf("%w: %s", ErrAPIError, omdbResp.Error)
	}

	rating := normalizeRating(omdbResp.ImdbRating)

	c.logger.Debug().
		Str("imdbId", imdbID).
		Str("rating", rating).
		Msg("Fetched IMDb rating from OMDb")

	return rating, nil
}

// normalizeRating turns the OMDb rating field into a one-decimal string,
// or empty when the source carries no usable value.
func normalizeRating(raw string) string {
	if raw == "" || raw == "N/A" {
		return ""
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return ""
	}
	return strconv.FormatFloat(value, 'f', 1, 64)
}
