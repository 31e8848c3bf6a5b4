package tvdb

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/aiometa/aiometa/internal/config"
)

var (
	ErrAPIKeyMissing  = errors.New("TVDB API key is not configured")
	ErrSeriesNotFound = errors.New("series not found")
	ErrAPIError       = errors.New("TVDB API error")
	ErrAuthFailed     = errors.New("TVDB authentication failed")
	ErrRateLimited    = errors.New("TVDB API rate limited")
)

// Client is a TheTVDB v4 API client.
type Client struct {
	httpClient *http.Client
	config     config.TVDBConfig
	logger     zerolog.Logger

	// Token management
	mu          sync.RWMutex
	token       string
	tokenExpiry time.Time
}

// NewClient creates a new TVDB client.
func NewClient(cfg config.TVDBConfig, logger zerolog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		config: cfg,
		logger: logger.With().Str("component", "tvdb").Logger(),
	}
}

// IsConfigured returns true if the API key is set.
func (c *Client) IsConfigured() bool {
	return c.config.APIKey != ""
}

// ImageBaseURL returns the artwork host, used to absolutize relative
// episode image paths.
func (c *Client) ImageBaseURL() string {
	return c.config.ImageBaseURL
}

// authenticate gets or refreshes the authentication token.
func (c *Client) authenticate(ctx context.Context) error {
	c.mu.RLock()
	if c.token != "" && time.Now().Before(c.tokenExpiry) {
		c.mu.RUnlock()
		return nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if c.token != "" && time.Now().Before(c.tokenExpiry) {
		return nil
	}

	loginURL := fmt.Sprintf("%s/login", c.config.BaseURL)
	loginReq := LoginRequest{APIKey: c.config.APIKey}

	body, err := json.Marshal(loginReq)
	if err != nil {
		return fmt.Errorf("failed to marshal login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, loginURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("login request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error().Int("status", resp.StatusCode).Msg("TVDB authentication failed")
		return ErrAuthFailed
	}

	var loginResp LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&loginResp); err != nil {
		return fmt.Errorf("failed to decode login response: %w", err)
	}

	c.token = loginResp.Data.Token
	// TVDB tokens expire after 30 days, but we refresh after 24 hours to be safe
	c.tokenExpiry = time.Now().Add(24 * time.Hour)

	c.logger.Debug().Msg("TVDB authentication successful")
	return nil
}

// GetSeriesExtended gets the extended series record by TVDB ID, with
// name and overview translations attached.
func (c *Client) GetSeriesExtended(ctx context.Context, id int) (*SeriesExtended, error) {
	if !c.IsConfigured() {
		return nil, ErrAPIKeyMissing
	}

	if err := c.authenticate(ctx); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/series/%d/extended", c.config.BaseURL, id)
	params := url.Values{}
	params.Set("meta", "translations")

	var response SeriesExtendedResponse
	if err := c.doRequest(ctx, endpoint, params, &response); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Int("id", id).
		Str("name", response.Data.Name).
		Msg("Got extended series record")

	return &response.Data, nil
}

// GetSeriesEpisodes gets the default-order episode list for a series,
// translated to the given 3-letter language where available.
func (c *Client) GetSeriesEpisodes(ctx context.Context, id int, language string) ([]Episode, error) {
	if !c.IsConfigured() {
		return nil, ErrAPIKeyMissing
	}

	if err := c.authenticate(ctx); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/series/%d/episodes/default/%s", c.config.BaseURL, id, url.PathEscape(language))

	var response EpisodesResponse
	if err := c.doRequest(ctx, endpoint, nil, &response); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Int("id", id).
		Str("language", language).
		Int("episodes", len(response.Data.Episodes)).
		Msg("Got series episodes")

	return response.Data.Episodes, nil
}

// doRequest performs an HTTP GET request with authentication.
func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values, result interface{}) error {
	reqURL := endpoint
	if len(params) > 0 {
		reqURL = fmt.Sprintf("%s?%s", endpoint, params.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("url", endpoint).Msg("HTTP request failed")
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		switch resp.StatusCode {
		case http.StatusNotFound:
			return ErrSeriesNotFound
		case http.StatusUnauthorized:
			// Token might be expired, clear it
			c.mu.Lock()
			c.token = ""
			c.mu.Unlock()
			return fmt.Errorf("%w: unauthorized", ErrAPIError)
		case http.StatusTooManyRequests:
			return ErrRateLimited
		default:
			return fmt.Errorf("%w: status %d", ErrAPIError, resp.StatusCode)
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
