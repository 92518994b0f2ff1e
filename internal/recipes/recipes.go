// Package recipes talks to the third-party recipe/nutrition providers and
// normalizes their responses into the internal meal shape. Each provider is
// its own variant with its own normalization; nothing upstream-shaped leaks
// past this package.
package recipes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"mealtrack/internal/keyring"
	"mealtrack/internal/models"
)

// ErrUnknownSource is returned for a provider tag outside the supported set.
var ErrUnknownSource = errors.New("unknown recipe source")

// ConfigError reports that the selected provider requires an API key that is
// not configured. It propagates unmodified so the caller can prompt for
// configuration.
type ConfigError struct {
	Source models.Source
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s API key is required, set it with 'mealtrack apikey set %s'", e.Source, e.Source)
}

// UpstreamError reports a network or API failure from a provider. It is
// never retried here and is always distinguishable from an empty result.
type UpstreamError struct {
	Source models.Source
	Status int
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s request failed: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("%s request failed: status %d", e.Source, e.Status)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// KeyFunc resolves the API key for a provider.
type KeyFunc func(models.Source) (string, error)

// Client is the recipe search adapter. Base URLs are per-source so tests can
// point a provider at a local server.
type Client struct {
	httpClient *http.Client
	getKey     KeyFunc
	baseURLs   map[models.Source]string
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		getKey:     keyring.GetAPIKey,
		baseURLs: map[models.Source]string{
			models.SourceSpoonacular:   spoonacularBaseURL,
			models.SourceCalorieNinjas: calorieNinjasBaseURL,
		},
	}
}

// SetBaseURL overrides a provider's base URL. Tests only.
func (c *Client) SetBaseURL(source models.Source, url string) {
	c.baseURLs[source] = url
}

// SetKeyFunc overrides API key resolution. Tests only.
func (c *Client) SetKeyFunc(fn KeyFunc) {
	c.getKey = fn
}

// Search queries the given provider and returns normalized results.
func (c *Client) Search(ctx context.Context, query string, source models.Source) ([]models.NormalizedMeal, error) {
	key, err := c.apiKey(source)
	if err != nil {
		return nil, err
	}

	switch source {
	case models.SourceSpoonacular:
		return c.searchSpoonacular(ctx, query, key)
	case models.SourceCalorieNinjas:
		return c.searchCalorieNinjas(ctx, query, key)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownSource, source)
	}
}

// Details fetches the full record for one search result, including
// ingredients and instructions where the provider has them.
func (c *Client) Details(ctx context.Context, id string, source models.Source) (models.MealDetail, error) {
	key, err := c.apiKey(source)
	if err != nil {
		return models.MealDetail{}, err
	}

	switch source {
	case models.SourceSpoonacular:
		return c.spoonacularDetails(ctx, id, key)
	case models.SourceCalorieNinjas:
		return c.calorieNinjasDetails(ctx, id, key)
	default:
		return models.MealDetail{}, fmt.Errorf("%w: %s", ErrUnknownSource, source)
	}
}

func (c *Client) apiKey(source models.Source) (string, error) {
	key, err := c.getKey(source)
	if err != nil || key == "" {
		return "", &ConfigError{Source: source}
	}
	return key, nil
}

// getJSON performs a GET against a provider and decodes the JSON body into
// out. Transport errors and non-200 statuses surface as *UpstreamError.
func (c *Client) getJSON(ctx context.Context, source models.Source, url string, header http.Header, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &UpstreamError{Source: source, Err: err}
	}
	for k, vals := range header {
		for _, v := range vals {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &UpstreamError{Source: source, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &UpstreamError{Source: source, Status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &UpstreamError{Source: source, Err: fmt.Errorf("decoding response: %w", err)}
	}
	return nil
}
