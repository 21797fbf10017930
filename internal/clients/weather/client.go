// Package weather looks up the current air temperature at a coordinate
package weather

//go:generate mockgen -destination=mock/mock_client.go -package=weathermock github.com/KirkDiggler/dungeon-runner/internal/clients/weather Client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/KirkDiggler/dungeon-runner/internal/errors"
)

// DefaultBaseURL is the Open-Meteo forecast endpoint
const DefaultBaseURL = "https://api.open-meteo.com/v1/forecast"

// Client fetches temperatures in Fahrenheit
type Client interface {
	// CurrentTemperature returns the current temperature at a coordinate.
	// A nil reading with no error means the provider had no value.
	CurrentTemperature(ctx context.Context, lat, lon float64) (*float64, error)
}

// Config contains configuration options for the HTTP client
type Config struct {
	// BaseURL of the forecast endpoint (optional, defaults to Open-Meteo)
	BaseURL string
	// HTTPTimeout for each request (optional, defaults to 5 seconds)
	HTTPTimeout time.Duration
	// HTTPClient overrides the client built from HTTPTimeout
	HTTPClient *http.Client
}

// Validate validates the Config and sets defaults if not provided
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return errors.InvalidArgumentf("invalid base URL %q: %v", cfg.BaseURL, err)
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 5 * time.Second
	}
	return nil
}

type client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates an Open-Meteo client
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}

	return &client{
		baseURL:    cfg.BaseURL,
		httpClient: httpClient,
	}, nil
}

type forecastResponse struct {
	Current struct {
		Temperature *float64 `json:"temperature_2m"`
	} `json:"current"`
}

func (c *client) CurrentTemperature(ctx context.Context, lat, lon float64) (*float64, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateLatLon("Coordinate", lat, lon, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	query.Set("current", "temperature_2m")
	query.Set("temperature_unit", "fahrenheit")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build weather request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "weather request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Unavailablef("weather provider returned %d", resp.StatusCode)
	}

	var body forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(err, "failed to decode weather response")
	}

	return body.Current.Temperature, nil
}
