package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"github.com/cypherlabdev/consensus-odds-service/internal/models"
)

var fetchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "consensus_odds_provider_fetches_total",
		Help: "Feed fetches by final result",
	},
	[]string{"result"},
)

// Config holds odds provider client configuration
type Config struct {
	BaseURL      string        // e.g. "https://api.the-odds-api.com"
	APIKey       string
	Regions      string        // e.g. "eu"
	Timeout      time.Duration // per-attempt HTTP timeout
	MaxRetries   int           // retries after the first attempt
	RetryBackoff time.Duration // base backoff, doubled per retry
}

// Client fetches league odds feeds from The Odds API. The feed shape is an
// opaque input contract; a wholly unreachable or malformed feed surfaces as
// ErrProviderUnavailable after bounded retries.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	regions    string
	maxRetries int
	backoff    time.Duration
	logger     zerolog.Logger
}

// NewClient creates an odds feed client
func NewClient(config Config, logger zerolog.Logger) *Client {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	backoff := config.RetryBackoff
	if backoff <= 0 {
		backoff = 500 * time.Millisecond
	}
	regions := config.Regions
	if regions == "" {
		regions = "eu"
	}
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = "https://api.the-odds-api.com"
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     config.APIKey,
		regions:    regions,
		maxRetries: config.MaxRetries,
		backoff:    backoff,
		logger:     logger.With().Str("component", "odds_provider").Logger(),
	}
}

// FetchOdds fetches the current event list for a sport key, h2h and totals
// markets in decimal format. Retries transient failures with exponential
// backoff before giving up with ErrProviderUnavailable.
func (c *Client) FetchOdds(ctx context.Context, sportKey string) ([]models.FeedEvent, error) {
	endpoint := fmt.Sprintf("%s/v4/sports/%s/odds/?%s", c.baseURL, sportKey, url.Values{
		"apiKey":     {c.apiKey},
		"regions":    {c.regions},
		"markets":    {"h2h,totals"},
		"oddsFormat": {"decimal"},
	}.Encode())

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			delay := c.backoff << (attempt - 1)
			c.logger.Warn().
				Err(lastErr).
				Int("attempt", attempt).
				Dur("backoff", delay).
				Str("sport_key", sportKey).
				Msg("retrying feed fetch")
			select {
			case <-ctx.Done():
				fetchesTotal.WithLabelValues("canceled").Inc()
				return nil, fmt.Errorf("feed fetch canceled: %w", ctx.Err())
			case <-time.After(delay):
			}
		}

		events, err := c.fetchOnce(ctx, endpoint)
		if err == nil {
			fetchesTotal.WithLabelValues("ok").Inc()
			c.logger.Info().
				Str("sport_key", sportKey).
				Int("events", len(events)).
				Msg("fetched feed snapshot")
			return events, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}

	fetchesTotal.WithLabelValues("unavailable").Inc()
	return nil, fmt.Errorf("%w: %v", models.ErrProviderUnavailable, lastErr)
}

func (c *Client) fetchOnce(ctx context.Context, endpoint string) ([]models.FeedEvent, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	var events []models.FeedEvent
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, fmt.Errorf("failed to decode feed: %w", err)
	}
	return events, nil
}
