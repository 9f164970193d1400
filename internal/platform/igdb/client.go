// Package igdb is a read-only client for the IGDB v4 catalog API. Queries
// are authenticated with a Twitch client-credentials token that the client
// acquires and refreshes itself.
package igdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultAuthURL = "https://id.twitch.tv/oauth2/token"
	defaultAPIURL  = "https://api.igdb.com/v4"

	// tokenSafetyMargin shortens the advertised token lifetime so a token
	// is never used right at its expiry edge.
	tokenSafetyMargin = time.Minute
)

var (
	// ErrNotConfigured means no client credentials were provided. Catalog
	// features are unavailable; the rest of the service still works.
	ErrNotConfigured = errors.New("igdb: credentials not configured")
	// ErrAuth means the upstream rejected our credentials or token, even
	// after a refresh.
	ErrAuth = errors.New("igdb: authentication rejected")
	// ErrRequest is a non-retryable upstream rejection (4xx).
	ErrRequest = errors.New("igdb: request rejected")
	// ErrUnavailable is a transport failure or upstream 5xx; the caller may
	// retry.
	ErrUnavailable = errors.New("igdb: upstream unavailable")
	// ErrNotFound means the query matched no game.
	ErrNotFound = errors.New("igdb: game not found")
)

type Config struct {
	ClientID     string
	ClientSecret string
	// AuthURL and APIURL default to the public Twitch/IGDB endpoints.
	AuthURL    string
	APIURL     string
	HTTPClient *http.Client
	// RequestsPerSecond caps outgoing query rate. IGDB allows 4.
	RequestsPerSecond int
}

type Client struct {
	clientID     string
	clientSecret string
	authURL      string
	apiURL       string
	httpClient   *http.Client
	limiter      *rate.Limiter

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

func NewClient(cfg Config) *Client {
	if cfg.AuthURL == "" {
		cfg.AuthURL = defaultAuthURL
	}
	if cfg.APIURL == "" {
		cfg.APIURL = defaultAPIURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 15 * time.Second}
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 4
	}
	return &Client{
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		authURL:      cfg.AuthURL,
		apiURL:       cfg.APIURL,
		httpClient:   cfg.HTTPClient,
		limiter:      rate.NewLimiter(rate.Every(time.Second/time.Duration(cfg.RequestsPerSecond)), 1),
	}
}

func (c *Client) Configured() bool {
	return c.clientID != "" && c.clientSecret != ""
}

// getAccessToken returns the cached token while it is still inside the
// safety margin, otherwise performs a client-credentials exchange.
func (c *Client) getAccessToken(ctx context.Context) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry) {
		return c.accessToken, nil
	}

	q := url.Values{}
	q.Set("client_id", c.clientID)
	q.Set("client_secret", c.clientSecret)
	q.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.authURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("%w: token exchange returned %d: %s",
			ErrAuth, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var tr struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", fmt.Errorf("%w: decoding token response: %v", ErrAuth, err)
	}
	if tr.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access token", ErrAuth)
	}

	c.accessToken = tr.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(tr.ExpiresIn)*time.Second - tokenSafetyMargin)
	return c.accessToken, nil
}

func (c *Client) invalidateToken() {
	c.mu.Lock()
	c.accessToken = ""
	c.tokenExpiry = time.Time{}
	c.mu.Unlock()
}

// query posts an APIcalypse body to an endpoint and decodes the result
// array. A 401 invalidates the cached token and the request is retried
// exactly once with a fresh one; a second 401 surfaces as ErrAuth.
func (c *Client) query(ctx context.Context, endpoint, body string) ([]json.RawMessage, error) {
	for attempt := 0; attempt < 2; attempt++ {
		token, err := c.getAccessToken(ctx)
		if err != nil {
			return nil, err
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+endpoint, strings.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Client-ID", c.clientID)
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Content-Type", "text/plain")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			var out []json.RawMessage
			err := json.NewDecoder(resp.Body).Decode(&out)
			resp.Body.Close()
			if err != nil {
				return nil, fmt.Errorf("%w: decoding response: %v", ErrUnavailable, err)
			}
			return out, nil

		case resp.StatusCode == http.StatusUnauthorized:
			resp.Body.Close()
			c.invalidateToken()
			continue

		case resp.StatusCode >= 500:
			resp.Body.Close()
			return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)

		default:
			msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			resp.Body.Close()
			return nil, fmt.Errorf("%w: status %d: %s",
				ErrRequest, resp.StatusCode, strings.TrimSpace(string(msg)))
		}
	}
	return nil, fmt.Errorf("%w: still unauthorized after token refresh", ErrAuth)
}

// GameByID fetches the full catalog document for one game. The payload is
// opaque to this service; only the notification path ever looks inside it.
func (c *Client) GameByID(ctx context.Context, gameID int64) (json.RawMessage, error) {
	body := fmt.Sprintf("fields name, cover.url, first_release_date, summary, storyline, "+
		"platforms.name, genres.name, rating, rating_count, screenshots.url, videos.video_id, "+
		"involved_companies.company.name, involved_companies.developer, involved_companies.publisher; "+
		"where id = %d;", gameID)
	games, err := c.query(ctx, "/games", body)
	if err != nil {
		return nil, err
	}
	if len(games) == 0 {
		return nil, ErrNotFound
	}
	return games[0], nil
}

func (c *Client) Search(ctx context.Context, q string, limit, offset int) ([]json.RawMessage, error) {
	body := fmt.Sprintf("search %q; fields name, cover.url, first_release_date, summary, "+
		"platforms.name, genres.name, rating, rating_count; limit %d; offset %d;", q, limit, offset)
	return c.query(ctx, "/games", body)
}

func (c *Client) Popular(ctx context.Context, limit int) ([]json.RawMessage, error) {
	body := fmt.Sprintf("fields name, cover.url, first_release_date, summary, "+
		"platforms.name, genres.name, rating, rating_count; "+
		"sort rating_count desc; where rating_count > 100; limit %d;", limit)
	return c.query(ctx, "/games", body)
}
