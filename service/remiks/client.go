package remiks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"remiks.GO/config"
	"remiks.GO/core/cache"
	"remiks.GO/service/sync"
)

const (
	tokenCacheKey = "remiks:token"
	// Tokens are short-lived on the platform side; cache well under that.
	tokenTTLSeconds = 600
)

// AuthError reports a failed token exchange.
type AuthError struct {
	Status int
	Body   string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("remiks auth failed: status %d: %s", e.Status, e.Body)
}

// SubmitError reports a rejected payload submission.
type SubmitError struct {
	Status int
	Body   string
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("remiks submit failed: status %d: %s", e.Status, e.Body)
}

// Client talks to the Remiks ingestion API. It implements sync.Remote.
type Client struct {
	HTTP  *http.Client
	cfg   *config.Config
	cache *cache.Cache
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		HTTP:  &http.Client{Timeout: 60 * time.Second},
		cfg:   cfg,
		cache: cache.GetInstance(),
	}
}

// Authenticate exchanges the configured API key and credentials for a
// bearer token. Tokens are cached in process and mirrored to Redis when
// one is configured, so back-to-back sync runs share a token.
func (c *Client) Authenticate(ctx context.Context) (string, error) {
	if v, ok := c.cache.Get(tokenCacheKey); ok {
		if token, isStr := v.(string); isStr && token != "" {
			return token, nil
		}
	}
	if config.RedisClient != nil {
		if token, err := config.RedisClient.Get(ctx, tokenCacheKey).Result(); err == nil && token != "" {
			c.cache.Set(tokenCacheKey, token, tokenTTLSeconds, nil)
			return token, nil
		}
	}

	creds, err := json.Marshal(map[string]string{
		"username": c.cfg.RemiksUsername,
		"password": c.cfg.RemiksPassword,
	})
	if err != nil {
		return "", err
	}

	// The login endpoint takes the credentials as a GET body. Odd, but
	// that is the contract.
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.RemiksLoginURL, bytes.NewReader(creds))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "ApiKey "+c.cfg.RemiksAPIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", &AuthError{Status: resp.StatusCode, Body: string(body)}
	}

	var parsed struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", &AuthError{Status: resp.StatusCode, Body: string(body)}
	}
	if parsed.Token == "" {
		return "", &AuthError{Status: resp.StatusCode, Body: "no token in response"}
	}

	c.cache.Set(tokenCacheKey, parsed.Token, tokenTTLSeconds, nil)
	if config.RedisClient != nil {
		config.RedisClient.Set(ctx, tokenCacheKey, parsed.Token, tokenTTLSeconds*time.Second)
	}
	return parsed.Token, nil
}

// Submit posts a payload to the channel's ingestion endpoint. A non-200
// response is an error; a 200 response may still carry per-record service
// errors, which are returned for logging without failing the run.
func (c *Client) Submit(ctx context.Context, ch sync.Channel, payload []byte, token string) ([]string, error) {
	url := c.cfg.RemiksProductURL
	if ch == sync.ChannelStock {
		url = c.cfg.RemiksStockURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		// Stale token; drop the cached one so the next run re-authenticates.
		c.cache.Delete(tokenCacheKey)
		if config.RedisClient != nil {
			config.RedisClient.Del(ctx, tokenCacheKey)
		}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &SubmitError{Status: resp.StatusCode, Body: string(body)}
	}

	return parseServiceErrors(body), nil
}

// parseServiceErrors extracts the errors array from an accepted response.
// Entries may be strings or objects; both are rendered to strings.
func parseServiceErrors(body []byte) []string {
	var parsed struct {
		Errors []interface{} `json:"errors"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil
	}
	var errs []string
	for _, e := range parsed.Errors {
		switch v := e.(type) {
		case string:
			errs = append(errs, v)
		default:
			raw, err := json.Marshal(v)
			if err != nil {
				errs = append(errs, fmt.Sprintf("%v", v))
				continue
			}
			errs = append(errs, string(raw))
		}
	}
	return errs
}
