package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOptions configures [NewConfiguredHTTPClient]. Zero values keep
// resty's defaults.
type HTTPClientOptions struct {
	Timeout    time.Duration
	RetryCount int
	RetryWait  time.Duration
	UserAgent  string
	// Token is sent as "Authorization: Bearer <Token>" when non-empty.
	Token string
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// NewConfiguredHTTPClient returns an HTTPClient with timeout, auth, and
// retry settings applied. Requests are retried on transport errors, 429 and
// 5xx responses.
func NewConfiguredHTTPClient(opts HTTPClientOptions) *HTTPClient {
	c := NewHTTPClient()

	if opts.Timeout > 0 {
		c.SetTimeout(opts.Timeout)
	}
	if opts.UserAgent != "" {
		c.SetHeader("User-Agent", opts.UserAgent)
	}
	if opts.Token != "" {
		c.SetAuthToken(opts.Token)
	}
	if opts.RetryCount > 0 {
		c.SetRetryCount(opts.RetryCount).
			AddRetryCondition(ShouldRetry)
		if opts.RetryWait > 0 {
			c.SetRetryWaitTime(opts.RetryWait).
				SetRetryMaxWaitTime(opts.RetryWait * 8)
		}
	}

	return c
}

// ShouldRetry reports whether a request outcome is worth another attempt.
func ShouldRetry(resp *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	if resp == nil {
		return false
	}

	code := resp.StatusCode()
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
