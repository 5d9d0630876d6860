package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a resty client bound to baseURL.
//
// Every request made through the client is cancelled after timeout; a
// non-positive timeout leaves the client without a deadline, so callers
// should always pass one for calls to third parties.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://verify.twilio.com", 10*time.Second)
//	resp, err := client.R().SetContext(ctx).Get("/v2/Services")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().SetBaseURL(baseURL)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
