package services

import (
	"context"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// MediaCheckResult reports whether a media URL answered
type MediaCheckResult struct {
	URL        string `json:"url"`
	Reachable  bool   `json:"reachable"`
	StatusCode int    `json:"status_code,omitempty"`
	Error      string `json:"error,omitempty"`
}

// MediaChecker probes cover_image_url / audio_url values for reachability.
// It is an operator tool: catalog writes never block on it.
type MediaChecker struct {
	client *resty.Client
}

// NewMediaChecker creates a media checker with the given probe timeout
func NewMediaChecker(timeout time.Duration) *MediaChecker {
	client := resty.New().
		SetTimeout(timeout).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(5))
	return &MediaChecker{client: client}
}

// Check issues a HEAD request against the URL, falling back to GET when the
// host rejects HEAD. Only http(s) URLs are probed.
func (m *MediaChecker) Check(ctx context.Context, url string) MediaCheckResult {
	result := MediaCheckResult{URL: url}

	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		result.Error = "only http and https URLs can be checked"
		return result
	}

	resp, err := m.client.R().SetContext(ctx).Head(url)
	if err == nil && resp.StatusCode() == 405 {
		resp, err = m.client.R().SetContext(ctx).Get(url)
	}
	if err != nil {
		result.Error = err.Error()
		return result
	}

	result.StatusCode = resp.StatusCode()
	result.Reachable = resp.StatusCode() < 400
	return result
}
