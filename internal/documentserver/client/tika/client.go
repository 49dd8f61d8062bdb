// Package tika is a minimal client for Tika server's language-detection
// endpoint, used by the full-text indexing pipeline's per-window language
// detection pass (spec.md §4.5 step 3). Tika itself is an external
// collaborator, out of this repo's scope — this client only speaks its
// documented /language/string contract over plain net/http.
package tika

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{baseURL: baseURL, httpClient: &http.Client{Timeout: 30 * time.Second}}
}

// DetectLanguage returns the ISO-639-1 code Tika detects as the dominant
// language of text.
func (c *Client) DetectLanguage(ctx context.Context, text string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+"/language/string", bytes.NewBufferString(text))
	if err != nil {
		return "", fmt.Errorf("tika: build request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	req.Header.Set("Accept", "text/plain")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("tika: language detection call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("tika: language detection rejected request (status %d)", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("tika: read response: %w", err)
	}
	return strings.TrimSpace(string(body)), nil
}
