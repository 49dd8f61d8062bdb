// Package tika is File Server's client for Tika server's text-extraction
// endpoint, used by the background processor to turn a decrypted file part
// back into plain text before handing it to Document Server for indexing
// (spec.md §4.6's "decrypt, call Tika, POST text to DS.fulltext_indexing"
// step). This is a different Tika contract than Document Server's own Tika
// client (/language/string, language detection only) — extraction returns
// the document's body text itself.
package tika

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{baseURL: baseURL, httpClient: &http.Client{Timeout: 60 * time.Second}}
}

// ExtractText submits raw bytes to Tika's content-extraction endpoint and
// returns the plain text Tika parsed out of it.
func (c *Client) ExtractText(ctx context.Context, raw []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+"/tika", bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("tika: build request: %w", err)
	}
	req.Header.Set("Accept", "text/plain")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("tika: extract call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("tika: extract rejected request (status %d)", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("tika: read response: %w", err)
	}
	return string(body), nil
}
