// Package documentserver is File Server's HTTP client for Document Server's
// service-to-service indexing routes. The background processor never has a
// live user sid for the file_reference row it just picked — it already
// knows the tenant from the schema it queried — so it calls the
// /internal/... routes with customer_code directly instead of going through
// Session Manager.
package documentserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// IndexingReply mirrors Document Server's internal indexing reply body.
type IndexingReply struct {
	PartCount int    `json:"part_count"`
	Status    string `json:"status"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{baseURL: baseURL, httpClient: &http.Client{Timeout: 30 * time.Second}}
}

// Index sends extracted text to be tokenized, encrypted and stored.
func (c *Client) Index(ctx context.Context, customerCode, fileRef, text string) (*IndexingReply, error) {
	body, err := json.Marshal(map[string]string{
		"customer_code": customerCode,
		"file_ref":      fileRef,
		"text":          text,
	})
	if err != nil {
		return nil, fmt.Errorf("documentserver: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/internal/fulltext_indexing", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("documentserver: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("documentserver: fulltext_indexing call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("documentserver: fulltext_indexing rejected request (status %d)", resp.StatusCode)
	}

	var reply IndexingReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return nil, fmt.Errorf("documentserver: decode reply: %w", err)
	}
	return &reply, nil
}

// DeleteIndex removes a file_ref's previously indexed text.
func (c *Client) DeleteIndex(ctx context.Context, customerCode, fileRef string) error {
	body, err := json.Marshal(map[string]string{
		"customer_code": customerCode,
		"file_ref":      fileRef,
	})
	if err != nil {
		return fmt.Errorf("documentserver: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/internal/delete_text_indexing", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("documentserver: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("documentserver: delete_text_indexing call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("documentserver: delete_text_indexing rejected request (status %d)", resp.StatusCode)
	}
	return nil
}
