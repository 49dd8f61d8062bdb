// Package keymanager is Document Server's HTTP client for Key Manager's
// get_key operation: fetching a tenant's still-CEK-wrapped Customer Key so
// it can be unwrapped locally before encrypting/decrypting document text.
package keymanager

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// KeyReply mirrors Key Manager's GET /key/{customer_code} response body.
type KeyReply struct {
	CustomerCode string `json:"customer_code"`
	CipheredKey  string `json:"ciphered_key"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{baseURL: baseURL, httpClient: &http.Client{Timeout: 10 * time.Second}}
}

// GetKey fetches customerCode's wrapped Customer Key.
func (c *Client) GetKey(ctx context.Context, customerCode string) (*KeyReply, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/key/"+customerCode, nil)
	if err != nil {
		return nil, fmt.Errorf("keymanager: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("keymanager: get_key call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("keymanager: get_key rejected customer_code (status %d)", resp.StatusCode)
	}

	var reply KeyReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return nil, fmt.Errorf("keymanager: decode reply: %w", err)
	}
	return &reply, nil
}
