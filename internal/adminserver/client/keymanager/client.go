// Package keymanager is a small HTTP client the admin server uses to ask
// Key Manager for a customer's master key during tenant provisioning.
package keymanager

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// AddKeyRequest mirrors Key Manager's POST /key request body.
type AddKeyRequest struct {
	CustomerCode string `json:"customer_code"`
}

// AddKeyReply mirrors Key Manager's response envelope.
type AddKeyReply struct {
	Success bool   `json:"success"`
	Status  string `json:"status,omitempty"`
}

// Client calls Key Manager over HTTP, authenticating with a security token
// forwarded from the caller's own request.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New builds a Client pointed at baseURL (Key Manager's peer base URL).
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// AddKey asks Key Manager to mint and store a fresh master key for
// customerCode, authenticated with securityToken (the "token"-kind
// credential forwarded from the originating request).
func (c *Client) AddKey(ctx context.Context, customerCode string, securityToken string) (*AddKeyReply, error) {
	body, err := json.Marshal(AddKeyRequest{CustomerCode: customerCode})
	if err != nil {
		return nil, fmt.Errorf("keymanager: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/key", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("keymanager: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("token", securityToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("keymanager: add_key call failed: %w", err)
	}
	defer resp.Body.Close()

	var reply AddKeyReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return nil, fmt.Errorf("keymanager: decode reply: %w", err)
	}
	if resp.StatusCode >= 400 {
		reply.Success = false
	}
	return &reply, nil
}
