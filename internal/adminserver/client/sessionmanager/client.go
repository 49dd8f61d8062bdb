// Package sessionmanager is the admin server's HTTP client for Session
// Manager's open_session operation.
package sessionmanager

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// OpenSessionRequest mirrors Session Manager's POST /session body.
type OpenSessionRequest struct {
	CustomerCode string `json:"customer_code"`
	UserName     string `json:"user_name"`
	CustomerID   int64  `json:"customer_id"`
	UserID       int64  `json:"user_id"`
	SessionID    string `json:"session_id"`
}

// OpenSessionReply mirrors Session Manager's response envelope.
type OpenSessionReply struct {
	Success bool `json:"success"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{baseURL: baseURL, httpClient: &http.Client{Timeout: 10 * time.Second}}
}

// OpenSession registers sessionID for this customer/user pair.
func (c *Client) OpenSession(ctx context.Context, req OpenSessionRequest) (*OpenSessionReply, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("sessionmanager: encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/session", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("sessionmanager: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("sessionmanager: open_session call failed: %w", err)
	}
	defer resp.Body.Close()

	var reply OpenSessionReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return nil, fmt.Errorf("sessionmanager: decode reply: %w", err)
	}
	if resp.StatusCode >= 400 {
		reply.Success = false
	}
	return &reply, nil
}
