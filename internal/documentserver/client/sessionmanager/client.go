// Package sessionmanager is Document Server's HTTP client for Session
// Manager's get_session operation, used to resolve the caller's sid into a
// customer_code before touching that tenant's content schema.
package sessionmanager

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// SessionReply mirrors Session Manager's GET /session/{sid} response body.
type SessionReply struct {
	SID          string `json:"sid"`
	CustomerCode string `json:"customer_code"`
	UserName     string `json:"user_name"`
	CustomerID   int64  `json:"customer_id"`
	UserID       int64  `json:"user_id"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{baseURL: baseURL, httpClient: &http.Client{Timeout: 10 * time.Second}}
}

// GetSession resolves sid into its session record. Returns an error if
// Session Manager reports the sid unknown or expired.
func (c *Client) GetSession(ctx context.Context, sid string) (*SessionReply, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/session/"+sid, nil)
	if err != nil {
		return nil, fmt.Errorf("sessionmanager: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sessionmanager: get_session call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("sessionmanager: get_session rejected sid (status %d)", resp.StatusCode)
	}

	var reply SessionReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return nil, fmt.Errorf("sessionmanager: decode reply: %w", err)
	}
	return &reply, nil
}
