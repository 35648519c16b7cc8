// Package client implements the HTTP client for the survey API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"healthsurvey/internal/domain"
)

// Client calls the survey API. Every operation is a single attempt, no
// retries; the embedded http.Client carries a request timeout so a hung
// call always settles.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New returns a Client for the given base URL.
func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Employees fetches the full employee directory.
func (c *Client) Employees(ctx context.Context) ([]domain.Employee, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/employees", nil)
	if err != nil {
		return nil, err
	}

	body, status, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("list employees failed: status=%d body=%s", status, snippet(body))
	}

	var out []domain.Employee
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("list employees: json parse error: %w body=%s", err, snippet(body))
	}
	return out, nil
}

// SubmitSurvey posts one survey submission. Any non-error status counts
// as success.
func (c *Client) SubmitSurvey(ctx context.Context, sub domain.Submission) error {
	payload, err := json.Marshal(sub)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/submit-survey", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	body, status, err := c.do(req)
	if err != nil {
		return fmt.Errorf("submit survey: %w", err)
	}
	if status < 200 || status >= 300 {
		return fmt.Errorf("submit survey failed: status=%d body=%s", status, snippet(body))
	}
	return nil
}

func (c *Client) do(req *http.Request) ([]byte, int, error) {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return body, resp.StatusCode, nil
}

func snippet(b []byte) string {
	s := strings.TrimSpace(string(b))
	if len(s) > 300 {
		return s[:300] + "..."
	}
	return s
}
