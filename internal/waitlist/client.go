package waitlist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/titans986/waiting-list-site/internal/models"
)

// checkResp returns an error if the status is not 2xx, including the
// upstream body for debugging.
func checkResp(resp *http.Response, path string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("waitlist %s returned %d: %s", path, resp.StatusCode, string(body))
}

// Client calls the registration endpoint over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a client for the site at baseURL. A nil httpClient
// means http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

// Register posts email to the registration endpoint. One attempt, no retries.
func (c *Client) Register(ctx context.Context, email string) (*models.RegisterResponse, error) {
	body, err := json.Marshal(models.RegisterRequest{Email: email})
	if err != nil {
		return nil, fmt.Errorf("waitlist %s: encode: %w", RegisterPath, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+RegisterPath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkResp(resp, RegisterPath); err != nil {
		return nil, err
	}

	var out models.RegisterResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("waitlist %s: decode: %w", RegisterPath, err)
	}
	return &out, nil
}
