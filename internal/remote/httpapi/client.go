// Package httpapi implements the remote.Service contract against the
// playback server's JSON-over-HTTP API. A background poller keeps local
// snapshots fresh and publishes diffs on the subscription channels;
// commands are issued asynchronously and never block the UI.
package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Client provides access to the playback server API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates an API client for the given server base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Targets fetches all known playback targets.
func (c *Client) Targets() ([]targetDTO, error) {
	var result []targetDTO
	if err := c.get("/api/v1/targets", &result); err != nil {
		return nil, err
	}
	return result, nil
}

// Status fetches the playback status of one target.
func (c *Client) Status(targetID string) (*statusDTO, error) {
	var result statusDTO
	path := "/api/v1/status?target=" + url.QueryEscape(targetID)
	if err := c.get(path, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Queue fetches the queue contents of one target.
func (c *Client) Queue(targetID string) ([]trackDTO, error) {
	var result []trackDTO
	path := "/api/v1/queue?target=" + url.QueryEscape(targetID)
	if err := c.get(path, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// Select makes the given target the active one for this client session.
func (c *Client) Select(targetID string) error {
	return c.post("/api/v1/targets/"+url.PathEscape(targetID)+"/select", nil)
}

// Command sends a transport or mode command to a target.
func (c *Client) Command(targetID string, cmd commandDTO) error {
	return c.post("/api/v1/targets/"+url.PathEscape(targetID)+"/command", &cmd)
}

// ArtworkURL builds the artwork URL for a track at the given square size.
func (c *Client) ArtworkURL(trackID string, size int) string {
	return fmt.Sprintf("%s/api/v1/artwork/%s?size=%d", c.baseURL, url.PathEscape(trackID), size)
}

func (c *Client) get(path string, out any) error {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+path, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) post(path string, body any) error {
	var reader *bytes.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(jsonBody)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("API returned status %d", resp.StatusCode)
	}
	return nil
}
