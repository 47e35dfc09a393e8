// Package client is a Go client for the runsheet HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/codeready-toolchain/runsheet/pkg/models"
	"github.com/codeready-toolchain/runsheet/pkg/version"
)

// Client calls a runsheet server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a client for the server at baseURL, e.g. "http://localhost:8080".
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server URL %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid server URL %q: scheme must be http or https", baseURL)
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode    int
	Message       string   `json:"error"`
	FailedItemIDs []string `json:"failed_item_ids,omitempty"`
}

func (e *APIError) Error() string {
	if len(e.FailedItemIDs) > 0 {
		return fmt.Sprintf("%s (HTTP %d, failed items: %s)", e.Message, e.StatusCode, strings.Join(e.FailedItemIDs, ", "))
	}
	return fmt.Sprintf("%s (HTTP %d)", e.Message, e.StatusCode)
}

// IsNotFound reports whether err is a 404 from the server.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// ListEvents lists events, optionally filtered by status.
func (c *Client) ListEvents(ctx context.Context, status models.EventStatus) ([]*models.Event, error) {
	path := "/api/v1/events"
	if status != "" {
		path += "?" + url.Values{"status": []string{string(status)}}.Encode()
	}
	var out []*models.Event
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetEvent fetches one event.
func (c *Client) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	var out models.Event
	if err := c.do(ctx, http.MethodGet, "/api/v1/events/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateEvent creates a draft event.
func (c *Client) CreateEvent(ctx context.Context, req models.CreateEventRequest) (*models.Event, error) {
	var out models.Event
	if err := c.do(ctx, http.MethodPost, "/api/v1/events", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetEventStatus moves an event to status.
func (c *Client) SetEventStatus(ctx context.Context, id string, status models.EventStatus) (*models.Event, error) {
	var out models.Event
	body := models.EventStatusRequest{Status: status}
	if err := c.do(ctx, http.MethodPatch, "/api/v1/events/"+url.PathEscape(id)+"/status", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListItems lists an event's items in order.
func (c *Client) ListItems(ctx context.Context, eventID string) ([]*models.TimelineItem, error) {
	var out []*models.TimelineItem
	if err := c.do(ctx, http.MethodGet, "/api/v1/events/"+url.PathEscape(eventID)+"/items", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateItem appends an item to an event.
func (c *Client) CreateItem(ctx context.Context, eventID string, req models.CreateTimelineItemRequest) (*models.TimelineItem, error) {
	var out models.TimelineItem
	if err := c.do(ctx, http.MethodPost, "/api/v1/events/"+url.PathEscape(eventID)+"/items", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Board fetches the live board of an event.
func (c *Client) Board(ctx context.Context, eventID string) (*models.LiveBoard, error) {
	var out models.LiveBoard
	if err := c.do(ctx, http.MethodGet, "/api/v1/events/"+url.PathEscape(eventID)+"/live", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// JumpTo re-times the item's event so that the item starts now.
func (c *Client) JumpTo(ctx context.Context, itemID string) (*models.LiveResult, error) {
	var out models.LiveResult
	if err := c.do(ctx, http.MethodPost, "/api/v1/timeline-items/jump-to", models.JumpToRequest{ItemID: itemID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CompleteCurrent completes the in-progress item.
func (c *Client) CompleteCurrent(ctx context.Context, eventID string) (*models.LiveResult, error) {
	var out models.LiveResult
	if err := c.do(ctx, http.MethodPost, "/api/v1/events/"+url.PathEscape(eventID)+"/live/complete", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SkipCurrent skips the in-progress item.
func (c *Client) SkipCurrent(ctx context.Context, eventID string) (*models.LiveResult, error) {
	var out models.LiveResult
	if err := c.do(ctx, http.MethodPost, "/api/v1/events/"+url.PathEscape(eventID)+"/live/skip", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.Full())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call %s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if json.Unmarshal(data, apiErr) != nil || apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
