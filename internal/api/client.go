package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/hostkiosk/kioskctl/internal/config"
	"github.com/hostkiosk/kioskctl/internal/listing"
	"github.com/hostkiosk/kioskctl/internal/logging"
	"github.com/hostkiosk/kioskctl/internal/models"
	"github.com/hostkiosk/kioskctl/internal/telemetry"
	"github.com/hostkiosk/kioskctl/internal/utils"
)

// Resource names used in API paths
const (
	ResourceHotels   = "hotels"
	ResourceKiosks   = "kiosks"
	ResourceUsers    = "users"
	ResourceRoles    = "roles"
	ResourceInvoices = "invoices"
	ResourceTickets  = "tickets"
	ResourceAudit    = "audit"
	ResourceReports  = "reports"
)

// Client represents the API client
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Token      string
	TenantID   string

	// OnSession persists a session after a successful login
	OnSession func(email, token, tenantID string) error

	logger *zap.Logger
}

// Options configure a Client
type Options struct {
	Token     string
	TenantID  string
	Timeout   time.Duration
	OnSession func(email, token, tenantID string) error
	Logger    *zap.Logger
}

// New creates a client with explicit options
func New(baseURL string, opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout:   opts.Timeout,
			Transport: telemetry.Transport(nil),
		},
		Token:     opts.Token,
		TenantID:  opts.TenantID,
		OnSession: opts.OnSession,
		logger:    opts.Logger,
	}
}

// NewClient creates a client from the loaded configuration
func NewClient() *Client {
	cfg := config.Get()
	return New(cfg.Server.URL, Options{
		Token:     cfg.Auth.SessionToken,
		TenantID:  config.TenantID(),
		Timeout:   cfg.ServerTimeout(),
		OnSession: config.UpdateAuth,
		Logger:    logging.L(),
	})
}

// Response is the envelope every endpoint answers with
type Response struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Total   int             `json:"total,omitempty"`
	Error   string          `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
	Code    string          `json:"code,omitempty"`
}

// ListOptions narrow a list request server-side
type ListOptions struct {
	Search  string
	Filters listing.FilterState
}

func (o ListOptions) values() url.Values {
	v := url.Values{}
	if o.Search != "" {
		v.Set("search", o.Search)
	}
	for _, key := range o.Filters.Active() {
		v.Set(key, strings.Join(o.Filters[key], ","))
	}
	return v
}

// ListResult is one list response
type ListResult struct {
	Data  json.RawMessage
	Total int
}

// Decode unmarshals the rows into out
func (r *ListResult) Decode(out interface{}) error {
	if len(r.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Data, out); err != nil {
		return fmt.Errorf("failed to parse list data: %w", err)
	}
	return nil
}

// List fetches GET /api/<resource>
func (c *Client) List(ctx context.Context, resource string, opts ListOptions) (*ListResult, error) {
	resp, err := c.do(ctx, http.MethodGet, resource, opts.values(), nil)
	if err != nil {
		return nil, err
	}
	return &ListResult{Data: resp.Data, Total: resp.Total}, nil
}

// ListAs fetches a resource list and decodes it into typed rows
func ListAs[T any](ctx context.Context, c *Client, resource string, opts ListOptions) ([]T, error) {
	result, err := c.List(ctx, resource, opts)
	if err != nil {
		return nil, err
	}
	var rows []T
	if err := result.Decode(&rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Get fetches GET /api/<resource>/<id> into out
func (c *Client) Get(ctx context.Context, resource, id string, out interface{}) error {
	resp, err := c.do(ctx, http.MethodGet, resource+"/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return err
	}
	return decodeData(resp, out)
}

// Create posts payload to /api/<resource>; out receives the stored entity
func (c *Client) Create(ctx context.Context, resource string, payload, out interface{}) error {
	resp, err := c.do(ctx, http.MethodPost, resource, nil, payload)
	if err != nil {
		return err
	}
	return decodeData(resp, out)
}

// Update puts payload to /api/<resource>/<id>
func (c *Client) Update(ctx context.Context, resource, id string, payload, out interface{}) error {
	resp, err := c.do(ctx, http.MethodPut, resource+"/"+url.PathEscape(id), nil, payload)
	if err != nil {
		return err
	}
	return decodeData(resp, out)
}

// Delete removes /api/<resource>/<id>
func (c *Client) Delete(ctx context.Context, resource, id string) error {
	_, err := c.do(ctx, http.MethodDelete, resource+"/"+url.PathEscape(id), nil, nil)
	return err
}

// Suspend posts /api/<resource>/<id>/suspend
func (c *Client) Suspend(ctx context.Context, resource, id string) error {
	return c.Action(ctx, resource, id, "suspend", nil)
}

// Activate posts /api/<resource>/<id>/activate
func (c *Client) Activate(ctx context.Context, resource, id string) error {
	return c.Action(ctx, resource, id, "activate", nil)
}

// Action posts a named state transition, e.g. kiosk restart or ticket close
func (c *Client) Action(ctx context.Context, resource, id, action string, payload interface{}) error {
	path := fmt.Sprintf("%s/%s/%s", resource, url.PathEscape(id), action)
	_, err := c.do(ctx, http.MethodPost, path, nil, payload)
	return err
}

// Login authenticates and stores the session
func (c *Client) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	payload := map[string]string{"email": email, "password": password}
	resp, err := c.do(ctx, http.MethodPost, "auth/login", nil, payload)
	if err != nil {
		return nil, err
	}

	var result models.LoginResponse
	if err := decodeData(resp, &result); err != nil {
		return nil, err
	}
	if result.SessionToken == "" {
		return nil, utils.NewAPIError(0, "login response carried no session token", "")
	}

	c.Token = result.SessionToken
	if result.TenantID != "" {
		c.TenantID = result.TenantID
	}
	if c.OnSession != nil {
		if err := c.OnSession(email, result.SessionToken, c.TenantID); err != nil {
			return nil, fmt.Errorf("failed to save authentication info: %w", err)
		}
	}
	return &result, nil
}

// Logout ends the current session
func (c *Client) Logout(ctx context.Context) error {
	if c.Token == "" {
		return fmt.Errorf("not logged in")
	}
	if _, err := c.do(ctx, http.MethodPost, "auth/logout", nil, nil); err != nil {
		return err
	}
	c.Token = ""
	return nil
}

// IsAuthenticated checks if the client has a session token
func (c *Client) IsAuthenticated() bool {
	return c.Token != ""
}

func decodeData(resp *Response, out interface{}) error {
	if out == nil || len(resp.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Data, out); err != nil {
		return fmt.Errorf("failed to parse response data: %w", err)
	}
	return nil
}

// do executes one request against /api/<path> and unwraps the envelope
func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload interface{}) (*Response, error) {
	endpoint := c.BaseURL + "/api/" + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := ulid.Make().String()
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", requestID)
	c.setAuthHeaders(req)

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.logger.Warn("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Debug("request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
		zap.String("request_id", requestID),
	)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var response Response
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &response); err != nil {
			if resp.StatusCode >= http.StatusBadRequest {
				return nil, utils.NewAPIError(resp.StatusCode, http.StatusText(resp.StatusCode), "")
			}
			return nil, fmt.Errorf("failed to parse response: %w", err)
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, utils.NewAPIError(resp.StatusCode, response.errorMessage(http.StatusText(resp.StatusCode)), response.Code)
	}
	if !response.Success {
		return nil, utils.NewAPIError(0, response.errorMessage("request was not successful"), response.Code)
	}
	return &response, nil
}

func (r *Response) errorMessage(fallback string) string {
	if r.Error != "" {
		return r.Error
	}
	if r.Message != "" {
		return r.Message
	}
	return fallback
}

// setAuthHeaders sets the session and tenant headers
func (c *Client) setAuthHeaders(req *http.Request) {
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	if c.TenantID != "" {
		req.Header.Set("X-Tenant-ID", c.TenantID)
	}
}
