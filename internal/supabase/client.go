// Package supabase is a minimal client for the REST and auth endpoints of a
// Supabase project: row inserts through PostgREST and user lookup through
// the auth service.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"intakeflow/internal/apierr"
	"intakeflow/internal/model"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const defaultTimeout = 30 * time.Second

// Config holds the project address and public API key
type Config struct {
	URL        string
	AnonKey    string
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// Client talks to one Supabase project
type Client struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
	logger     *zap.Logger
}

// Error is a non-2xx response from PostgREST or the auth service
type Error struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	Hint    string `json:"hint,omitempty"`
	cause   error
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("supabase: %s (%s)", e.Message, e.Code)
	}
	return "supabase: " + e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// BackendCode returns the PostgREST or SQLSTATE code
func (e *Error) BackendCode() string {
	return e.Code
}

// New validates the configuration and builds a client. A blank URL or key
// fails with ENV_NOT_CONFIGURED.
func New(cfg Config) (*Client, error) {
	url := strings.TrimSpace(cfg.URL)
	if url == "" {
		return nil, apierr.New(apierr.CodeEnvNotConfigured,
			apierr.WithMessage("SUPABASE_URL is not configured"),
			apierr.WithUserMessage("The Supabase URL is not configured. Check the .env file."))
	}
	key := strings.TrimSpace(cfg.AnonKey)
	if key == "" {
		return nil, apierr.New(apierr.CodeEnvNotConfigured,
			apierr.WithMessage("SUPABASE_ANON_KEY is not configured"),
			apierr.WithUserMessage("The Supabase API key is not configured. Check the .env file."))
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		baseURL:    strings.TrimRight(url, "/"),
		anonKey:    key,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// Insert posts one row to a table and decodes the single returned row into
// out. The caller's access token is forwarded so row level security sees
// the user; an empty token uses the anon key.
func (c *Client) Insert(ctx context.Context, table string, row interface{}, out interface{}, accessToken string) error {
	body, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("failed to encode row: %w", err)
	}

	headers := http.Header{}
	headers.Set("Prefer", "return=representation")
	headers.Set("Accept", "application/vnd.pgrst.object+json")

	return c.do(ctx, http.MethodPost, "/rest/v1/"+table+"?select=id", bytes.NewReader(body), accessToken, headers, out)
}

// GetUser returns the user owning accessToken. An empty token means no
// signed-in user and returns nil without a request.
func (c *Client) GetUser(ctx context.Context, accessToken string) (*model.Identity, error) {
	if accessToken == "" {
		return nil, nil
	}

	var user struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	if err := c.do(ctx, http.MethodGet, "/auth/v1/user", nil, accessToken, nil, &user); err != nil {
		return nil, err
	}
	if user.ID == "" {
		return nil, nil
	}
	return &model.Identity{ID: user.ID, Email: user.Email, Role: user.Role}, nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, accessToken string, headers http.Header, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	bearer := accessToken
	if bearer == "" {
		bearer = c.anonKey
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+bearer)
	req.Header.Set("Content-Type", "application/json")
	for k, vals := range headers {
		for _, v := range vals {
			req.Header.Set(k, v)
		}
	}

	c.logger.Debug("supabase request", zap.String("method", method), zap.String("path", path))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("supabase request failed", zap.String("path", path), zap.Error(err))
		return &Error{Code: apierr.BackendConnection, Message: err.Error(), cause: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Code: apierr.BackendConnection, Message: "failed to read response body", cause: err}
	}

	c.logger.Debug("supabase response",
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(respBody)))

	if resp.StatusCode >= 400 {
		return decodeError(resp.StatusCode, respBody)
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeError(status int, body []byte) error {
	apiErr := &Error{Status: status}
	if err := json.Unmarshal(body, apiErr); err != nil || (apiErr.Code == "" && apiErr.Message == "") {
		// Auth endpoints answer with {"error": ..., "msg": ...} shapes.
		var alt struct {
			Error            string `json:"error"`
			ErrorDescription string `json:"error_description"`
			Msg              string `json:"msg"`
			ErrorCode        string `json:"error_code"`
		}
		_ = json.Unmarshal(body, &alt)
		apiErr.Code = alt.ErrorCode
		apiErr.Message = firstNonEmpty(alt.Msg, alt.ErrorDescription, alt.Error, http.StatusText(status))
	}
	if apiErr.Code == "" && status == http.StatusServiceUnavailable {
		apiErr.Code = apierr.BackendServiceUnavailable
	}
	return apiErr
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// IsStatus reports whether err is a response error with the given status
func IsStatus(err error, status int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == status
}
