package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/sellhub/internal/client/models"
	"github.com/dmitrijs2005/sellhub/internal/logging"
	"github.com/google/uuid"
)

const (
	registerPath = "/api/v1/auth/register"
	loginPath    = "/api/v1/auth/login"
	userPath     = "/api/v1/authorized/user"
	healthPath   = "/api/v1/health"

	RequestIDHeader = "X-Request-ID"
)

type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the default http.Client (tests use the one
// returned by httptest.Server.Client).
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTPClient) { h.http = c }
}

func NewHTTPClient(baseURL string, log logging.Logger, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		log:     log,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

type loginResponse struct {
	Token string `json:"token"`
}

// Register succeeds only on 201 Created.
func (c *HTTPClient) Register(ctx context.Context, creds models.RegisterCredentials) error {
	status, body, err := c.do(ctx, http.MethodPost, registerPath, "", creds)
	if err != nil {
		return err
	}
	if status != http.StatusCreated {
		return httpError(status, extractMessage(status, body))
	}
	return nil
}

func (c *HTTPClient) Login(ctx context.Context, creds models.LoginCredentials) (string, error) {
	status, body, err := c.do(ctx, http.MethodPost, loginPath, "", creds)
	if err != nil {
		return "", err
	}
	if !isSuccess(status) {
		return "", httpError(status, extractMessage(status, body))
	}

	var resp loginResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", &Error{Kind: KindHTTP, Status: status, Message: "invalid login response", Err: err}
	}
	if resp.Token == "" {
		return "", httpError(status, "invalid login response: empty token")
	}
	return resp.Token, nil
}

func (c *HTTPClient) GetUser(ctx context.Context, token string) (*models.User, error) {
	status, body, err := c.do(ctx, http.MethodGet, userPath, token, nil)
	if err != nil {
		return nil, err
	}
	if !isSuccess(status) {
		if status == http.StatusForbidden {
			return nil, httpError(status, reloginMessage)
		}
		msg := strings.TrimSpace(string(body))
		if msg == "" {
			msg = fetchUserMessage
		}
		return nil, httpError(status, msg)
	}

	var user models.User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, &Error{Kind: KindHTTP, Status: status, Message: "invalid user response", Err: err}
	}
	return &user, nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	status, body, err := c.do(ctx, http.MethodGet, healthPath, "", nil)
	if err != nil {
		return err
	}
	if !isSuccess(status) {
		return httpError(status, fmt.Sprintf("Health check failed: %d %s", status, strings.TrimSpace(string(body))))
	}
	return nil
}

// do sends one request and returns the status and the full body. Transport
// failures are KindNetwork *Errors; a payload that cannot be encoded is a
// plain error and nothing is sent.
func (c *HTTPClient) do(ctx context.Context, method, path, token string, payload any) (int, []byte, error) {
	var reqBody io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return 0, nil, networkError(err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	log := c.log.With("request_id", requestID, "method", method, "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err)
		return 0, nil, networkError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Warn(ctx, "reading response body failed", "status", resp.StatusCode, "error", err)
		return 0, nil, networkError(err)
	}

	log.Debug(ctx, "request done", "status", resp.StatusCode)
	return resp.StatusCode, body, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

// extractMessage pulls a human readable message out of an error body:
// JSON "message", then JSON "error", then the raw text, then "HTTP <status>".
func extractMessage(status int, body []byte) string {
	text := strings.TrimSpace(string(body))

	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err == nil {
		for _, k := range []string{"message", "error"} {
			switch v := fields[k].(type) {
			case string:
				if v != "" {
					return v
				}
			case float64:
				if v != 0 {
					return strconv.FormatFloat(v, 'f', -1, 64)
				}
			case bool:
				if v {
					return "true"
				}
			}
		}
	}

	if text != "" {
		return text
	}
	return "HTTP " + strconv.Itoa(status)
}
