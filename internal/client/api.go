package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/polkiloo/healthboard/internal/domain/model"
)

var (
	// ErrInvalidCredentials is returned when the server rejects a login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthorized is returned when a protected request carries no token.
	ErrUnauthorized = errors.New("no token provided")
	// ErrForbidden is returned when the server rejects the presented token.
	ErrForbidden = errors.New("invalid token")
)

// APIError is an unexpected response from the dashboard server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("dashboard api error: status %d", e.Status)
	}
	return fmt.Sprintf("dashboard api error: status %d: %s", e.Status, e.Message)
}

// API exposes the dashboard server endpoints used by the client.
type API interface {
	Login(ctx context.Context, username, password string) (string, error)
	Priorities(ctx context.Context, token string) ([]model.Priority, error)
	MarketSeries(ctx context.Context, token string) ([]model.MarketSizePoint, error)
	Session(ctx context.Context, token string) (*model.Session, error)
}

// HTTPClient implements API over the JSON HTTP interface.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message  string `json:"message"`
	Token    string `json:"token"`
	Username string `json:"username"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type priorityResponse struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type marketSizeResponse struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

type sessionResponse struct {
	Username  string `json:"username"`
	IssuedAt  string `json:"issued_at"`
	ExpiresAt string `json:"expires_at"`
}

// NewHTTPClient creates a dashboard API client with a default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse server url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("server url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Login exchanges credentials for a token.
func (c *HTTPClient) Login(ctx context.Context, username, password string) (string, error) {
	payload, err := json.Marshal(loginRequest{Username: username, Password: password})
	if err != nil {
		return "", err
	}

	resp, err := c.do(ctx, http.MethodPost, "/login", "", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var data loginResponse
		if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
			return "", fmt.Errorf("decode login response: %w", err)
		}
		if data.Token == "" {
			return "", fmt.Errorf("login response carried no token")
		}
		return data.Token, nil
	case http.StatusUnauthorized:
		return "", ErrInvalidCredentials
	default:
		return "", c.unexpected(resp)
	}
}

// Priorities fetches the summary chart dataset.
func (c *HTTPClient) Priorities(ctx context.Context, token string) ([]model.Priority, error) {
	var rows []priorityResponse
	if err := c.getJSON(ctx, "/api/chart/summary", token, &rows); err != nil {
		return nil, err
	}
	out := make([]model.Priority, 0, len(rows))
	for _, r := range rows {
		out = append(out, model.Priority{Name: r.Name, Value: r.Value})
	}
	return out, nil
}

// MarketSeries fetches the reports chart dataset.
func (c *HTTPClient) MarketSeries(ctx context.Context, token string) ([]model.MarketSizePoint, error) {
	var rows []marketSizeResponse
	if err := c.getJSON(ctx, "/api/chart/reports", token, &rows); err != nil {
		return nil, err
	}
	out := make([]model.MarketSizePoint, 0, len(rows))
	for _, r := range rows {
		out = append(out, model.MarketSizePoint{Year: r.Year, Value: r.Value})
	}
	return out, nil
}

// Session asks the server to verify the token and returns its claims.
func (c *HTTPClient) Session(ctx context.Context, token string) (*model.Session, error) {
	var data sessionResponse
	if err := c.getJSON(ctx, "/api/session", token, &data); err != nil {
		return nil, err
	}
	issued, err := time.Parse(time.RFC3339, data.IssuedAt)
	if err != nil {
		return nil, fmt.Errorf("parse issued_at: %w", err)
	}
	expires, err := time.Parse(time.RFC3339, data.ExpiresAt)
	if err != nil {
		return nil, fmt.Errorf("parse expires_at: %w", err)
	}
	return &model.Session{Username: data.Username, IssuedAt: issued, ExpiresAt: expires}, nil
}

func (c *HTTPClient) getJSON(ctx context.Context, route, token string, dst any) error {
	resp, err := c.do(ctx, http.MethodGet, route, token, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
			return fmt.Errorf("decode %s response: %w", route, err)
		}
		return nil
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	default:
		return c.unexpected(resp)
	}
}

func (c *HTTPClient) do(ctx context.Context, method, route, token string, body io.Reader) (*http.Response, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, route)

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.httpClient.Do(req)
}

func (c *HTTPClient) unexpected(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	var data errorResponse
	msg := string(body)
	if err := json.Unmarshal(body, &data); err == nil && data.Error != "" {
		msg = data.Error
	}
	c.logger.Error("dashboard request failed",
		slog.String("path", resp.Request.URL.Path),
		slog.Int("status", resp.StatusCode),
		slog.String("body", msg),
	)
	return &APIError{Status: resp.StatusCode, Message: msg}
}
