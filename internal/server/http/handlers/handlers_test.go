package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/healthboard/internal/domain/errors"
	"github.com/polkiloo/healthboard/internal/domain/model"
	"github.com/polkiloo/healthboard/internal/server/http/dto"
	"github.com/polkiloo/healthboard/internal/server/http/middleware"
	testhelpers "github.com/polkiloo/healthboard/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, path string, handler gin.HandlerFunc, setup func(*gin.Context), body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, path, func(c *gin.Context) {
		if setup != nil {
			setup(c)
		}
		handler(c)
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

var jsonHeaders = map[string]string{"Content-Type": "application/json"}

type loginCounter struct {
	success, failure int
}

func (l *loginCounter) LoginAttempt(success bool) {
	if success {
		l.success++
		return
	}
	l.failure++
}

func errorBody(t *testing.T, resp *httptest.ResponseRecorder) string {
	t.Helper()
	var body dto.ErrorResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body %q: %v", resp.Body.String(), err)
	}
	return body.Error
}

func TestCurrentSession(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if _, ok := CurrentSession(c); ok {
		t.Fatal("expected no session when not set")
	}

	want := testhelpers.FixedSession("analyst")
	c.Set(middleware.SessionContextKey, want)
	got, ok := CurrentSession(c)
	if !ok || got != want {
		t.Fatalf("expected stored session, got %+v", got)
	}

	c.Set(middleware.SessionContextKey, "not a session")
	if _, ok := CurrentSession(c); ok {
		t.Fatal("expected wrong type to be ignored")
	}
}

func TestAuthHandlerLoginSuccess(t *testing.T) {
	username, password := testhelpers.RandomCredentials()
	counter := &loginCounter{}
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{LoginFn: func(_ context.Context, gotUser, gotPass string) (string, error) {
		if gotUser != username || gotPass != password {
			t.Fatalf("unexpected credentials passed to facade: %q %q", gotUser, gotPass)
		}
		return "session-token", nil
	}}, counter)

	body, _ := json.Marshal(dto.LoginRequest{Username: username, Password: password})
	resp := performRequest(t, http.MethodPost, "/login", handler.Login, nil, body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var got dto.LoginResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	want := dto.LoginResponse{Message: "Login successful", Token: "session-token", Username: username}
	if got != want {
		t.Fatalf("unexpected response %+v", got)
	}
	if counter.success != 1 || counter.failure != 0 {
		t.Fatalf("unexpected login counts %+v", counter)
	}
}

func TestAuthHandlerLoginFailures(t *testing.T) {
	tests := []struct {
		name    string
		facade  testhelpers.AuthFacadeStub
		body    []byte
		status  int
		message string
	}{
		{name: "bad json", body: []byte("not json"), status: http.StatusBadRequest, message: "Invalid request body"},
		{name: "empty body", body: []byte(""), status: http.StatusBadRequest, message: "Invalid request body"},
		{name: "invalid credentials", body: []byte(`{"username":"a","password":"b"}`), facade: testhelpers.AuthFacadeStub{LoginFn: func(context.Context, string, string) (string, error) {
			return "", domainErrors.ErrInvalidCredentials
		}}, status: http.StatusUnauthorized, message: "Invalid credentials"},
		{name: "missing fields", body: []byte(`{}`), facade: testhelpers.AuthFacadeStub{LoginFn: func(_ context.Context, u, p string) (string, error) {
			if u != "" || p != "" {
				return "token", nil
			}
			return "", domainErrors.ErrInvalidCredentials
		}}, status: http.StatusUnauthorized, message: "Invalid credentials"},
		{name: "internal", body: []byte(`{"username":"a","password":"b"}`), facade: testhelpers.AuthFacadeStub{LoginFn: func(context.Context, string, string) (string, error) {
			return "", errors.New("boom")
		}}, status: http.StatusInternalServerError, message: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/login", NewAuthHandler(tt.facade, nil).Login, nil, tt.body, jsonHeaders)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
			if msg := errorBody(t, resp); msg != tt.message {
				t.Fatalf("expected message %q, got %q", tt.message, msg)
			}
		})
	}
}

func TestAuthHandlerLoginCountsFailures(t *testing.T) {
	counter := &loginCounter{}
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{LoginFn: func(context.Context, string, string) (string, error) {
		return "", domainErrors.ErrInvalidCredentials
	}}, counter)
	performRequest(t, http.MethodPost, "/login", handler.Login, nil, []byte(`{"username":"a","password":"b"}`), jsonHeaders)
	if counter.failure != 1 || counter.success != 0 {
		t.Fatalf("unexpected login counts %+v", counter)
	}
}

func TestAuthHandlerSession(t *testing.T) {
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{}, nil)

	resp := performRequest(t, http.MethodGet, "/api/session", handler.Session, func(c *gin.Context) {
		c.Set(middleware.SessionContextKey, testhelpers.FixedSession("analyst"))
	}, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var got dto.SessionResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	want := dto.SessionResponse{Username: "analyst", IssuedAt: "2025-01-02T03:04:05Z", ExpiresAt: "2025-01-03T03:04:05Z"}
	if got != want {
		t.Fatalf("unexpected session %+v", got)
	}

	resp = performRequest(t, http.MethodGet, "/api/session", handler.Session, nil, nil, nil)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", resp.Code)
	}
}

func TestChartHandlerSummary(t *testing.T) {
	facade := testhelpers.ChartFacadeStub{PrioritiesFn: func(context.Context) ([]model.Priority, error) {
		return []model.Priority{{Name: "Reduce caregiver burden", Value: 80}, {Name: "Ensure patient safety", Value: 72}}, nil
	}}
	resp := performRequest(t, http.MethodGet, "/api/chart/summary", NewChartHandler(facade).Summary, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	want := `[{"name":"Reduce caregiver burden","value":80},{"name":"Ensure patient safety","value":72}]`
	if resp.Body.String() != want {
		t.Fatalf("unexpected body %s", resp.Body.String())
	}
}

func TestChartHandlerReports(t *testing.T) {
	facade := testhelpers.ChartFacadeStub{MarketSeriesFn: func(context.Context) ([]model.MarketSizePoint, error) {
		return []model.MarketSizePoint{{Year: 2025, Value: 1.97}, {Year: 2026, Value: 2.31}}, nil
	}}
	resp := performRequest(t, http.MethodGet, "/api/chart/reports", NewChartHandler(facade).Reports, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	want := `[{"year":2025,"value":1.97},{"year":2026,"value":2.31}]`
	if resp.Body.String() != want {
		t.Fatalf("unexpected body %s", resp.Body.String())
	}
}

func TestChartHandlerEmptyDatasets(t *testing.T) {
	facade := testhelpers.ChartFacadeStub{
		PrioritiesFn:   func(context.Context) ([]model.Priority, error) { return nil, nil },
		MarketSeriesFn: func(context.Context) ([]model.MarketSizePoint, error) { return nil, nil },
	}
	handler := NewChartHandler(facade)
	for path, fn := range map[string]gin.HandlerFunc{"/summary": handler.Summary, "/reports": handler.Reports} {
		resp := performRequest(t, http.MethodGet, path, fn, nil, nil, nil)
		if resp.Code != http.StatusOK || resp.Body.String() != "[]" {
			t.Fatalf("%s: expected 200 [], got %d %s", path, resp.Code, resp.Body.String())
		}
	}
}

func TestChartHandlerErrors(t *testing.T) {
	dbErr := fmt.Errorf("%w: connection refused", domainErrors.ErrDatastore)
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{name: "datastore", err: dbErr, message: "Database error"},
		{name: "other", err: errors.New("boom"), message: "Internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewChartHandler(testhelpers.ChartFacadeStub{
				PrioritiesFn:   func(context.Context) ([]model.Priority, error) { return nil, tt.err },
				MarketSeriesFn: func(context.Context) ([]model.MarketSizePoint, error) { return nil, tt.err },
			})
			for _, fn := range []gin.HandlerFunc{handler.Summary, handler.Reports} {
				resp := performRequest(t, http.MethodGet, "/", fn, nil, nil, nil)
				if resp.Code != http.StatusInternalServerError {
					t.Fatalf("expected 500, got %d", resp.Code)
				}
				if msg := errorBody(t, resp); msg != tt.message {
					t.Fatalf("expected message %q, got %q", tt.message, msg)
				}
			}
		})
	}
}

func TestHealthHandler(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/healthz", NewHealthHandler(testhelpers.HealthFacadeStub{}).Health, nil, nil, nil)
	if resp.Code != http.StatusOK || resp.Body.String() != `{"status":"ok"}` {
		t.Fatalf("unexpected healthy response %d %s", resp.Code, resp.Body.String())
	}

	down := testhelpers.HealthFacadeStub{CheckFn: func(context.Context) error { return errors.New("ping failed") }}
	resp = performRequest(t, http.MethodGet, "/healthz", NewHealthHandler(down).Health, nil, nil, nil)
	if resp.Code != http.StatusServiceUnavailable || resp.Body.String() != `{"status":"unavailable"}` {
		t.Fatalf("unexpected unhealthy response %d %s", resp.Code, resp.Body.String())
	}
}
