package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/polkiloo/healthboard/internal/domain/model"
)

// LoginFailureMessage is the only login failure shown to the user.
const LoginFailureMessage = "Invalid credentials"

// ErrLoginFailed hides the cause of a failed login.
var ErrLoginFailed = errors.New("invalid credentials")

// View is an opened route with whatever data it fetched.
type View struct {
	Route        Route
	Priorities   []model.Priority
	MarketSeries []model.MarketSizePoint
}

// Dashboard drives views over the API and the session store.
type Dashboard struct {
	api    API
	store  SessionStore
	logger *slog.Logger
}

// NewDashboard wires a dashboard client.
func NewDashboard(api API, store SessionStore, logger *slog.Logger) *Dashboard {
	return &Dashboard{api: api, store: store, logger: logger}
}

// Login obtains a token and stores it.
func (d *Dashboard) Login(ctx context.Context, username, password string) error {
	token, err := d.api.Login(ctx, username, password)
	if err != nil {
		d.logger.Warn("login failed", slog.String("username", username), slog.Any("error", err))
		return ErrLoginFailed
	}
	if err := d.store.Save(token); err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	return nil
}

// Logout discards the stored token.
func (d *Dashboard) Logout() error {
	return d.store.Clear()
}

// HasToken reports whether a token is stored.
func (d *Dashboard) HasToken() bool {
	return HasStoredToken(d.store)
}

// IsAuthenticated asks the server whether the stored token is still accepted.
func (d *Dashboard) IsAuthenticated(ctx context.Context) (*model.Session, bool) {
	token, err := d.store.Load()
	if err != nil || token == "" {
		return nil, false
	}
	session, err := d.api.Session(ctx, token)
	if err != nil {
		d.logger.Debug("session rejected", slog.Any("error", err))
		return nil, false
	}
	return session, true
}

// Open resolves the route and fetches its data once.
// Fetch failures are logged and leave the view empty.
func (d *Dashboard) Open(ctx context.Context, route Route) (View, error) {
	token, err := d.store.Load()
	if err != nil {
		return View{}, err
	}

	view := View{Route: Resolve(token != "", route)}

	switch view.Route {
	case RouteSummary:
		items, err := d.api.Priorities(ctx, token)
		if err != nil {
			d.logger.Error("fetch summary data", slog.Any("error", err))
			break
		}
		view.Priorities = items
	case RouteReports:
		points, err := d.api.MarketSeries(ctx, token)
		if err != nil {
			d.logger.Error("fetch reports data", slog.Any("error", err))
			break
		}
		view.MarketSeries = points
	}

	return view, nil
}
