package client

import "fmt"

// Route identifies a client view.
type Route string

const (
	RouteLogin     Route = "/"
	RouteDashboard Route = "/dashboard"
	RouteSummary   Route = "/summary"
	RouteReports   Route = "/reports"
)

// ParseRoute maps a path or a bare view name onto a known route.
func ParseRoute(raw string) (Route, error) {
	switch raw {
	case "", "/", "login":
		return RouteLogin, nil
	case "/dashboard", "dashboard":
		return RouteDashboard, nil
	case "/summary", "summary":
		return RouteSummary, nil
	case "/reports", "reports":
		return RouteReports, nil
	default:
		return "", fmt.Errorf("unknown route %q", raw)
	}
}

// Guard sends visitors without a token to the login view.
func Guard(hasToken bool, route Route) Route {
	if !hasToken {
		return RouteLogin
	}
	return route
}

// Resolve applies Guard and skips the login view once a token exists.
func Resolve(hasToken bool, route Route) Route {
	if hasToken && route == RouteLogin {
		return RouteDashboard
	}
	return Guard(hasToken, route)
}

// ResolvePath parses raw and applies Resolve. Without a token every path,
// known or not, leads to the login view.
func ResolvePath(hasToken bool, raw string) (Route, error) {
	route, err := ParseRoute(raw)
	if err != nil {
		if !hasToken {
			return RouteLogin, nil
		}
		return "", err
	}
	return Resolve(hasToken, route), nil
}

// HasStoredToken reports token presence only. It never checks validity.
func HasStoredToken(store SessionStore) bool {
	token, err := store.Load()
	return err == nil && token != ""
}
