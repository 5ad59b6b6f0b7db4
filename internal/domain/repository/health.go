package repository

import "context"

// HealthChecker reports datastore reachability.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
