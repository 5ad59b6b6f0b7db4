package usecase

import (
	"context"
	"time"

	"github.com/polkiloo/healthboard/internal/domain/repository"
)

// HealthTimeout bounds a single datastore probe.
const HealthTimeout = 2 * time.Second

// HealthUseCase reports datastore reachability.
type HealthUseCase struct {
	checker repository.HealthChecker
}

// NewHealthUseCase constructs HealthUseCase.
func NewHealthUseCase(checker repository.HealthChecker) *HealthUseCase {
	return &HealthUseCase{checker: checker}
}

// Check pings the datastore within HealthTimeout.
func (u *HealthUseCase) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, HealthTimeout)
	defer cancel()
	return u.checker.HealthCheck(ctx)
}
