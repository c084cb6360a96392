package postgres

import "context"

// HealthCheck implements ports.HealthChecker against the database pool.
type HealthCheck struct {
	pool Pool
}

// NewHealthCheck creates a database health checker.
func NewHealthCheck(pool Pool) *HealthCheck {
	return &HealthCheck{pool: pool}
}

func (h *HealthCheck) Name() string { return "postgres" }

// Ping verifies database connectivity.
func (h *HealthCheck) Ping(ctx context.Context) error {
	return h.pool.Ping(ctx)
}
