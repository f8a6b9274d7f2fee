package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jsamuelsen11/project-tracker/internal/ports"
)

var _ ports.HealthChecker = (*HealthChecker)(nil)

// HealthChecker reports whether the database answers a ping.
type HealthChecker struct {
	db *sql.DB
}

// NewHealthChecker creates a HealthChecker for db.
func NewHealthChecker(db *sql.DB) *HealthChecker {
	return &HealthChecker{db: db}
}

// Name implements ports.HealthChecker.
func (h *HealthChecker) Name() string { return "sqlite" }

// HealthCheck implements ports.HealthChecker.
func (h *HealthChecker) HealthCheck(ctx context.Context) error {
	if err := h.db.PingContext(ctx); err != nil {
		return fmt.Errorf("pinging sqlite: %w", err)
	}
	return nil
}
