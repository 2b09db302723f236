package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ratewise/store-ratings-api/internal/core/domain"
)

// AuditRepository appends to the audit_log table.
type AuditRepository struct {
	db *sql.DB
}

func NewAuditRepository(db *sql.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Insert(ctx context.Context, entry *domain.AuditEntry) error {
	const query = `
		INSERT INTO audit_log (action, actor_id, subject, occurred_at)
		VALUES ($1, NULLIF($2, 0), $3, $4)`
	if _, err := r.db.ExecContext(ctx, query,
		entry.Action, entry.ActorID, entry.Subject, entry.Occurred,
	); err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}
