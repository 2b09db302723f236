package ports

import (
	"context"

	"github.com/ratewise/store-ratings-api/internal/core/domain"
)

// AuditRepository appends entries to the durable audit trail.
type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.AuditEntry) error
}

// AuditRecorder enqueues an entry for asynchronous persistence. Record never
// blocks the request path beyond channel capacity and never fails it.
type AuditRecorder interface {
	Record(entry domain.AuditEntry)
}

// AuditService processes enqueued entries.
type AuditService interface {
	Process(ctx context.Context, entry domain.AuditEntry) error
}
