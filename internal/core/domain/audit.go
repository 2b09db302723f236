package domain

import "time"

// AuditAction identifies what happened; the closed set keeps the audit log
// queryable.
type AuditAction string

const (
	AuditLogin          AuditAction = "login"
	AuditLoginFailed    AuditAction = "login_failed"
	AuditRegister       AuditAction = "register"
	AuditPasswordChange AuditAction = "password_change"
	AuditRatingCreated  AuditAction = "rating_submitted"
	AuditStoreCreated   AuditAction = "store_created"
	AuditStoreDeleted   AuditAction = "store_deleted"
	AuditUserDeleted    AuditAction = "user_deleted"
)

// AuditEntry records one security-relevant action. Entries are written off
// the request path; losing one is logged but never fails the request.
type AuditEntry struct {
	ID       int64       `json:"id"`
	Action   AuditAction `json:"action"`
	ActorID  int64       `json:"actor_id"`
	Subject  string      `json:"subject,omitempty"`
	Occurred time.Time   `json:"occurred_at"`
}
