package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionTokenize       AuditAction = "TOKENIZE"
	AuditActionTransfer       AuditAction = "TRANSFER"
	AuditActionReturnRequest  AuditAction = "RETURN_REQUEST"
	AuditActionReturnDecision AuditAction = "RETURN_DECISION"
	AuditActionBurn           AuditAction = "BURN"
	AuditActionRestore        AuditAction = "RESTORE"
	AuditActionRegister       AuditAction = "REGISTER"
	AuditActionLogin          AuditAction = "LOGIN"
)

// AuditLog records a single audited action. This is the operational audit
// sink, separate from the transfer ledger: the ledger is authoritative for
// quota counting, the audit log is for system-wide observability.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	ActorID      *uuid.UUID  `json:"actor_id,omitempty"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
