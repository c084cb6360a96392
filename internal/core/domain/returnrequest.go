package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReturnType classifies why a unit is being sent back.
type ReturnType string

const (
	ReturnTypeDamaged       ReturnType = "damaged"
	ReturnTypeNotOperable   ReturnType = "not_operable"
	ReturnTypeCustom        ReturnType = "custom"
	ReturnTypeNotResellable ReturnType = "not_resellable"
	ReturnTypeResellable    ReturnType = "resellable"
)

// ValidReturnType reports whether s is a known return type.
func ValidReturnType(s string) bool {
	switch ReturnType(s) {
	case ReturnTypeDamaged, ReturnTypeNotOperable, ReturnTypeCustom,
		ReturnTypeNotResellable, ReturnTypeResellable:
		return true
	}
	return false
}

// ReturnStatus is the workflow state of a return request.
type ReturnStatus string

const (
	ReturnStatusPending            ReturnStatus = "PENDING"
	ReturnStatusApprovedForBurn    ReturnStatus = "APPROVED_FOR_BURN"
	ReturnStatusApprovedForRestore ReturnStatus = "APPROVED_FOR_RESTORE"
	ReturnStatusRejected           ReturnStatus = "REJECTED"
)

// ReturnRequest bridges a return intent and the terminal burn / restore
// action. Only a PENDING request may be resolved, and resolution is
// admin-only.
type ReturnRequest struct {
	ID               uuid.UUID    `json:"id"`
	AssetID          uuid.UUID    `json:"asset_id"`
	RequestedBy      uuid.UUID    `json:"requested_by"`
	RequestedByClass ActorClass   `json:"requested_by_class"`
	ReturnType       ReturnType   `json:"return_type"`
	Reason           string       `json:"reason"`
	Fee              int64        `json:"fee"` // smallest currency unit
	Status           ReturnStatus `json:"status"`
	ResolvedBy       *uuid.UUID   `json:"resolved_by,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
	ResolvedAt       *time.Time   `json:"resolved_at,omitempty"`
}

// IsPending returns true if the request is still open for an admin decision.
func (r *ReturnRequest) IsPending() bool {
	return r.Status == ReturnStatusPending
}
