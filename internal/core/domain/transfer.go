package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransferCategory is the type of ownership move being attempted.
type TransferCategory string

const (
	CategoryManufacturerToDistributor TransferCategory = "MANUFACTURER_TO_DISTRIBUTOR"
	CategoryDistributorToDistributor  TransferCategory = "DISTRIBUTOR_TO_DISTRIBUTOR"
	CategoryToPlant                   TransferCategory = "TO_PLANT"
	CategoryBurnOverride              TransferCategory = "BURN_OVERRIDE"
	CategoryRestoreOverride           TransferCategory = "RESTORE_OVERRIDE"
)

// ValidTransferCategory reports whether s is a category a caller may request.
// Override categories are reserved for the return workflow and are not
// accepted on the transfer path.
func ValidTransferCategory(s string) bool {
	switch TransferCategory(s) {
	case CategoryManufacturerToDistributor, CategoryDistributorToDistributor, CategoryToPlant:
		return true
	}
	return false
}

// TransferRecord is one append-only ledger entry: a single ownership-change
// attempt, accepted or rejected. Records are never updated or deleted; the
// ledger is the sole source of truth for quota counting.
type TransferRecord struct {
	ID             uuid.UUID        `json:"id"`
	AssetID        uuid.UUID        `json:"asset_id"`
	FromOwnerID    uuid.UUID        `json:"from_owner_id"`
	FromOwnerClass OwnerClass       `json:"from_owner_class"`
	ToOwnerID      uuid.UUID        `json:"to_owner_id"`
	ToOwnerClass   OwnerClass       `json:"to_owner_class"`
	Category       TransferCategory `json:"category"`
	Accepted       bool             `json:"accepted"`
	ReasonCode     string           `json:"reason_code,omitempty"` // denial code, or descriptive note key on acceptance
	Note           string           `json:"note,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
}

// TransferProposal is a caller's declared intent to move an asset. The
// declared from-owner is checked against the registry inside the atomic
// unit; a mismatch is a denial, not a validation error.
type TransferProposal struct {
	FromOwnerID  uuid.UUID
	ToOwnerID    uuid.UUID
	ToOwnerClass OwnerClass
	Category     TransferCategory
	Note         string
}
