package domain

import (
	"time"

	"github.com/google/uuid"
)

// OwnerClass is the category of an asset's current custodian.
type OwnerClass string

const (
	OwnerClassManufacturer OwnerClass = "MANUFACTURER"
	OwnerClassDistributor  OwnerClass = "DISTRIBUTOR"
	OwnerClassPlant        OwnerClass = "PLANT"
)

// ValidOwnerClass reports whether s is a known owner class.
func ValidOwnerClass(s string) bool {
	switch OwnerClass(s) {
	case OwnerClassManufacturer, OwnerClassDistributor, OwnerClassPlant:
		return true
	}
	return false
}

// Asset is one tokenized physical valve unit. The serial number is the
// external identity; the token ID is generated at tokenization and never
// changes. Owner fields are mutated only by the transfer orchestrator and
// the return workflow, always inside a database transaction.
type Asset struct {
	TokenID           uuid.UUID  `json:"token_id"`
	SerialNumber      string     `json:"serial_number"`
	CurrentOwnerID    uuid.UUID  `json:"current_owner_id"`
	CurrentOwnerClass OwnerClass `json:"current_owner_class"`
	Burned            bool       `json:"burned"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// IsInstalled returns true once the asset is plant-owned. Plant ownership
// is absolute: no transfer of any category may follow it.
func (a *Asset) IsInstalled() bool {
	return a.CurrentOwnerClass == OwnerClassPlant
}
