package domain

import (
	"time"

	"github.com/google/uuid"
)

// ActorClass is the role of an authenticated caller. Owner classes are a
// subset: an admin may drive the return workflow but can never hold custody.
type ActorClass string

const (
	ActorClassManufacturer ActorClass = "MANUFACTURER"
	ActorClassDistributor  ActorClass = "DISTRIBUTOR"
	ActorClassPlant        ActorClass = "PLANT"
	ActorClassAdmin        ActorClass = "ADMIN"
)

// ValidActorClass reports whether s is a known actor class.
func ValidActorClass(s string) bool {
	switch ActorClass(s) {
	case ActorClassManufacturer, ActorClassDistributor, ActorClassPlant, ActorClassAdmin:
		return true
	}
	return false
}

// CanRequestReturn reports whether this class may open a return request.
// Plants cannot: an installed unit leaves the chain through the admin side.
func (c ActorClass) CanRequestReturn() bool {
	return c == ActorClassManufacturer || c == ActorClassDistributor || c == ActorClassAdmin
}

// ActorStatus is the account state of an actor.
type ActorStatus string

const (
	ActorStatusActive    ActorStatus = "ACTIVE"
	ActorStatusSuspended ActorStatus = "SUSPENDED"
)

// Actor is an authenticated participant in the custody chain.
type Actor struct {
	ID           uuid.UUID   `json:"id"`
	Username     string      `json:"username"`
	PasswordHash string      `json:"-"`
	DisplayName  string      `json:"display_name"`
	Class        ActorClass  `json:"class"`
	Status       ActorStatus `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// IsActive returns true if the actor may call the API.
func (a *Actor) IsActive() bool {
	return a.Status == ActorStatusActive
}
