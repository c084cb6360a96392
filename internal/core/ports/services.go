package ports

import (
	"context"
	"time"

	"valvetrace/internal/core/domain"

	"github.com/google/uuid"
)

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// SignatureService handles HMAC-SHA256 signing and verification, used to
// sign operation descriptors sent to the confirmation oracle.
type SignatureService interface {
	Sign(secretKey string, payload string) string
	Verify(secretKey string, payload string, signature string) bool
}

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(actorID uuid.UUID, class domain.ActorClass) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	ActorID uuid.UUID
	Class   domain.ActorClass
}

// OperationDescriptor summarizes a committed core operation for the
// confirmation oracle.
type OperationDescriptor struct {
	Operation    string     `json:"operation"` // TRANSFER, BURN, RESTORE, TOKENIZE
	AssetID      uuid.UUID  `json:"asset_id"`
	SerialNumber string     `json:"serial_number"`
	RecordID     *uuid.UUID `json:"record_id,omitempty"`
	ToOwnerID    *uuid.UUID `json:"to_owner_id,omitempty"`
	Timestamp    int64      `json:"timestamp"`
}

// ConfirmationOracle is the external chain layer that attests to an
// operation after local commit. Advisory only: a failure here never rolls
// back local state, and retry policy belongs to the caller.
type ConfirmationOracle interface {
	Confirm(ctx context.Context, op OperationDescriptor) (string, error)
}

// --- Service Ports (Business Logic) ---

// RegistryService covers tokenization and read access to assets.
type RegistryService interface {
	Tokenize(ctx context.Context, req TokenizeRequest) (*domain.Asset, error)
	GetAsset(ctx context.Context, serial string) (*domain.Asset, error)
	History(ctx context.Context, serial string) ([]domain.TransferRecord, error)
}

// TokenizeRequest holds validated input for asset tokenization.
type TokenizeRequest struct {
	SerialNumber   string
	ManufacturerID uuid.UUID
}

// TransferService is the transfer orchestrator.
type TransferService interface {
	AttemptTransfer(ctx context.Context, serial string, proposal domain.TransferProposal) (*TransferResult, error)
}

// TransferResult is the outcome of an accepted transfer. Local state is
// authoritative; ChainError is set when the post-commit oracle call failed,
// leaving external confirmation pending.
type TransferResult struct {
	Record              *domain.TransferRecord
	Asset               *domain.Asset
	ChainConfirmationID string
	ChainError          string
}

// ReturnService is the administrative return / burn / restore workflow.
type ReturnService interface {
	CreateReturnRequest(ctx context.Context, req CreateReturnRequest) (*domain.ReturnRequest, error)
	ApproveReturn(ctx context.Context, requestID uuid.UUID, adminID uuid.UUID, decision domain.ReturnStatus) (*domain.ReturnRequest, error)
	ListReturns(ctx context.Context, serial string) ([]domain.ReturnRequest, error)
	Burn(ctx context.Context, serial string, adminID uuid.UUID, reason string) (*domain.Asset, error)
	Restore(ctx context.Context, serial string, adminID uuid.UUID, newOwnerID uuid.UUID, newOwnerClass domain.OwnerClass, reason string) (*domain.Asset, error)
}

// CreateReturnRequest holds validated input for opening a return request.
type CreateReturnRequest struct {
	Serial           string
	RequestedBy      uuid.UUID
	RequestedByClass domain.ActorClass
	ReturnType       domain.ReturnType
	Reason           string
	Fee              int64
}

// AuthService defines authentication business logic.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*domain.Actor, error)
	Login(ctx context.Context, username, password string) (string, time.Time, error) // token, expiry, error
}

// RegisterRequest holds input for actor registration.
type RegisterRequest struct {
	Username    string
	Password    string
	DisplayName string
	Class       domain.ActorClass
}

// AuditService forwards operation summaries to the audit sink.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}
