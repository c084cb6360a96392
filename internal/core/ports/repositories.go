package ports

import (
	"context"
	"time"

	"valvetrace/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AssetRepository defines persistence operations for the asset registry.
// Methods accepting pgx.Tx run inside the per-asset atomic unit; SetOwner
// and SetBurned are only called by the transfer orchestrator and the return
// workflow respectively.
type AssetRepository interface {
	Create(ctx context.Context, asset *domain.Asset) error
	GetBySerial(ctx context.Context, serial string) (*domain.Asset, error)
	GetByTokenID(ctx context.Context, tokenID uuid.UUID) (*domain.Asset, error)
	// GetBySerialForUpdate locks the asset row for the duration of the
	// transaction. This is the serialization point for all mutations of
	// one asset.
	GetBySerialForUpdate(ctx context.Context, tx pgx.Tx, serial string) (*domain.Asset, error)
	SetOwner(ctx context.Context, tx pgx.Tx, tokenID uuid.UUID, ownerID uuid.UUID, ownerClass domain.OwnerClass) error
	SetBurned(ctx context.Context, tx pgx.Tx, tokenID uuid.UUID, burned bool) error
}

// TransferLedger defines the append-only ledger of ownership-change
// attempts. Count methods consider accepted records only and must be read
// under the same transaction as any subsequent write.
type TransferLedger interface {
	Append(ctx context.Context, tx pgx.Tx, record *domain.TransferRecord) error
	CountByCategory(ctx context.Context, tx pgx.Tx, assetID uuid.UUID, category domain.TransferCategory) (int, error)
	CountAcceptedExcludingPlant(ctx context.Context, tx pgx.Tx, assetID uuid.UUID) (int, error)
	// History returns every record for the asset, accepted and rejected,
	// ordered by creation time ascending.
	History(ctx context.Context, assetID uuid.UUID) ([]domain.TransferRecord, error)
}

// ReturnRequestRepository defines persistence for the return workflow.
type ReturnRequestRepository interface {
	Create(ctx context.Context, req *domain.ReturnRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ReturnRequest, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.ReturnRequest, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.ReturnStatus, resolvedBy uuid.UUID) error
	ListByAsset(ctx context.Context, assetID uuid.UUID) ([]domain.ReturnRequest, error)
}

// ActorRepository defines persistence operations for actors.
type ActorRepository interface {
	Create(ctx context.Context, actor *domain.Actor) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Actor, error)
	GetByUsername(ctx context.Context, username string) (*domain.Actor, error)
}

// AuditRepository persists audit log entries.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}

// AssetCache is the Redis-layer read cache for asset snapshots. Mutating
// paths invalidate; readers fall through to the registry on miss.
type AssetCache interface {
	Get(ctx context.Context, serial string) ([]byte, error) // cached snapshot JSON or nil
	Set(ctx context.Context, serial string, value []byte, ttl time.Duration) error
	Invalidate(ctx context.Context, serial string) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
