package postgres

import (
	"context"
	"errors"
	"fmt"

	"valvetrace/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AssetRepo implements ports.AssetRepository.
type AssetRepo struct {
	pool Pool
}

// NewAssetRepo creates a new AssetRepo.
func NewAssetRepo(pool Pool) *AssetRepo {
	return &AssetRepo{pool: pool}
}

const assetColumns = `token_id, serial_number, current_owner_id, current_owner_class, burned, created_at, updated_at`

// Create inserts a new asset. The unique index on serial_number rejects
// serial reuse even under concurrent tokenization.
func (r *AssetRepo) Create(ctx context.Context, a *domain.Asset) error {
	query := `INSERT INTO assets (token_id, serial_number, current_owner_id, current_owner_class, burned, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		a.TokenID, a.SerialNumber, a.CurrentOwnerID, a.CurrentOwnerClass,
		a.Burned, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert asset: %w", err)
	}
	return nil
}

// GetBySerial fetches an asset by serial number (without locking).
func (r *AssetRepo) GetBySerial(ctx context.Context, serial string) (*domain.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE serial_number = $1`
	return scanAsset(r.pool.QueryRow(ctx, query, serial))
}

// GetByTokenID fetches an asset by its token UUID (without locking).
func (r *AssetRepo) GetByTokenID(ctx context.Context, tokenID uuid.UUID) (*domain.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE token_id = $1`
	return scanAsset(r.pool.QueryRow(ctx, query, tokenID))
}

// GetBySerialForUpdate fetches an asset with pessimistic locking.
// This MUST be called within a transaction; the row lock serializes all
// mutations of the asset until commit.
func (r *AssetRepo) GetBySerialForUpdate(ctx context.Context, tx pgx.Tx, serial string) (*domain.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE serial_number = $1 FOR UPDATE`
	return scanAsset(tx.QueryRow(ctx, query, serial))
}

// SetOwner mutates the owner fields within a database transaction.
func (r *AssetRepo) SetOwner(ctx context.Context, tx pgx.Tx, tokenID uuid.UUID, ownerID uuid.UUID, ownerClass domain.OwnerClass) error {
	query := `UPDATE assets SET current_owner_id = $1, current_owner_class = $2, updated_at = NOW() WHERE token_id = $3`

	tag, err := tx.Exec(ctx, query, ownerID, ownerClass, tokenID)
	if err != nil {
		return fmt.Errorf("update asset owner: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("asset not found: %s", tokenID)
	}
	return nil
}

// SetBurned mutates the terminal flag within a database transaction.
func (r *AssetRepo) SetBurned(ctx context.Context, tx pgx.Tx, tokenID uuid.UUID, burned bool) error {
	query := `UPDATE assets SET burned = $1, updated_at = NOW() WHERE token_id = $2`

	tag, err := tx.Exec(ctx, query, burned, tokenID)
	if err != nil {
		return fmt.Errorf("update asset burned flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("asset not found: %s", tokenID)
	}
	return nil
}

// scanAsset is a helper to scan a single row into an Asset.
func scanAsset(row pgx.Row) (*domain.Asset, error) {
	a := &domain.Asset{}
	err := row.Scan(
		&a.TokenID, &a.SerialNumber, &a.CurrentOwnerID, &a.CurrentOwnerClass,
		&a.Burned, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan asset: %w", err)
	}
	return a, nil
}
