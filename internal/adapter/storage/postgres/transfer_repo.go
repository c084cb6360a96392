package postgres

import (
	"context"
	"fmt"

	"valvetrace/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TransferRepo implements ports.TransferLedger. Records are append-only;
// there is no update or delete path, and quota counts are always computed
// from the rows rather than cached.
type TransferRepo struct {
	pool Pool
}

// NewTransferRepo creates a new TransferRepo.
func NewTransferRepo(pool Pool) *TransferRepo {
	return &TransferRepo{pool: pool}
}

// Append durably stores one transfer record within a database transaction.
func (r *TransferRepo) Append(ctx context.Context, tx pgx.Tx, t *domain.TransferRecord) error {
	query := `INSERT INTO transfer_records (id, asset_id, from_owner_id, from_owner_class, to_owner_id, to_owner_class,
		category, accepted, reason_code, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := tx.Exec(ctx, query,
		t.ID, t.AssetID, t.FromOwnerID, t.FromOwnerClass,
		t.ToOwnerID, t.ToOwnerClass, t.Category, t.Accepted,
		t.ReasonCode, t.Note, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transfer record: %w", err)
	}
	return nil
}

// CountByCategory counts accepted records of one category for an asset.
// Runs under the caller's transaction so the count and the subsequent
// write see the same snapshot.
func (r *TransferRepo) CountByCategory(ctx context.Context, tx pgx.Tx, assetID uuid.UUID, category domain.TransferCategory) (int, error) {
	query := `SELECT COUNT(*) FROM transfer_records WHERE asset_id = $1 AND category = $2 AND accepted = TRUE`

	var count int
	if err := tx.QueryRow(ctx, query, assetID, category).Scan(&count); err != nil {
		return 0, fmt.Errorf("count transfers by category: %w", err)
	}
	return count, nil
}

// CountAcceptedExcludingPlant counts all accepted transfer records for an
// asset except TO_PLANT installations, for the global cap.
func (r *TransferRepo) CountAcceptedExcludingPlant(ctx context.Context, tx pgx.Tx, assetID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM transfer_records
		WHERE asset_id = $1 AND accepted = TRUE
		AND category IN ($2, $3)`

	var count int
	err := tx.QueryRow(ctx, query, assetID,
		domain.CategoryManufacturerToDistributor, domain.CategoryDistributorToDistributor,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count accepted transfers: %w", err)
	}
	return count, nil
}

// History fetches every record for an asset, accepted and rejected,
// ordered by creation time ascending.
func (r *TransferRepo) History(ctx context.Context, assetID uuid.UUID) ([]domain.TransferRecord, error) {
	query := `SELECT id, asset_id, from_owner_id, from_owner_class, to_owner_id, to_owner_class,
		category, accepted, reason_code, note, created_at
		FROM transfer_records WHERE asset_id = $1 ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, assetID)
	if err != nil {
		return nil, fmt.Errorf("query transfer history: %w", err)
	}
	defer rows.Close()

	var records []domain.TransferRecord
	for rows.Next() {
		t := domain.TransferRecord{}
		err := rows.Scan(
			&t.ID, &t.AssetID, &t.FromOwnerID, &t.FromOwnerClass,
			&t.ToOwnerID, &t.ToOwnerClass, &t.Category, &t.Accepted,
			&t.ReasonCode, &t.Note, &t.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan transfer record: %w", err)
		}
		records = append(records, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transfer records: %w", err)
	}
	return records, nil
}
