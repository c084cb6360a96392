package postgres

import (
	"context"
	"errors"
	"fmt"

	"valvetrace/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ReturnRepo implements ports.ReturnRequestRepository.
type ReturnRepo struct {
	pool Pool
}

// NewReturnRepo creates a new ReturnRepo.
func NewReturnRepo(pool Pool) *ReturnRepo {
	return &ReturnRepo{pool: pool}
}

const returnColumns = `id, asset_id, requested_by, requested_by_class, return_type, reason, fee, status, resolved_by, created_at, resolved_at`

// Create inserts a new return request.
func (r *ReturnRepo) Create(ctx context.Context, req *domain.ReturnRequest) error {
	query := `INSERT INTO return_requests (id, asset_id, requested_by, requested_by_class, return_type, reason, fee, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		req.ID, req.AssetID, req.RequestedBy, req.RequestedByClass,
		req.ReturnType, req.Reason, req.Fee, req.Status, req.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert return request: %w", err)
	}
	return nil
}

// GetByID fetches a return request (without locking).
func (r *ReturnRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ReturnRequest, error) {
	query := `SELECT ` + returnColumns + ` FROM return_requests WHERE id = $1`
	return scanReturnRequest(r.pool.QueryRow(ctx, query, id))
}

// GetByIDForUpdate fetches a return request with pessimistic locking, so
// concurrent admin decisions on the same request serialize.
func (r *ReturnRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.ReturnRequest, error) {
	query := `SELECT ` + returnColumns + ` FROM return_requests WHERE id = $1 FOR UPDATE`
	return scanReturnRequest(tx.QueryRow(ctx, query, id))
}

// UpdateStatus resolves a request within a database transaction.
func (r *ReturnRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.ReturnStatus, resolvedBy uuid.UUID) error {
	query := `UPDATE return_requests SET status = $1, resolved_by = $2, resolved_at = NOW() WHERE id = $3`

	tag, err := tx.Exec(ctx, query, status, resolvedBy, id)
	if err != nil {
		return fmt.Errorf("update return request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("return request not found: %s", id)
	}
	return nil
}

// ListByAsset fetches all return requests for an asset, newest first.
func (r *ReturnRepo) ListByAsset(ctx context.Context, assetID uuid.UUID) ([]domain.ReturnRequest, error) {
	query := `SELECT ` + returnColumns + ` FROM return_requests WHERE asset_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, assetID)
	if err != nil {
		return nil, fmt.Errorf("query return requests: %w", err)
	}
	defer rows.Close()

	var requests []domain.ReturnRequest
	for rows.Next() {
		req := domain.ReturnRequest{}
		err := rows.Scan(
			&req.ID, &req.AssetID, &req.RequestedBy, &req.RequestedByClass,
			&req.ReturnType, &req.Reason, &req.Fee, &req.Status,
			&req.ResolvedBy, &req.CreatedAt, &req.ResolvedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan return request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate return requests: %w", err)
	}
	return requests, nil
}

func scanReturnRequest(row pgx.Row) (*domain.ReturnRequest, error) {
	req := &domain.ReturnRequest{}
	err := row.Scan(
		&req.ID, &req.AssetID, &req.RequestedBy, &req.RequestedByClass,
		&req.ReturnType, &req.Reason, &req.Fee, &req.Status,
		&req.ResolvedBy, &req.CreatedAt, &req.ResolvedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan return request: %w", err)
	}
	return req, nil
}
