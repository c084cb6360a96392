package postgres

import (
	"context"
	"errors"
	"fmt"

	"valvetrace/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ActorRepo implements ports.ActorRepository.
type ActorRepo struct {
	pool Pool
}

// NewActorRepo creates a new ActorRepo.
func NewActorRepo(pool Pool) *ActorRepo {
	return &ActorRepo{pool: pool}
}

const actorColumns = `id, username, password_hash, display_name, class, status, created_at, updated_at`

// Create inserts a new actor.
func (r *ActorRepo) Create(ctx context.Context, a *domain.Actor) error {
	query := `INSERT INTO actors (id, username, password_hash, display_name, class, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		a.ID, a.Username, a.PasswordHash, a.DisplayName,
		a.Class, a.Status, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert actor: %w", err)
	}
	return nil
}

// GetByID fetches an actor by UUID.
func (r *ActorRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Actor, error) {
	query := `SELECT ` + actorColumns + ` FROM actors WHERE id = $1`
	return scanActor(r.pool.QueryRow(ctx, query, id))
}

// GetByUsername fetches an actor by username.
func (r *ActorRepo) GetByUsername(ctx context.Context, username string) (*domain.Actor, error) {
	query := `SELECT ` + actorColumns + ` FROM actors WHERE username = $1`
	return scanActor(r.pool.QueryRow(ctx, query, username))
}

func scanActor(row pgx.Row) (*domain.Actor, error) {
	a := &domain.Actor{}
	err := row.Scan(
		&a.ID, &a.Username, &a.PasswordHash, &a.DisplayName,
		&a.Class, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan actor: %w", err)
	}
	return a, nil
}
