package repository

import (
	"context"
	"errors"
	"time"

	"court-reserve/internal/domain/guest"
	"court-reserve/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type GuestRepository struct {
	db infra.DBTX
}

func NewGuestRepository(db infra.DBTX) *GuestRepository {
	return &GuestRepository{db: db}
}

type guestRow struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r *GuestRepository) FindByID(ctx context.Context, id uuid.UUID) (*guest.Guest, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM guests
		WHERE id = $1
	`

	var row guestRow
	err := r.db.QueryRow(ctx, query, id).Scan(&row.ID, &row.Name, &row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("guest not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find guest by ID", err)
	}

	return guest.Reconstruct(row.ID, row.Name, row.CreatedAt, row.UpdatedAt), nil
}

// FindByName matches case-insensitively on a partial name, the way the
// front desk searches for a returning guest.
func (r *GuestRepository) FindByName(ctx context.Context, name string) ([]*guest.Guest, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM guests
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query, name)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search guests by name", err)
	}
	defer rows.Close()

	return scanGuests(rows)
}

func (r *GuestRepository) FindAll(ctx context.Context) ([]*guest.Guest, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM guests
		ORDER BY created_at, id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list guests", err)
	}
	defer rows.Close()

	return scanGuests(rows)
}

func (r *GuestRepository) Create(ctx context.Context, g *guest.Guest) error {
	query := `
		INSERT INTO guests (id, name)
		VALUES ($1, $2)
	`

	_, err := r.db.Exec(ctx, query, g.ID(), g.Name())
	if err != nil {
		return infra.WrapRepoErr("failed to create guest", err, infra.ClassifyPgError(err))
	}

	return nil
}

func (r *GuestRepository) Update(ctx context.Context, g *guest.Guest) error {
	query := `
		UPDATE guests
		SET name = $2, updated_at = now()
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query, g.ID(), g.Name())
	if err != nil {
		return infra.WrapRepoErr("failed to update guest", err, infra.ClassifyPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("guest not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *GuestRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM guests WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete guest", err, infra.ClassifyPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("guest not found", nil, infra.KindNotFound)
	}

	return nil
}

func scanGuests(rows pgx.Rows) ([]*guest.Guest, error) {
	var result []*guest.Guest
	for rows.Next() {
		var row guestRow
		if err := rows.Scan(&row.ID, &row.Name, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan guest", err)
		}
		result = append(result, guest.Reconstruct(row.ID, row.Name, row.CreatedAt, row.UpdatedAt))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate guests", err)
	}
	return result, nil
}
