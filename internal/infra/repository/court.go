package repository

import (
	"context"
	"errors"
	"time"

	"court-reserve/internal/domain/court"
	"court-reserve/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CourtRepository struct {
	db infra.DBTX
}

func NewCourtRepository(db infra.DBTX) *CourtRepository {
	return &CourtRepository{db: db}
}

type courtRow struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r *CourtRepository) FindByID(ctx context.Context, id uuid.UUID) (*court.Court, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM courts
		WHERE id = $1
	`

	var row courtRow
	err := r.db.QueryRow(ctx, query, id).Scan(&row.ID, &row.Name, &row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("court not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find court by ID", err)
	}

	return court.Reconstruct(row.ID, row.Name, row.CreatedAt, row.UpdatedAt), nil
}

func (r *CourtRepository) FindAll(ctx context.Context) ([]*court.Court, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM courts
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list courts", err)
	}
	defer rows.Close()

	var result []*court.Court
	for rows.Next() {
		var row courtRow
		if err := rows.Scan(&row.ID, &row.Name, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan court", err)
		}
		result = append(result, court.Reconstruct(row.ID, row.Name, row.CreatedAt, row.UpdatedAt))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate courts", err)
	}

	return result, nil
}

func (r *CourtRepository) Create(ctx context.Context, c *court.Court) error {
	query := `
		INSERT INTO courts (id, name)
		VALUES ($1, $2)
	`

	_, err := r.db.Exec(ctx, query, c.ID(), c.Name())
	if err != nil {
		return infra.WrapRepoErr("failed to create court", err, infra.ClassifyPgError(err))
	}

	return nil
}
