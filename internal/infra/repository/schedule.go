package repository

import (
	"context"
	"errors"
	"time"

	"court-reserve/internal/domain/schedule"
	"court-reserve/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ScheduleRepository struct {
	db infra.DBTX
}

func NewScheduleRepository(db infra.DBTX) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

type scheduleRow struct {
	ID        uuid.UUID
	CourtID   uuid.UUID
	StartTime time.Time
	EndTime   time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r *ScheduleRepository) FindByID(ctx context.Context, id uuid.UUID) (*schedule.Schedule, error) {
	query := `
		SELECT id, court_id, start_time, end_time, created_at, updated_at
		FROM schedules
		WHERE id = $1
	`

	var row scheduleRow
	err := r.db.QueryRow(ctx, query, id).Scan(
		&row.ID,
		&row.CourtID,
		&row.StartTime,
		&row.EndTime,
		&row.CreatedAt,
		&row.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("schedule not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find schedule by ID", err)
	}

	return toScheduleEntity(row), nil
}

func (r *ScheduleRepository) FindByCourtID(ctx context.Context, courtID uuid.UUID) ([]*schedule.Schedule, error) {
	query := `
		SELECT id, court_id, start_time, end_time, created_at, updated_at
		FROM schedules
		WHERE court_id = $1
		ORDER BY start_time
	`

	rows, err := r.db.Query(ctx, query, courtID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list schedules by court", err)
	}
	defer rows.Close()

	var result []*schedule.Schedule
	for rows.Next() {
		var row scheduleRow
		if err := rows.Scan(
			&row.ID,
			&row.CourtID,
			&row.StartTime,
			&row.EndTime,
			&row.CreatedAt,
			&row.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan schedule", err)
		}
		result = append(result, toScheduleEntity(row))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate schedules", err)
	}

	return result, nil
}

func (r *ScheduleRepository) Create(ctx context.Context, s *schedule.Schedule) error {
	query := `
		INSERT INTO schedules (id, court_id, start_time, end_time)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query, s.ID(), s.CourtID(), s.StartTime(), s.EndTime())
	if err != nil {
		return infra.WrapRepoErr("failed to create schedule", err, infra.ClassifyPgError(err))
	}

	return nil
}

func toScheduleEntity(row scheduleRow) *schedule.Schedule {
	return schedule.Reconstruct(row.ID, row.CourtID, row.StartTime, row.EndTime, row.CreatedAt, row.UpdatedAt)
}
