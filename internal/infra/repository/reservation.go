package repository

import (
	"context"
	"errors"
	"time"

	"court-reserve/internal/domain/reservation"
	"court-reserve/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReservationRepository struct {
	db infra.DBTX
}

func NewReservationRepository(db infra.DBTX) *ReservationRepository {
	return &ReservationRepository{db: db}
}

type reservationRow struct {
	ID          uuid.UUID
	GuestID     uuid.UUID
	ScheduleID  uuid.UUID
	ValueCents  int64
	RefundCents int64
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	query := `
		SELECT id, guest_id, schedule_id, value_cents, refund_cents, status, created_at, updated_at
		FROM reservations
		WHERE id = $1
	`

	var row reservationRow
	err := r.db.QueryRow(ctx, query, id).Scan(
		&row.ID,
		&row.GuestID,
		&row.ScheduleID,
		&row.ValueCents,
		&row.RefundCents,
		&row.Status,
		&row.CreatedAt,
		&row.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return toReservationEntity(row)
}

func (r *ReservationRepository) FindAll(ctx context.Context) ([]*reservation.Reservation, error) {
	query := `
		SELECT id, guest_id, schedule_id, value_cents, refund_cents, status, created_at, updated_at
		FROM reservations
		ORDER BY created_at, id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var result []*reservation.Reservation
	for rows.Next() {
		var row reservationRow
		if err := rows.Scan(
			&row.ID,
			&row.GuestID,
			&row.ScheduleID,
			&row.ValueCents,
			&row.RefundCents,
			&row.Status,
			&row.CreatedAt,
			&row.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", err)
		}

		entity, err := toReservationEntity(row)
		if err != nil {
			return nil, err
		}
		result = append(result, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservations", err)
	}

	return result, nil
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	query := `
		INSERT INTO reservations (id, guest_id, schedule_id, value_cents, refund_cents, status)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		res.ID(),
		res.GuestID(),
		res.ScheduleID(),
		res.Value().Cents(),
		res.RefundValue().Cents(),
		res.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create reservation", err, infra.ClassifyPgError(err))
	}

	return nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	query := `
		UPDATE reservations
		SET refund_cents = $2, status = $3, updated_at = now()
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		res.ID(),
		res.RefundValue().Cents(),
		res.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err, infra.ClassifyPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}

	return nil
}

func toReservationEntity(row reservationRow) (*reservation.Reservation, error) {
	status := reservation.Status(row.Status)
	if !status.IsValid() {
		return nil, infra.WrapRepoErr("invalid reservation status in store", reservation.ErrInvalidStatus)
	}

	return reservation.Reconstruct(
		row.ID,
		row.GuestID,
		row.ScheduleID,
		reservation.NewMoney(row.ValueCents),
		reservation.NewMoney(row.RefundCents),
		status,
		row.CreatedAt,
		row.UpdatedAt,
	), nil
}
