package usecase

import (
	"context"
	"errors"
	"time"

	"court-reserve/internal/domain/schedule"
	"court-reserve/internal/infra"
	"court-reserve/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrScheduleOverlaps = errors.New("schedule overlaps an existing slot on this court")

// ScheduleAdminRepository is the court-scheduling side of the schedule
// store; the reservation lifecycle only ever reads through
// ScheduleRepository.
type ScheduleAdminRepository interface {
	ScheduleRepository
	FindByCourtID(ctx context.Context, courtID uuid.UUID) ([]*schedule.Schedule, error)
	Create(ctx context.Context, s *schedule.Schedule) error
}

type CreateScheduleParams struct {
	CourtID   uuid.UUID
	StartTime time.Time
	EndTime   time.Time
}

type ScheduleUseCase interface {
	CreateSchedule(ctx context.Context, params CreateScheduleParams) (*schedule.Schedule, error)
	GetSchedule(ctx context.Context, id uuid.UUID) (*schedule.Schedule, error)
	ListSchedulesByCourt(ctx context.Context, courtID uuid.UUID) ([]*schedule.Schedule, error)
}

type scheduleUseCaseImpl struct {
	scheduleRepo ScheduleAdminRepository
	courtRepo    CourtRepository
}

func NewScheduleUseCase(scheduleRepo ScheduleAdminRepository, courtRepo CourtRepository) ScheduleUseCase {
	return &scheduleUseCaseImpl{
		scheduleRepo: scheduleRepo,
		courtRepo:    courtRepo,
	}
}

func (u *scheduleUseCaseImpl) CreateSchedule(ctx context.Context, params CreateScheduleParams) (*schedule.Schedule, error) {
	if _, err := u.courtRepo.FindByID(ctx, params.CourtID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	s, err := schedule.NewSchedule(params.CourtID, params.StartTime, params.EndTime)
	if err != nil {
		return nil, err
	}

	if err := u.scheduleRepo.Create(ctx, s); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrScheduleOverlaps
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return s, nil
}

func (u *scheduleUseCaseImpl) GetSchedule(ctx context.Context, id uuid.UUID) (*schedule.Schedule, error) {
	s, err := u.scheduleRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return s, nil
}

func (u *scheduleUseCaseImpl) ListSchedulesByCourt(ctx context.Context, courtID uuid.UUID) ([]*schedule.Schedule, error) {
	if _, err := u.courtRepo.FindByID(ctx, courtID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	schedules, err := u.scheduleRepo.FindByCourtID(ctx, courtID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return schedules, nil
}
