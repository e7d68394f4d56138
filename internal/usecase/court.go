package usecase

import (
	"context"
	"errors"

	"court-reserve/internal/domain/court"
	"court-reserve/internal/infra"
	"court-reserve/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrCourtNotFound = errors.New("court not found")

type CourtRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*court.Court, error)
	FindAll(ctx context.Context) ([]*court.Court, error)
	Create(ctx context.Context, c *court.Court) error
}

type CreateCourtParams struct {
	Name string
}

type CourtUseCase interface {
	CreateCourt(ctx context.Context, params CreateCourtParams) (*court.Court, error)
	GetCourt(ctx context.Context, id uuid.UUID) (*court.Court, error)
	ListCourts(ctx context.Context) ([]*court.Court, error)
}

type courtUseCaseImpl struct {
	courtRepo CourtRepository
}

func NewCourtUseCase(courtRepo CourtRepository) CourtUseCase {
	return &courtUseCaseImpl{courtRepo: courtRepo}
}

func (u *courtUseCaseImpl) CreateCourt(ctx context.Context, params CreateCourtParams) (*court.Court, error) {
	c, err := court.NewCourt(params.Name)
	if err != nil {
		return nil, err
	}

	if err := u.courtRepo.Create(ctx, c); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return c, nil
}

func (u *courtUseCaseImpl) GetCourt(ctx context.Context, id uuid.UUID) (*court.Court, error) {
	c, err := u.courtRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return c, nil
}

func (u *courtUseCaseImpl) ListCourts(ctx context.Context) ([]*court.Court, error) {
	courts, err := u.courtRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return courts, nil
}
