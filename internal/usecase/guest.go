package usecase

import (
	"context"
	"errors"

	"court-reserve/internal/domain/guest"
	"court-reserve/internal/infra"
	"court-reserve/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrGuestNotFound = errors.New("guest not found")
	ErrGuestInUse    = errors.New("guest has reservations and cannot be deleted")
)

type GuestRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*guest.Guest, error)
	FindByName(ctx context.Context, name string) ([]*guest.Guest, error)
	FindAll(ctx context.Context) ([]*guest.Guest, error)
	Create(ctx context.Context, g *guest.Guest) error
	Update(ctx context.Context, g *guest.Guest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreateGuestParams struct {
	Name string
}

type UpdateGuestParams struct {
	Name string
}

type GuestUseCase interface {
	CreateGuest(ctx context.Context, params CreateGuestParams) (*guest.Guest, error)
	GetGuest(ctx context.Context, id uuid.UUID) (*guest.Guest, error)
	FindGuestsByName(ctx context.Context, name string) ([]*guest.Guest, error)
	ListGuests(ctx context.Context) ([]*guest.Guest, error)
	UpdateGuest(ctx context.Context, id uuid.UUID, params UpdateGuestParams) (*guest.Guest, error)
	DeleteGuest(ctx context.Context, id uuid.UUID) error
}

type guestUseCaseImpl struct {
	guestRepo GuestRepository
}

func NewGuestUseCase(guestRepo GuestRepository) GuestUseCase {
	return &guestUseCaseImpl{guestRepo: guestRepo}
}

func (u *guestUseCaseImpl) CreateGuest(ctx context.Context, params CreateGuestParams) (*guest.Guest, error) {
	g, err := guest.NewGuest(params.Name)
	if err != nil {
		return nil, err
	}

	if err := u.guestRepo.Create(ctx, g); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return g, nil
}

func (u *guestUseCaseImpl) GetGuest(ctx context.Context, id uuid.UUID) (*guest.Guest, error) {
	g, err := u.guestRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return g, nil
}

func (u *guestUseCaseImpl) FindGuestsByName(ctx context.Context, name string) ([]*guest.Guest, error) {
	guests, err := u.guestRepo.FindByName(ctx, name)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return guests, nil
}

func (u *guestUseCaseImpl) ListGuests(ctx context.Context) ([]*guest.Guest, error) {
	guests, err := u.guestRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return guests, nil
}

func (u *guestUseCaseImpl) UpdateGuest(ctx context.Context, id uuid.UUID, params UpdateGuestParams) (*guest.Guest, error) {
	g, err := u.GetGuest(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := g.Rename(params.Name); err != nil {
		return nil, err
	}

	if err := u.guestRepo.Update(ctx, g); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return g, nil
}

func (u *guestUseCaseImpl) DeleteGuest(ctx context.Context, id uuid.UUID) error {
	if err := u.guestRepo.Delete(ctx, id); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return ErrGuestNotFound
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return ErrGuestInUse
		default:
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}
	return nil
}
