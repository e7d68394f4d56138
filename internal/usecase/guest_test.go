//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"court-reserve/internal/domain/guest"
	"court-reserve/internal/infra"
	"court-reserve/internal/usecase"
	usecasemock "court-reserve/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GuestUseCaseTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	guestRepo *usecasemock.MockGuestRepository
	uc        usecase.GuestUseCase
}

func (s *GuestUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.guestRepo = usecasemock.NewMockGuestRepository(s.mockCtrl)
	s.uc = usecase.NewGuestUseCase(s.guestRepo)
}

func (s *GuestUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGuestUseCaseSuite(t *testing.T) {
	suite.Run(t, new(GuestUseCaseTestSuite))
}

func (s *GuestUseCaseTestSuite) TestCreateGuest() {
	s.Run("success", func() {
		s.guestRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		g, err := s.uc.CreateGuest(context.Background(), usecase.CreateGuestParams{Name: " Roger Federer "})
		s.Require().NoError(err)
		s.Equal("Roger Federer", g.Name())
	})

	s.Run("error: empty name never reaches the store", func() {
		_, err := s.uc.CreateGuest(context.Background(), usecase.CreateGuestParams{Name: "  "})
		s.ErrorIs(err, guest.ErrEmptyName)
	})
}

func (s *GuestUseCaseTestSuite) TestGetGuest() {
	s.Run("error: unknown guest", func() {
		id := uuid.New()
		s.guestRepo.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("guest not found", errors.New("no rows"), infra.KindNotFound))

		_, err := s.uc.GetGuest(context.Background(), id)
		s.ErrorIs(err, usecase.ErrGuestNotFound)
	})
}

func (s *GuestUseCaseTestSuite) TestUpdateGuest() {
	s.Run("success: renames and persists", func() {
		id := uuid.New()
		stored := guest.Reconstruct(id, "Rafael Nadal", time.Time{}, time.Time{})

		s.guestRepo.EXPECT().FindByID(gomock.Any(), id).Return(stored, nil)
		s.guestRepo.EXPECT().Update(gomock.Any(), stored).Return(nil)

		g, err := s.uc.UpdateGuest(context.Background(), id, usecase.UpdateGuestParams{Name: "Rafael Nadal Parera"})
		s.Require().NoError(err)
		s.Equal("Rafael Nadal Parera", g.Name())
	})

	s.Run("error: unknown guest skips the rename", func() {
		id := uuid.New()
		s.guestRepo.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("guest not found", errors.New("no rows"), infra.KindNotFound))

		_, err := s.uc.UpdateGuest(context.Background(), id, usecase.UpdateGuestParams{Name: "Anyone"})
		s.ErrorIs(err, usecase.ErrGuestNotFound)
	})
}

func (s *GuestUseCaseTestSuite) TestDeleteGuest() {
	s.Run("success", func() {
		id := uuid.New()
		s.guestRepo.EXPECT().Delete(gomock.Any(), id).Return(nil)

		s.NoError(s.uc.DeleteGuest(context.Background(), id))
	})

	s.Run("error: guest with reservations cannot be deleted", func() {
		id := uuid.New()
		s.guestRepo.EXPECT().Delete(gomock.Any(), id).
			Return(infra.WrapRepoErr("guest referenced", errors.New("fk violation"), infra.KindForeignKeyViolated))

		s.ErrorIs(s.uc.DeleteGuest(context.Background(), id), usecase.ErrGuestInUse)
	})

	s.Run("error: unknown guest", func() {
		id := uuid.New()
		s.guestRepo.EXPECT().Delete(gomock.Any(), id).
			Return(infra.WrapRepoErr("guest not found", errors.New("no rows"), infra.KindNotFound))

		s.ErrorIs(s.uc.DeleteGuest(context.Background(), id), usecase.ErrGuestNotFound)
	})
}

func (s *GuestUseCaseTestSuite) TestFindGuestsByName() {
	s.Run("partial match list passes through", func() {
		matches := []*guest.Guest{
			guest.Reconstruct(uuid.New(), "Rafael Nadal", time.Time{}, time.Time{}),
			guest.Reconstruct(uuid.New(), "Rafael Nadal Parera", time.Time{}, time.Time{}),
		}
		s.guestRepo.EXPECT().FindByName(gomock.Any(), "Nadal").Return(matches, nil)

		got, err := s.uc.FindGuestsByName(context.Background(), "Nadal")
		s.Require().NoError(err)
		s.Len(got, 2)
	})
}
