//go:build unit

package reservation_test

import (
	"testing"

	"court-reserve/internal/domain/reservation"
	"court-reserve/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReservation(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, reservation.StatusReadyToPlay, actual.Status())
		assert.False(t, actual.IsCancelled())
		assert.Equal(t, int64(1000), actual.Value().Cents())
		assert.True(t, actual.RefundValue().IsZero())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*builder.ReservationBuilder)
			errIs  error
		}{
			{
				name:   "missing guest id",
				mutate: func(b *builder.ReservationBuilder) { b.GuestID = uuid.Nil },
				errIs:  reservation.ErrMissingGuestID,
			},
			{
				name:   "missing schedule id",
				mutate: func(b *builder.ReservationBuilder) { b.ScheduleID = uuid.Nil },
				errIs:  reservation.ErrMissingScheduleID,
			},
			{
				name:   "negative value",
				mutate: func(b *builder.ReservationBuilder) { b.ValueCents = -1 },
				errIs:  reservation.ErrNegativeValue,
			},
			{
				name:   "zero value is allowed",
				mutate: func(b *builder.ReservationBuilder) { b.ValueCents = 0 },
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				actual, err := builder.NewReservationBuilder().With(tc.mutate).BuildDomain()
				if tc.errIs != nil {
					require.ErrorIs(t, err, tc.errIs)
					assert.Nil(t, actual)
					return
				}
				require.NoError(t, err)
				require.NotNil(t, actual)
			})
		}
	})

	t.Run("UUID uniqueness", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		first, err := b.BuildDomain()
		require.NoError(t, err)
		second, err := b.BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, first.ID(), second.ID())
	})
}

func TestReservation_Cancel(t *testing.T) {
	t.Run("records refund and flips status", func(t *testing.T) {
		res, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)

		err = res.Cancel(reservation.NewMoney(750))
		require.NoError(t, err)

		assert.True(t, res.IsCancelled())
		assert.Equal(t, reservation.StatusCancelled, res.Status())
		assert.Equal(t, int64(750), res.RefundValue().Cents())
		assert.Equal(t, int64(1000), res.Value().Cents(), "original value is preserved")
	})

	t.Run("zero refund is a valid cancellation", func(t *testing.T) {
		res, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, res.Cancel(reservation.NewMoney(0)))
		assert.True(t, res.IsCancelled())
		assert.True(t, res.RefundValue().IsZero())
	})

	t.Run("cancelling twice fails", func(t *testing.T) {
		res, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, res.Cancel(reservation.NewMoney(500)))
		err = res.Cancel(reservation.NewMoney(500))
		assert.ErrorIs(t, err, reservation.ErrAlreadyCancelled)
		assert.Equal(t, int64(500), res.RefundValue().Cents(), "first refund is untouched")
	})

	t.Run("refund above value fails", func(t *testing.T) {
		res, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)

		err = res.Cancel(reservation.NewMoney(1001))
		assert.ErrorIs(t, err, reservation.ErrRefundExceedsValue)
		assert.False(t, res.IsCancelled())
	})

	t.Run("refund equal to value succeeds", func(t *testing.T) {
		res, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, res.Cancel(res.Value()))
		assert.Equal(t, res.Value(), res.RefundValue())
	})
}
