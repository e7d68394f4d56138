package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNegativeValue      = errors.New("reservation value cannot be negative")
	ErrAlreadyCancelled   = errors.New("reservation is already cancelled")
	ErrRefundExceedsValue = errors.New("refund cannot exceed reservation value")
	ErrInvalidStatus      = errors.New("invalid reservation status")
	ErrMissingGuestID     = errors.New("guest id is required")
	ErrMissingScheduleID  = errors.New("schedule id is required")
)

// Reservation is a guest's booking of one schedule. Cancellation is a
// status change, never a delete; refundValue stays zero until the
// reservation is cancelled.
type Reservation struct {
	id          uuid.UUID
	guestID     uuid.UUID
	scheduleID  uuid.UUID
	value       Money
	refundValue Money
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

func NewReservation(guestID, scheduleID uuid.UUID, value Money) (*Reservation, error) {
	if guestID == uuid.Nil {
		return nil, ErrMissingGuestID
	}
	if scheduleID == uuid.Nil {
		return nil, ErrMissingScheduleID
	}
	if value.Cents() < 0 {
		return nil, ErrNegativeValue
	}

	return &Reservation{
		id:          uuid.New(),
		guestID:     guestID,
		scheduleID:  scheduleID,
		value:       value,
		refundValue: NewMoney(0),
		status:      StatusReadyToPlay,
	}, nil
}

func Reconstruct(
	id, guestID, scheduleID uuid.UUID,
	value, refundValue Money,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:          id,
		guestID:     guestID,
		scheduleID:  scheduleID,
		value:       value,
		refundValue: refundValue,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Cancel moves the reservation to its terminal state, recording the refund
// owed to the guest. Cancelling twice is an error, not a no-op.
func (r *Reservation) Cancel(refund Money) error {
	if r.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	if r.value.LessThan(refund) {
		return ErrRefundExceedsValue
	}

	r.status = StatusCancelled
	r.refundValue = refund
	return nil
}

func (r *Reservation) IsCancelled() bool {
	return r.status == StatusCancelled
}

func (r *Reservation) ID() uuid.UUID         { return r.id }
func (r *Reservation) GuestID() uuid.UUID    { return r.guestID }
func (r *Reservation) ScheduleID() uuid.UUID { return r.scheduleID }
func (r *Reservation) Value() Money          { return r.value }
func (r *Reservation) RefundValue() Money    { return r.refundValue }
func (r *Reservation) Status() Status        { return r.status }
func (r *Reservation) CreatedAt() time.Time  { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time  { return r.updatedAt }
