package api

import (
	"errors"
	"net/http"

	reqdto "court-reserve/internal/handler/dto/request"
	resdto "court-reserve/internal/handler/dto/response"
	"court-reserve/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	reservationUseCase usecase.ReservationUseCase
}

func NewReservationHandler(reservationUseCase usecase.ReservationUseCase) *ReservationHandler {
	return &ReservationHandler{
		reservationUseCase: reservationUseCase,
	}
}

// @Summary Book reservation
// @Description Book a guest onto a schedule slot
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.BookReservationRequest true "Booking request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) BookReservation(c *gin.Context) {
	var req reqdto.BookReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	res, err := h.reservationUseCase.BookReservation(c.Request.Context(), req.GuestID, req.ScheduleID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrScheduleNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Schedule not found",
			})
		case errors.Is(err, usecase.ErrScheduleAlreadyReserved):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Schedule already has an active reservation",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservation(res))
}

// @Summary Get reservation
// @Description Get reservation by ID
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	res, err := h.reservationUseCase.GetReservation(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservation(res))
}

// @Summary List reservations
// @Description List every reservation, cancelled history included
// @Tags reservations
// @Produce json
// @Success 200 {array} resdto.ReservationResponse
// @Router /reservations [get]
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	reservations, err := h.reservationUseCase.ListReservations(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservations(reservations))
}

// @Summary Cancel reservation
// @Description Cancel a reservation and compute its tiered refund
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id}/cancel [patch]
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	res, err := h.reservationUseCase.CancelReservation(c.Request.Context(), id)
	if err != nil {
		h.renderLifecycleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservation(res))
}

// @Summary Reschedule reservation
// @Description Move a reservation to a different schedule slot
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body reqdto.RescheduleReservationRequest true "Target schedule"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/reschedule [patch]
func (h *ReservationHandler) RescheduleReservation(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req reqdto.RescheduleReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	res, err := h.reservationUseCase.RescheduleReservation(c.Request.Context(), id, req.ScheduleID)
	if err != nil {
		h.renderLifecycleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservation(res))
}

func (h *ReservationHandler) renderLifecycleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Reservation not found",
		})
	case errors.Is(err, usecase.ErrScheduleNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Schedule not found",
		})
	case errors.Is(err, usecase.ErrReservationAlreadyCanceled):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Reservation is already cancelled",
		})
	case errors.Is(err, usecase.ErrScheduleAlreadyStarted):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Schedule has already started",
		})
	case errors.Is(err, usecase.ErrScheduleAlreadyReserved):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Schedule already has an active reservation",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func (h *ReservationHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}
