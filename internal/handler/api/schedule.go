package api

import (
	"errors"
	"net/http"

	"court-reserve/internal/domain/court"
	"court-reserve/internal/domain/schedule"
	reqdto "court-reserve/internal/handler/dto/request"
	resdto "court-reserve/internal/handler/dto/response"
	"court-reserve/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ScheduleHandler struct {
	scheduleUseCase usecase.ScheduleUseCase
	courtUseCase    usecase.CourtUseCase
}

func NewScheduleHandler(scheduleUseCase usecase.ScheduleUseCase, courtUseCase usecase.CourtUseCase) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleUseCase: scheduleUseCase,
		courtUseCase:    courtUseCase,
	}
}

// @Summary Create schedule slot
// @Tags schedules
// @Accept json
// @Produce json
// @Param request body reqdto.CreateScheduleRequest true "Slot"
// @Success 201 {object} resdto.ScheduleResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /schedules [post]
func (h *ScheduleHandler) CreateSchedule(c *gin.Context) {
	var req reqdto.CreateScheduleRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	s, err := h.scheduleUseCase.CreateSchedule(c.Request.Context(), usecase.CreateScheduleParams{
		CourtID:   req.CourtID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCourtNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Court not found",
			})
		case errors.Is(err, schedule.ErrInvalidTimeSlot):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Start time must be before end time",
			})
		case errors.Is(err, usecase.ErrScheduleOverlaps):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Court already has a slot at this start time",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSchedule(s))
}

// @Summary Get schedule slot
// @Tags schedules
// @Produce json
// @Param id path string true "Schedule ID"
// @Success 200 {object} resdto.ScheduleResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /schedules/{id} [get]
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid schedule ID format",
		})
		return
	}

	s, err := h.scheduleUseCase.GetSchedule(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrScheduleNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Schedule not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSchedule(s))
}

// @Summary Create court
// @Tags courts
// @Accept json
// @Produce json
// @Param request body reqdto.CreateCourtRequest true "Court"
// @Success 201 {object} resdto.CourtResponse
// @Failure 400 {object} map[string]string
// @Router /courts [post]
func (h *ScheduleHandler) CreateCourt(c *gin.Context) {
	var req reqdto.CreateCourtRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	created, err := h.courtUseCase.CreateCourt(c.Request.Context(), usecase.CreateCourtParams{Name: req.Name})
	if err != nil {
		if errors.Is(err, court.ErrEmptyName) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Court name cannot be empty",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCourt(created))
}

// @Summary List courts
// @Tags courts
// @Produce json
// @Success 200 {array} resdto.CourtResponse
// @Router /courts [get]
func (h *ScheduleHandler) ListCourts(c *gin.Context) {
	courts, err := h.courtUseCase.ListCourts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCourts(courts))
}

// @Summary Get court
// @Tags courts
// @Produce json
// @Param id path string true "Court ID"
// @Success 200 {object} resdto.CourtResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /courts/{id} [get]
func (h *ScheduleHandler) GetCourt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid court ID format",
		})
		return
	}

	found, err := h.courtUseCase.GetCourt(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCourtNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Court not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCourt(found))
}

// @Summary List court schedules
// @Tags courts
// @Produce json
// @Param id path string true "Court ID"
// @Success 200 {array} resdto.ScheduleResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /courts/{id}/schedules [get]
func (h *ScheduleHandler) ListCourtSchedules(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid court ID format",
		})
		return
	}

	schedules, err := h.scheduleUseCase.ListSchedulesByCourt(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCourtNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Court not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSchedules(schedules))
}
