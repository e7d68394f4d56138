package api

import (
	"errors"
	"net/http"

	"court-reserve/internal/domain/guest"
	reqdto "court-reserve/internal/handler/dto/request"
	resdto "court-reserve/internal/handler/dto/response"
	"court-reserve/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type GuestHandler struct {
	guestUseCase usecase.GuestUseCase
}

func NewGuestHandler(guestUseCase usecase.GuestUseCase) *GuestHandler {
	return &GuestHandler{
		guestUseCase: guestUseCase,
	}
}

// @Summary Create guest
// @Tags guests
// @Accept json
// @Produce json
// @Param request body reqdto.CreateGuestRequest true "Guest"
// @Success 201 {object} resdto.GuestResponse
// @Failure 400 {object} map[string]string
// @Router /guests [post]
func (h *GuestHandler) CreateGuest(c *gin.Context) {
	var req reqdto.CreateGuestRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	var params usecase.CreateGuestParams
	if err := copier.Copy(&params, &req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	g, err := h.guestUseCase.CreateGuest(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, guest.ErrEmptyName) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Guest name cannot be empty",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.FromGuest(g))
}

// @Summary Get guest
// @Tags guests
// @Produce json
// @Param id path string true "Guest ID"
// @Success 200 {object} resdto.GuestResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /guests/{id} [get]
func (h *GuestHandler) GetGuest(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	g, err := h.guestUseCase.GetGuest(c.Request.Context(), id)
	if err != nil {
		h.renderGuestError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromGuest(g))
}

// @Summary List guests
// @Description List all guests, optionally filtered by name
// @Tags guests
// @Produce json
// @Param name query string false "Partial name filter"
// @Success 200 {array} resdto.GuestResponse
// @Router /guests [get]
func (h *GuestHandler) ListGuests(c *gin.Context) {
	var (
		guests []*guest.Guest
		err    error
	)

	if name := c.Query("name"); name != "" {
		guests, err = h.guestUseCase.FindGuestsByName(c.Request.Context(), name)
	} else {
		guests, err = h.guestUseCase.ListGuests(c.Request.Context())
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromGuests(guests))
}

// @Summary Update guest
// @Tags guests
// @Accept json
// @Produce json
// @Param id path string true "Guest ID"
// @Param request body reqdto.UpdateGuestRequest true "Guest"
// @Success 200 {object} resdto.GuestResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /guests/{id} [put]
func (h *GuestHandler) UpdateGuest(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateGuestRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	var params usecase.UpdateGuestParams
	if err := copier.Copy(&params, &req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	g, err := h.guestUseCase.UpdateGuest(c.Request.Context(), id, params)
	if err != nil {
		h.renderGuestError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromGuest(g))
}

// @Summary Delete guest
// @Tags guests
// @Param id path string true "Guest ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /guests/{id} [delete]
func (h *GuestHandler) DeleteGuest(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.guestUseCase.DeleteGuest(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrGuestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Guest not found",
			})
		case errors.Is(err, usecase.ErrGuestInUse):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Guest has reservations and cannot be deleted",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *GuestHandler) renderGuestError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrGuestNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Guest not found",
		})
	case errors.Is(err, guest.ErrEmptyName):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Guest name cannot be empty",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func (h *GuestHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid guest ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}
