package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"court-reserve/internal/handler/api"
	"court-reserve/internal/handler/middleware"
	"court-reserve/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	reservationHandler *api.ReservationHandler,
	guestHandler *api.GuestHandler,
	scheduleHandler *api.ScheduleHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, reservationHandler, guestHandler, scheduleHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	reservationHandler *api.ReservationHandler,
	guestHandler *api.GuestHandler,
	scheduleHandler *api.ScheduleHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		reservations := apiGroup.Group("/reservations")
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.BookReservation},
				{Method: http.MethodGet, Path: "", Handler: reservationHandler.ListReservations},
				{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.GetReservation},
				{Method: http.MethodPatch, Path: "/:id/cancel", Handler: reservationHandler.CancelReservation},
				{Method: http.MethodPatch, Path: "/:id/reschedule", Handler: reservationHandler.RescheduleReservation},
			})
		}

		guests := apiGroup.Group("/guests")
		{
			addRoutes(guests, []route{
				{Method: http.MethodPost, Path: "", Handler: guestHandler.CreateGuest},
				{Method: http.MethodGet, Path: "", Handler: guestHandler.ListGuests},
				{Method: http.MethodGet, Path: "/:id", Handler: guestHandler.GetGuest},
				{Method: http.MethodPut, Path: "/:id", Handler: guestHandler.UpdateGuest},
				{Method: http.MethodDelete, Path: "/:id", Handler: guestHandler.DeleteGuest},
			})
		}

		courts := apiGroup.Group("/courts")
		{
			addRoutes(courts, []route{
				{Method: http.MethodPost, Path: "", Handler: scheduleHandler.CreateCourt},
				{Method: http.MethodGet, Path: "", Handler: scheduleHandler.ListCourts},
				{Method: http.MethodGet, Path: "/:id", Handler: scheduleHandler.GetCourt},
				{Method: http.MethodGet, Path: "/:id/schedules", Handler: scheduleHandler.ListCourtSchedules},
			})
		}

		schedules := apiGroup.Group("/schedules")
		{
			addRoutes(schedules, []route{
				{Method: http.MethodPost, Path: "", Handler: scheduleHandler.CreateSchedule},
				{Method: http.MethodGet, Path: "/:id", Handler: scheduleHandler.GetSchedule},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
