package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/reservio/reservation-service/internal/errs"
	md "github.com/reservio/reservation-service/pkg/middleware"
	"github.com/reservio/reservation-service/pkg/validate"
)

type Handler struct {
	svc ReservationService
	log *zap.Logger
}

func New(svc ReservationService, log *zap.Logger) *Handler {
	return &Handler{
		svc: svc,
		log: log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.GET("/owners", h.GetOwners)
	api.GET("/owners/:id", h.GetOwner)
	api.POST("/owners", h.CreateOwner)
	api.PUT("/owners/:id", h.UpdateOwner)
	api.DELETE("/owners/:id", h.DeleteOwner)
	api.DELETE("/owners", h.DeleteOwners)

	api.GET("/restaurants", h.GetRestaurants)
	api.GET("/restaurants/:id", h.GetRestaurant)
	api.POST("/restaurants", h.CreateRestaurant)
	api.PUT("/restaurants/:id", h.UpdateRestaurant)
	api.DELETE("/restaurants/:id", h.DeleteRestaurant)
	api.DELETE("/restaurants", h.DeleteRestaurants)
	api.GET("/restaurants/:restaurantId/tables", h.GetRestaurantTables)
	api.POST("/restaurants/:restaurantId/tables", h.CreateRestaurantTable)
	api.GET("/restaurants/:restaurantId/business-hours", h.GetRestaurantBusinessHours)

	api.GET("/addresses", h.GetAddresses)
	api.GET("/addresses/:id", h.GetAddress)
	api.POST("/addresses", h.CreateAddress)
	api.PUT("/addresses/:id", h.UpdateAddress)
	api.DELETE("/addresses/:id", h.DeleteAddress)
	api.DELETE("/addresses", h.DeleteAddresses)

	api.GET("/business-hours", h.GetBusinessHours)
	api.GET("/business-hours/:id", h.GetBusinessHour)
	api.POST("/business-hours", h.CreateBusinessHour)
	api.PUT("/business-hours/:id", h.UpdateBusinessHour)
	api.DELETE("/business-hours/:id", h.DeleteBusinessHour)
	api.DELETE("/business-hours", h.DeleteBusinessHours)

	api.GET("/tables", h.GetTables)
	api.GET("/tables/:id", h.GetTable)
	api.POST("/tables", h.CreateTable)
	api.PUT("/tables/:id", h.UpdateTable)
	api.DELETE("/tables/:id", h.DeleteTable)
	api.DELETE("/tables", h.DeleteTables)

	api.GET("/reservations", h.GetReservations)
	api.GET("/reservations/:id", h.GetReservation)
	api.PUT("/reservations/:id", h.UpdateReservation)
	api.DELETE("/reservations/:id", h.DeleteReservation)
	api.DELETE("/reservations", h.DeleteReservations)
	api.GET("/tables/:tableId/reservations", h.GetTableReservations)
	api.POST("/tables/:tableId/reservations", h.CreateReservation)
	api.POST("/tables/:tableId/validate-reservation", h.ValidateReservation)
	api.POST("/restaurants/:restaurantId/tables/:tableId/reservations", h.CreateReservation)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func idParam(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, errors.Errorf("%s is invalid", name)
	}
	return id, nil
}

func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrConflict), errors.Is(err, errs.ErrOverlap):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrTooManyGuests),
		errors.Is(err, errs.ErrTooFewGuests),
		errors.Is(err, errs.ErrInvalidTimeWindow):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
