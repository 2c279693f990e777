package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/reservio/reservation-service/internal/model"
)

func (h *Handler) CreateBusinessHour(c echo.Context) error {
	var req model.CreateBusinessHourRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	bh, err := h.svc.CreateBusinessHour(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, bh)
}

func (h *Handler) GetBusinessHour(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	bh, err := h.svc.GetBusinessHour(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, bh)
}

func (h *Handler) GetBusinessHours(c echo.Context) error {
	var q model.BusinessHourQuery
	if restaurantParam := c.QueryParam("restaurant_id"); restaurantParam != "" {
		restaurantID, err := strconv.Atoi(restaurantParam)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("restaurant_id is invalid"))
		}
		q.RestaurantID = restaurantID
	}
	if weekdayParam := c.QueryParam("weekday"); weekdayParam != "" {
		weekday, err := strconv.Atoi(weekdayParam)
		if err != nil || weekday < 0 || weekday > 6 {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("weekday is invalid"))
		}
		q.Weekday = &weekday
	}
	hours, err := h.svc.ListBusinessHours(c.Request().Context(), q)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, hours)
}

func (h *Handler) UpdateBusinessHour(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	var req model.UpdateBusinessHourRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	bh, err := h.svc.UpdateBusinessHour(c.Request().Context(), id, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, bh)
}

func (h *Handler) DeleteBusinessHour(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.DeleteBusinessHour(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) DeleteBusinessHours(c echo.Context) error {
	deleted, err := h.svc.DeleteBusinessHours(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"deleted": deleted})
}
