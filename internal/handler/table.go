package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/reservio/reservation-service/internal/model"
)

func (h *Handler) CreateTable(c echo.Context) error {
	var req model.CreateTableRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.RestaurantID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("restaurant_id is required"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	table, err := h.svc.CreateTable(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, table)
}

func (h *Handler) GetTable(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	table, err := h.svc.GetTable(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, table)
}

func (h *Handler) GetTables(c echo.Context) error {
	q := model.TableQuery{
		Name: c.QueryParam("name"),
	}
	intParams := map[string]*int{
		"restaurant_id": &q.RestaurantID,
		"min_seats":     &q.MinSeats,
		"max_seats":     &q.MaxSeats,
	}
	for name, dst := range intParams {
		if param := c.QueryParam(name); param != "" {
			v, err := strconv.Atoi(param)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, errors.Errorf("%s is invalid", name))
			}
			*dst = v
		}
	}
	tables, err := h.svc.ListTables(c.Request().Context(), q)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, tables)
}

func (h *Handler) UpdateTable(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	var req model.UpdateTableRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	table, err := h.svc.UpdateTable(c.Request().Context(), id, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, table)
}

func (h *Handler) DeleteTable(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.DeleteTable(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) DeleteTables(c echo.Context) error {
	deleted, err := h.svc.DeleteTables(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"deleted": deleted})
}
