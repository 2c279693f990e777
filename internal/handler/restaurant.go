package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/reservio/reservation-service/internal/model"
)

func (h *Handler) CreateRestaurant(c echo.Context) error {
	var req model.CreateRestaurantRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	rest, err := h.svc.CreateRestaurant(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, rest)
}

func (h *Handler) GetRestaurant(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	rest, err := h.svc.GetRestaurant(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rest)
}

func (h *Handler) GetRestaurants(c echo.Context) error {
	q := model.RestaurantQuery{
		Name: c.QueryParam("name"),
	}
	if ownerParam := c.QueryParam("owner_id"); ownerParam != "" {
		ownerID, err := strconv.Atoi(ownerParam)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("owner_id is invalid"))
		}
		q.OwnerID = ownerID
	}
	restaurants, err := h.svc.ListRestaurants(c.Request().Context(), q)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, restaurants)
}

func (h *Handler) UpdateRestaurant(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	var req model.UpdateRestaurantRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	rest, err := h.svc.UpdateRestaurant(c.Request().Context(), id, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rest)
}

func (h *Handler) DeleteRestaurant(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.DeleteRestaurant(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) DeleteRestaurants(c echo.Context) error {
	deleted, err := h.svc.DeleteRestaurants(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"deleted": deleted})
}

func (h *Handler) GetRestaurantTables(c echo.Context) error {
	restaurantID, err := idParam(c, "restaurantId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	tables, err := h.svc.ListTables(c.Request().Context(), model.TableQuery{RestaurantID: restaurantID})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, tables)
}

// CreateRestaurantTable creates a table bound to the restaurant in the path;
// a restaurant_id in the body must match the path.
func (h *Handler) CreateRestaurantTable(c echo.Context) error {
	restaurantID, err := idParam(c, "restaurantId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	var req model.CreateTableRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.RestaurantID != 0 && req.RestaurantID != restaurantID {
		return echo.NewHTTPError(http.StatusBadRequest,
			errors.Errorf("restaurant_id %d does not match path restaurant %d", req.RestaurantID, restaurantID))
	}
	req.RestaurantID = restaurantID
	if err := c.Validate(req); err != nil {
		return err
	}
	table, err := h.svc.CreateTable(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, table)
}

func (h *Handler) GetRestaurantBusinessHours(c echo.Context) error {
	restaurantID, err := idParam(c, "restaurantId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	hours, err := h.svc.ListBusinessHours(c.Request().Context(), model.BusinessHourQuery{RestaurantID: restaurantID})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, hours)
}
