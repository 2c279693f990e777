package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/reservio/reservation-service/internal/model"
)

// CreateReservation serves both /tables/:tableId/reservations and
// /restaurants/:restaurantId/tables/:tableId/reservations. On the nested
// route the table must belong to the addressed restaurant.
func (h *Handler) CreateReservation(c echo.Context) error {
	tableID, err := idParam(c, "tableId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	restaurantID := 0
	if c.Param("restaurantId") != "" {
		if restaurantID, err = idParam(c, "restaurantId"); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}
	var req model.CreateReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	rsv, err := h.svc.CreateReservation(c.Request().Context(), restaurantID, tableID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, rsv)
}

// ValidateReservation dry-runs the reservation checks and returns the table
// when the reservation would fit.
func (h *Handler) ValidateReservation(c echo.Context) error {
	tableID, err := idParam(c, "tableId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	var req model.CreateReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	table, err := h.svc.ValidateReservation(c.Request().Context(), tableID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, table)
}

func (h *Handler) GetReservation(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	rsv, err := h.svc.GetReservation(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rsv)
}

func (h *Handler) GetReservations(c echo.Context) error {
	q, err := reservationQuery(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	reservations, err := h.svc.ListReservations(c.Request().Context(), q)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, reservations)
}

func (h *Handler) GetTableReservations(c echo.Context) error {
	tableID, err := idParam(c, "tableId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	reservations, err := h.svc.ListReservations(c.Request().Context(), model.ReservationQuery{TableID: tableID})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, reservations)
}

func (h *Handler) UpdateReservation(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	var req model.UpdateReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	rsv, err := h.svc.UpdateReservation(c.Request().Context(), id, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rsv)
}

func (h *Handler) DeleteReservation(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.DeleteReservation(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) DeleteReservations(c echo.Context) error {
	deleted, err := h.svc.DeleteReservations(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"deleted": deleted})
}

func reservationQuery(c echo.Context) (model.ReservationQuery, error) {
	q := model.ReservationQuery{
		CustomerName:  c.QueryParam("customer_name"),
		CustomerEmail: c.QueryParam("customer_email"),
	}
	intParams := map[string]*int{
		"table_id":         &q.TableID,
		"min_guest_amount": &q.MinGuestAmount,
		"max_guest_amount": &q.MaxGuestAmount,
	}
	for name, dst := range intParams {
		if param := c.QueryParam(name); param != "" {
			v, err := strconv.Atoi(param)
			if err != nil {
				return model.ReservationQuery{}, errors.Errorf("%s is invalid", name)
			}
			*dst = v
		}
	}
	if param := c.QueryParam("starting_from"); param != "" {
		var dt model.DateTime
		if err := dt.UnmarshalJSON([]byte(`"` + param + `"`)); err != nil {
			return model.ReservationQuery{}, errors.New("starting_from is invalid")
		}
		q.StartingFrom = &dt
	}
	if param := c.QueryParam("ending_before"); param != "" {
		var dt model.DateTime
		if err := dt.UnmarshalJSON([]byte(`"` + param + `"`)); err != nil {
			return model.ReservationQuery{}, errors.New("ending_before is invalid")
		}
		q.EndingBefore = &dt
	}
	return q, nil
}
