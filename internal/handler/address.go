package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/reservio/reservation-service/internal/model"
)

func (h *Handler) CreateAddress(c echo.Context) error {
	var req model.CreateAddressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	addr, err := h.svc.CreateAddress(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, addr)
}

func (h *Handler) GetAddress(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	addr, err := h.svc.GetAddress(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, addr)
}

func (h *Handler) GetAddresses(c echo.Context) error {
	q := model.AddressQuery{
		City:       c.QueryParam("city"),
		PostalCode: c.QueryParam("postal_code"),
	}
	addresses, err := h.svc.ListAddresses(c.Request().Context(), q)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, addresses)
}

func (h *Handler) UpdateAddress(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	var req model.UpdateAddressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	addr, err := h.svc.UpdateAddress(c.Request().Context(), id, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, addr)
}

func (h *Handler) DeleteAddress(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.DeleteAddress(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) DeleteAddresses(c echo.Context) error {
	deleted, err := h.svc.DeleteAddresses(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"deleted": deleted})
}
