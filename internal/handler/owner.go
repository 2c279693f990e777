package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/reservio/reservation-service/internal/model"
)

func (h *Handler) CreateOwner(c echo.Context) error {
	var req model.CreateOwnerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	owner, err := h.svc.CreateOwner(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, owner)
}

func (h *Handler) GetOwner(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	owner, err := h.svc.GetOwner(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, owner)
}

func (h *Handler) GetOwners(c echo.Context) error {
	q := model.OwnerQuery{
		Email: c.QueryParam("email"),
	}
	owners, err := h.svc.ListOwners(c.Request().Context(), q)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, owners)
}

func (h *Handler) UpdateOwner(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	var req model.UpdateOwnerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	owner, err := h.svc.UpdateOwner(c.Request().Context(), id, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, owner)
}

func (h *Handler) DeleteOwner(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.DeleteOwner(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) DeleteOwners(c echo.Context) error {
	deleted, err := h.svc.DeleteOwners(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"deleted": deleted})
}
