package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ratewise/store-ratings-api/internal/api/metrics"
	"github.com/ratewise/store-ratings-api/internal/core/ports"
)

// OwnerHandler serves the store-owner surface.
type OwnerHandler struct {
	stores ports.StoreService
}

func NewOwnerHandler(stores ports.StoreService) *OwnerHandler {
	return &OwnerHandler{stores: stores}
}

type storeRequest struct {
	Name    string `json:"name"    validate:"required,min=2,max=100"`
	Address string `json:"address" validate:"required,min=2,max=400"`
}

// Store returns the caller's store with its rating aggregate.
//
// @Summary      Get own store
// @Tags         store-owner
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.StoreListing
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/store-owner/store [get]
func (h *OwnerHandler) Store(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	listing, err := h.stores.OwnerStore(c.Request().Context(), principal.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listing)
}

// Create registers the caller's store. An owner holds at most one store; a
// second creation attempt is rejected.
//
// @Summary      Create own store
// @Tags         store-owner
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      storeRequest  true  "Store details"
// @Success      201   {object}  domain.Store
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/store-owner/store [post]
func (h *OwnerHandler) Create(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req storeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	store, err := h.stores.Create(c.Request().Context(), principal.UserID, req.Name, req.Address)
	if err != nil {
		return err
	}

	metrics.StoresCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, store)
}

// Update edits the caller's store name and address.
//
// @Summary      Update own store
// @Tags         store-owner
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      storeRequest  true  "Store details"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/store-owner/store [put]
func (h *OwnerHandler) Update(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req storeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.stores.Update(c.Request().Context(), principal.UserID, req.Name, req.Address); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "store updated"})
}

// Ratings returns the ratings received by the caller's store, newest first.
//
// @Summary      List own store's ratings
// @Tags         store-owner
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Rating
// @Failure      401  {object}  errorResponse
// @Router       /api/store-owner/ratings [get]
func (h *OwnerHandler) Ratings(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	ratings, err := h.stores.OwnerRatings(c.Request().Context(), principal.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ratings)
}
