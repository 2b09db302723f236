package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ratewise/store-ratings-api/internal/core/ports"
)

// AdminHandler serves the administrative surface.
type AdminHandler struct {
	users  ports.UserService
	stores ports.StoreService
}

func NewAdminHandler(users ports.UserService, stores ports.StoreService) *AdminHandler {
	return &AdminHandler{users: users, stores: stores}
}

// Users returns every account.
//
// @Summary      List all users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/admin/users [get]
func (h *AdminHandler) Users(c echo.Context) error {
	users, err := h.users.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Stores returns every store with owner contact and rating aggregates.
//
// @Summary      List all stores
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.StoreListing
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/admin/stores [get]
func (h *AdminHandler) Stores(c echo.Context) error {
	listings, err := h.stores.Catalog(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listings)
}

// DeleteUser removes an account. Dependent stores and ratings go with it.
//
// @Summary      Delete a user
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.users.DeleteUser(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "user deleted"})
}

// DeleteStore removes a store and all its ratings atomically.
//
// @Summary      Delete a store
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Store ID"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/stores/{id} [delete]
func (h *AdminHandler) DeleteStore(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.stores.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "store deleted"})
}
