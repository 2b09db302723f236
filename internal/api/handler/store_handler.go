package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ratewise/store-ratings-api/internal/api/metrics"
	"github.com/ratewise/store-ratings-api/internal/core/domain"
	"github.com/ratewise/store-ratings-api/internal/core/ports"
)

// StoreHandler serves the public catalog and rating submission.
type StoreHandler struct {
	stores  ports.StoreService
	ratings ports.RatingService
}

func NewStoreHandler(stores ports.StoreService, ratings ports.RatingService) *StoreHandler {
	return &StoreHandler{stores: stores, ratings: ratings}
}

// rateRequest carries the submitted score. The range check lives in the
// rating service, not in schema tags, so the same failure surfaces no
// matter which caller submits.
type rateRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// List returns all stores with owner name and rating aggregates, best rated
// first.
//
// @Summary      List stores
// @Tags         stores
// @Produce      json
// @Success      200  {array}  domain.StoreListing
// @Router       /api/stores [get]
func (h *StoreHandler) List(c echo.Context) error {
	listings, err := h.stores.Catalog(c.Request().Context())
	if err != nil {
		return err
	}
	// Owner email stays private on the public surface.
	for i := range listings {
		listings[i].OwnerEmail = ""
	}
	return c.JSON(http.StatusOK, listings)
}

// Get returns one store with its rating aggregate.
//
// @Summary      Get store details
// @Tags         stores
// @Produce      json
// @Param        id   path      int  true  "Store ID"
// @Success      200  {object}  domain.StoreListing
// @Failure      404  {object}  errorResponse
// @Router       /api/stores/{id} [get]
func (h *StoreHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	listing, err := h.stores.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	listing.OwnerEmail = ""
	return c.JSON(http.StatusOK, listing)
}

// Ratings returns a store's ratings, newest first.
//
// @Summary      List a store's ratings
// @Tags         stores
// @Produce      json
// @Param        id   path      int  true  "Store ID"
// @Success      200  {array}   domain.Rating
// @Failure      404  {object}  errorResponse
// @Router       /api/stores/{id}/ratings [get]
func (h *StoreHandler) Ratings(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	ratings, err := h.ratings.ListForStore(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ratings)
}

// Rate submits the caller's rating for a store. A second rating by the same
// user is rejected, not replaced.
//
// @Summary      Rate a store
// @Tags         stores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int          true  "Store ID"
// @Param        body  body      rateRequest  true  "Rating"
// @Success      201   {object}  domain.Rating
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/stores/{id}/rate [post]
func (h *StoreHandler) Rate(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req rateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	rating, err := h.ratings.Submit(c.Request().Context(), ports.SubmitRatingInput{
		StoreID: id,
		UserID:  principal.UserID,
		Score:   req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		metrics.RatingsSubmittedTotal.WithLabelValues(submitResult(err)).Inc()
		return err
	}

	metrics.RatingsSubmittedTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, rating)
}

func submitResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrDuplicateRating):
		return "duplicate"
	case errors.Is(err, domain.ErrInvalidScore):
		return "invalid_score"
	case errors.Is(err, domain.ErrStoreNotFound):
		return "unknown_store"
	default:
		return "error"
	}
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
