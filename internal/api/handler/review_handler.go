package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/projethub/projethub/internal/api/metrics"
	"github.com/projethub/projethub/internal/core/ports"
)

// ReviewHandler handles review CRUD.
type ReviewHandler struct {
	reviewService ports.ReviewService
}

func NewReviewHandler(reviewService ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

type reviewRequest struct {
	Content string `json:"content" validate:"required"`
}

// ListByProjet returns all reviews of a projet.
//
// @Summary      List reviews of a projet
// @Tags         reviews
// @Produce      json
// @Param        id   path      string  true  "Projet id"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /reviews/projet/{id} [get]
func (h *ReviewHandler) ListByProjet(c echo.Context) error {
	reviews, err := h.reviewService.ListByProjet(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"reviews": reviews,
	})
}

// Add creates a review on a projet, authored by the caller.
//
// @Summary      Add a review to a projet
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        id    path      string         true  "Projet id"
// @Param        body  body      reviewRequest  true  "Review content"
// @Success      201   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /reviews/projet/{id} [post]
func (h *ReviewHandler) Add(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	review, err := h.reviewService.Add(c.Request().Context(), identity, c.Param("id"), req.Content)
	if err != nil {
		return err
	}

	metrics.ReviewsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"message": "review added successfully",
		"review":  review,
	})
}

// Update modifies the caller's own review.
//
// @Summary      Update a review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        id    path      string         true  "Review id"
// @Param        body  body      reviewRequest  true  "New review content"
// @Success      200   {object}  map[string]any
// @Failure      403   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /reviews/{id} [put]
func (h *ReviewHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	review, err := h.reviewService.Update(c.Request().Context(), identity, c.Param("id"), req.Content)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "review updated successfully",
		"review":  review,
	})
}

// Delete removes the caller's own review.
//
// @Summary      Delete a review
// @Tags         reviews
// @Produce      json
// @Param        id   path      string  true  "Review id"
// @Success      200  {object}  map[string]any
// @Failure      403  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /reviews/{id} [delete]
func (h *ReviewHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.reviewService.Delete(c.Request().Context(), identity, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "review deleted successfully",
	})
}
