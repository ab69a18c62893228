package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/projethub/projethub/internal/api/metrics"
	"github.com/projethub/projethub/internal/core/ports"
)

// ProjetHandler handles projet CRUD and the category listing.
type ProjetHandler struct {
	projetService ports.ProjetService
}

func NewProjetHandler(projetService ports.ProjetService) *ProjetHandler {
	return &ProjetHandler{projetService: projetService}
}

type projetRequest struct {
	Title       string `json:"title"       validate:"required"`
	Category    string `json:"category"    validate:"required"`
	Description string `json:"description" validate:"required"`
}

// Create creates a projet owned by the caller.
//
// @Summary      Create a projet
// @Tags         projets
// @Accept       json
// @Produce      json
// @Param        body  body      projetRequest  true  "Projet details"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Router       /projets [post]
func (h *ProjetHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req projetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	projet, err := h.projetService.Create(c.Request().Context(), identity, ports.ProjetInput{
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	metrics.ProjetsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"message": "projet created successfully",
		"projet":  projet,
	})
}

// List returns one page of projets, most recent first.
//
// @Summary      List projets
// @Tags         projets
// @Produce      json
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Page size (max 6)"
// @Success      200    {object}  map[string]any
// @Router       /projets [get]
func (h *ProjetHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.projetService.List(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":    true,
		"projets":    result.Projets,
		"pagination": result.Pagination,
	})
}

// Get returns a projet with its reviews.
//
// @Summary      Get a projet with its reviews
// @Tags         projets
// @Produce      json
// @Param        id   path      string  true  "Projet id"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /projets/{id} [get]
func (h *ProjetHandler) Get(c echo.Context) error {
	detail, err := h.projetService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"projet":  detail.Projet,
		"reviews": detail.Reviews,
	})
}

// Update modifies the caller's own projet.
//
// @Summary      Update a projet
// @Tags         projets
// @Accept       json
// @Produce      json
// @Param        id    path      string         true  "Projet id"
// @Param        body  body      projetRequest  true  "New projet details"
// @Success      200   {object}  map[string]any
// @Failure      403   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /projets/{id} [put]
func (h *ProjetHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req projetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	projet, err := h.projetService.Update(c.Request().Context(), identity, c.Param("id"), ports.ProjetInput{
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "projet updated successfully",
		"projet":  projet,
	})
}

// Delete removes a projet and all its reviews.
//
// @Summary      Delete a projet and its reviews
// @Tags         projets
// @Produce      json
// @Param        id   path      string  true  "Projet id"
// @Success      200  {object}  map[string]any
// @Failure      403  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /projets/{id} [delete]
func (h *ProjetHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.projetService.Delete(c.Request().Context(), identity, c.Param("id")); err != nil {
		return err
	}

	metrics.CascadeDeletesTotal.Inc()
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "projet and associated reviews deleted successfully",
	})
}

// Categories returns the distinct category names.
//
// @Summary      List categories
// @Tags         projets
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /projets/categories [get]
func (h *ProjetHandler) Categories(c echo.Context) error {
	categories, err := h.projetService.Categories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":    true,
		"categories": categories,
	})
}

// Mine returns the caller's projets, each with its reviews.
//
// @Summary      List the caller's projets with reviews
// @Tags         projets
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]any
// @Router       /users/me/projets [get]
func (h *ProjetHandler) Mine(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	details, err := h.projetService.ListByAuthor(c.Request().Context(), identity)
	if err != nil {
		return err
	}

	type projetWithReviews struct {
		Projet  any `json:"projet"`
		Reviews any `json:"reviews"`
	}
	out := make([]projetWithReviews, 0, len(details))
	for _, d := range details {
		out = append(out, projetWithReviews{Projet: d.Projet, Reviews: d.Reviews})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"projets": out,
	})
}
