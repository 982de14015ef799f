package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/spoonstory/podcast-platform/internal/core/domain"
	"github.com/spoonstory/podcast-platform/internal/core/ports"
)

// SeriesHandler handles HTTP requests for series CRUD.
type SeriesHandler struct {
	service ports.SeriesService
}

func NewSeriesHandler(service ports.SeriesService) *SeriesHandler {
	return &SeriesHandler{service: service}
}

// Create handles POST /series.
//
// @Summary      Create a series
// @Tags         series
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createSeriesRequest  true  "Series details"
// @Success      201   {object}  domain.Series
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /series [post]
func (h *SeriesHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createSeriesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	series, err := h.service.Create(c.Request().Context(), ports.CreateSeriesInput{
		Title:       req.Title,
		Description: req.Description,
		Genre:       req.Genre,
		Thumbnail:   req.Thumbnail,
		CreatorID:   userID,
	})
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, series)
}

// List handles GET /series?creatorId=.
//
// @Summary      List series, newest first
// @Tags         series
// @Produce      json
// @Param        creatorId  query     string  false  "Scope to one creator"
// @Success      200        {array}   domain.SeriesWithMeta
// @Router       /series [get]
func (h *SeriesHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context(), c.QueryParam("creatorId"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, items)
}

// Get handles GET /series/:id.
//
// @Summary      Get a series with creator and counts
// @Tags         series
// @Produce      json
// @Param        id   path      string  true  "Series id"
// @Success      200  {object}  domain.SeriesWithMeta
// @Failure      404  {object}  map[string]string
// @Router       /series/{id} [get]
func (h *SeriesHandler) Get(c echo.Context) error {
	series, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, series)
}

// Update handles PUT /series/:id (owner only).
//
// @Summary      Update a series
// @Tags         series
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Series id"
// @Param        body  body      updateSeriesRequest  true  "Fields to change"
// @Success      200   {object}  domain.Series
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /series/{id} [put]
func (h *SeriesHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateSeriesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	series, err := h.service.Update(c.Request().Context(), c.Param("id"), userID, domain.SeriesPatch{
		Title:       req.Title,
		Description: req.Description,
		Genre:       req.Genre,
		Thumbnail:   req.Thumbnail,
		IsCompleted: req.IsCompleted,
	})
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, series)
}

// Delete handles DELETE /series/:id (owner only, cascades episodes).
//
// @Summary      Delete a series and its episodes
// @Tags         series
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Series id"
// @Success      200  {object}  deleteResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /series/{id} [delete]
func (h *SeriesHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), userID); err != nil {
		return err
	}

	return respond(c, http.StatusOK, deleteResponse{Message: "Series deleted successfully"})
}
