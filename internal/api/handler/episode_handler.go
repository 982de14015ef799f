package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/spoonstory/podcast-platform/internal/api/metrics"
	"github.com/spoonstory/podcast-platform/internal/core/domain"
	"github.com/spoonstory/podcast-platform/internal/core/ports"
)

// EpisodeHandler handles HTTP requests for episode CRUD.
type EpisodeHandler struct {
	service ports.EpisodeService
}

func NewEpisodeHandler(service ports.EpisodeService) *EpisodeHandler {
	return &EpisodeHandler{service: service}
}

// updateEpisodeRequest is a partial update; nil fields are left untouched.
type updateEpisodeRequest struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	EpisodeNumber *int    `json:"episodeNumber"`
}

// Create handles POST /episodes: multipart metadata plus the audio file.
//
// @Summary      Create an episode with its audio file
// @Tags         episodes
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title          formData  string  true   "Episode title"
// @Param        description    formData  string  false  "Episode description"
// @Param        seriesId       formData  string  true   "Owning series id"
// @Param        episodeNumber  formData  int     true   "Ordering number (positive)"
// @Param        duration       formData  int     true   "Duration in seconds"
// @Param        audio          formData  file    true   "Audio file"
// @Success      201            {object}  domain.Episode
// @Failure      400            {object}  map[string]string
// @Failure      403            {object}  map[string]string
// @Router       /episodes [post]
func (h *EpisodeHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	episodeNumber, _ := strconv.Atoi(c.FormValue("episodeNumber"))
	duration, _ := strconv.Atoi(c.FormValue("duration"))

	fileHeader, err := c.FormFile("audio")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing required fields")
	}
	src, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	episode, err := h.service.Create(c.Request().Context(), ports.CreateEpisodeInput{
		Title:         c.FormValue("title"),
		Description:   c.FormValue("description"),
		SeriesID:      c.FormValue("seriesId"),
		EpisodeNumber: episodeNumber,
		Duration:      duration,
		CallerID:      userID,
		Audio: ports.UploadedFile{
			Name:        fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Size:        fileHeader.Size,
			Content:     src,
		},
	})
	if err != nil {
		return err
	}

	metrics.UploadsTotal.WithLabelValues("audio").Inc()
	return respond(c, http.StatusCreated, episode)
}

// List handles GET /episodes?seriesId=.
//
// @Summary      List a series' episodes by episode number
// @Tags         episodes
// @Produce      json
// @Param        seriesId  query     string  true  "Series id"
// @Success      200       {array}   domain.Episode
// @Failure      400       {object}  map[string]string
// @Router       /episodes [get]
func (h *EpisodeHandler) List(c echo.Context) error {
	episodes, err := h.service.ListBySeries(c.Request().Context(), c.QueryParam("seriesId"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, episodes)
}

// Get handles GET /episodes/:id.
//
// @Summary      Get an episode with its series
// @Tags         episodes
// @Produce      json
// @Param        id   path      string  true  "Episode id"
// @Success      200  {object}  domain.EpisodeWithSeries
// @Failure      404  {object}  map[string]string
// @Router       /episodes/{id} [get]
func (h *EpisodeHandler) Get(c echo.Context) error {
	episode, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, episode)
}

// Update handles PUT /episodes/:id (owner via series).
//
// @Summary      Update an episode
// @Tags         episodes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Episode id"
// @Param        body  body      updateEpisodeRequest  true  "Fields to change"
// @Success      200   {object}  domain.Episode
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /episodes/{id} [put]
func (h *EpisodeHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateEpisodeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	episode, err := h.service.Update(c.Request().Context(), c.Param("id"), userID, domain.EpisodePatch{
		Title:         req.Title,
		Description:   req.Description,
		EpisodeNumber: req.EpisodeNumber,
	})
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, episode)
}

// Delete handles DELETE /episodes/:id (owner via series).
//
// @Summary      Delete an episode
// @Tags         episodes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Episode id"
// @Success      200  {object}  deleteResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /episodes/{id} [delete]
func (h *EpisodeHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), userID); err != nil {
		return err
	}

	return respond(c, http.StatusOK, deleteResponse{Message: "Episode deleted successfully"})
}
