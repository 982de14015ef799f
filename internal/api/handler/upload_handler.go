package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/spoonstory/podcast-platform/internal/api/metrics"
	"github.com/spoonstory/podcast-platform/internal/core/ports"
)

// UploadHandler handles standalone file uploads.
type UploadHandler struct {
	series ports.SeriesService
}

func NewUploadHandler(series ports.SeriesService) *UploadHandler {
	return &UploadHandler{series: series}
}

// Thumbnail handles POST /upload/thumbnail: stores the image and records
// its URL on the owning series.
//
// @Summary      Upload a series thumbnail
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        seriesId   formData  string  true  "Owning series id"
// @Param        thumbnail  formData  file    true  "Image file"
// @Success      200        {object}  domain.Series
// @Failure      400        {object}  map[string]string
// @Failure      403        {object}  map[string]string
// @Router       /upload/thumbnail [post]
func (h *UploadHandler) Thumbnail(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	seriesID := c.FormValue("seriesId")
	fileHeader, err := c.FormFile("thumbnail")
	if seriesID == "" || err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing required fields")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	series, err := h.series.SetThumbnail(c.Request().Context(), seriesID, userID, ports.UploadedFile{
		Name:        fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Content:     src,
	})
	if err != nil {
		return err
	}

	metrics.UploadsTotal.WithLabelValues("thumbnail").Inc()
	return respond(c, http.StatusOK, series)
}
