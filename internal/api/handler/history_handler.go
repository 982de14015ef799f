package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/spoonstory/podcast-platform/internal/api/metrics"
	"github.com/spoonstory/podcast-platform/internal/core/ports"
)

// HistoryHandler records listening progress.
type HistoryHandler struct {
	service ports.HistoryService
}

func NewHistoryHandler(service ports.HistoryService) *HistoryHandler {
	return &HistoryHandler{service: service}
}

type recordProgressRequest struct {
	EpisodeID string   `json:"episodeId" validate:"required"`
	Progress  *float64 `json:"progress"  validate:"required,gte=0"`
}

// Record handles POST /listening-history.
//
// @Summary      Upsert playback progress for an episode
// @Tags         listening-history
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      recordProgressRequest  true  "Episode id and position in seconds"
// @Success      200   {object}  domain.ListeningHistory
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /listening-history [post]
func (h *HistoryHandler) Record(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req recordProgressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	row, err := h.service.RecordProgress(c.Request().Context(), userID, req.EpisodeID, *req.Progress)
	if err != nil {
		return err
	}

	metrics.HistoryUpsertsTotal.WithLabelValues(strconv.FormatBool(row.Completed)).Inc()
	return respond(c, http.StatusOK, row)
}
