package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/iliyamo/rail-booking/internal/service"
)

// StationHandler serves the station directory.
type StationHandler struct {
	Stations *service.StationService
	Log      *zap.Logger
}

func NewStationHandler(s *service.StationService, log *zap.Logger) *StationHandler {
	return &StationHandler{Stations: s, Log: log}
}

// List handles GET /stations.  The list is never empty; an empty table is
// answered with the built-in fallback stations.
func (h *StationHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	stations, err := h.Stations.List(ctx)
	if err != nil {
		return internalError(c, h.Log, "Could not load stations", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "stations": stations})
}
