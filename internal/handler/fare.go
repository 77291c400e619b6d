package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/iliyamo/rail-booking/internal/service"
)

// FareHandler quotes fares without booking.
type FareHandler struct {
	Fares *service.FareService
	Log   *zap.Logger
}

func NewFareHandler(f *service.FareService, log *zap.Logger) *FareHandler {
	return &FareHandler{Fares: f, Log: log}
}

// Calculate handles POST /calculate-fare.  It answers 400 for missing or
// identical stations, 404 when neither direction has a fare and 500 on a
// store failure.
func (h *FareHandler) Calculate(c echo.Context) error {
	var req fareReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	amount, err := h.Fares.Resolve(ctx, req.FromStationID.id(), req.ToStationID.id(), req.ReservationType)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, echo.Map{"success": true, "amount": amount.InexactFloat64()})
	case errors.Is(err, service.ErrSameStation):
		return fail(c, http.StatusBadRequest, "From and To must be different")
	case errors.Is(err, service.ErrInvalidInput):
		return fail(c, http.StatusBadRequest, "Missing parameters")
	case errors.Is(err, service.ErrFareNotFound):
		return fail(c, http.StatusNotFound, "Fare not found for selected route")
	default:
		return internalError(c, h.Log, "Error calculating fare", err)
	}
}
