package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/iliyamo/rail-booking/internal/service"
)

// BookingHandler exposes booking creation and the per-user booking list.
// The caller identifies itself with the userId it received from /login;
// there is no server-side session.
type BookingHandler struct {
	Bookings *service.BookingService
	Log      *zap.Logger
}

func NewBookingHandler(b *service.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{Bookings: b, Log: log}
}

// Book handles POST /book.  On success the stored booking is returned
// together with its station names.  Failures carry a message only; internal
// details stay in the log.
func (h *BookingHandler) Book(c echo.Context) error {
	var req bookReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	d, err := h.Bookings.Create(ctx, service.CreateBookingInput{
		UserID:        req.UserID.id(),
		PassengerName: req.PassengerName,
		Age:           int(req.Age),
		Class:         req.ReservationType,
		TravelDate:    req.TravelDate,
		FromStationID: req.FromStationID.id(),
		ToStationID:   req.ToStationID.id(),
	})
	switch {
	case err == nil:
		h.Log.Info("booking created",
			zap.Uint64("booking_id", d.ID),
			zap.Uint64("user_id", req.UserID.id()),
			zap.String("request_id", requestID(c)),
		)
		return c.JSON(http.StatusOK, echo.Map{"success": true, "booking": newBookingView(*d)})
	case errors.Is(err, service.ErrMissingFields):
		return fail(c, http.StatusBadRequest, "Missing booking fields")
	case errors.Is(err, service.ErrInvalidDate):
		return fail(c, http.StatusBadRequest, "Invalid or past travel date")
	case errors.Is(err, service.ErrSameStation):
		return fail(c, http.StatusBadRequest, "From and To must be different")
	case errors.Is(err, service.ErrInvalidInput):
		return fail(c, http.StatusBadRequest, "Invalid booking fields")
	case errors.Is(err, service.ErrFareNotFound):
		return fail(c, http.StatusNotFound, "Fare not found for route")
	default:
		return internalError(c, h.Log, "Could not complete booking", err)
	}
}

// MyBookings handles GET /my-bookings?userId=.  A missing, zero or
// non-numeric userId is a 400.
func (h *BookingHandler) MyBookings(c echo.Context) error {
	userID, err := strconv.ParseUint(strings.TrimSpace(c.QueryParam("userId")), 10, 64)
	if err != nil || userID == 0 {
		return fail(c, http.StatusBadRequest, "Missing userId")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	details, err := h.Bookings.ListForUser(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			return fail(c, http.StatusBadRequest, "Missing userId")
		}
		return internalError(c, h.Log, "Could not load bookings", err)
	}
	out := make([]bookingView, 0, len(details))
	for _, d := range details {
		out = append(out, newBookingView(d))
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "count": len(out), "bookings": out})
}
