package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/iliyamo/rail-booking/internal/model"
)

// dbTimeout bounds every store round-trip made on behalf of a request.
const dbTimeout = 5 * time.Second

type bookingView struct {
	ID            uint64  `json:"id"`
	PassengerName string  `json:"passenger_name"`
	Age           int     `json:"age"`
	Class         string  `json:"class"`
	TravelDate    string  `json:"travel_date"`
	Amount        float64 `json:"amount"`
	FromStation   string  `json:"from_station"`
	ToStation     string  `json:"to_station"`
}

func newBookingView(d model.BookingDetail) bookingView {
	return bookingView{
		ID:            d.ID,
		PassengerName: d.PassengerName,
		Age:           d.Age,
		Class:         d.Class,
		TravelDate:    d.TravelDate.Format(time.DateOnly),
		Amount:        d.Amount.InexactFloat64(),
		FromStation:   d.FromStation,
		ToStation:     d.ToStation,
	}
}

type userView struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// fail writes the {success:false, message} envelope used by every endpoint.
func fail(c echo.Context, code int, msg string) error {
	return c.JSON(code, echo.Map{"success": false, "message": msg})
}

func requestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}

// internalError logs err with request context and answers with msg only.
func internalError(c echo.Context, log *zap.Logger, msg string, err error) error {
	log.Error(msg,
		zap.Error(err),
		zap.String("request_id", requestID(c)),
		zap.String("path", c.Path()),
	)
	return fail(c, http.StatusInternalServerError, msg)
}

// HTTPErrorHandler renders framework errors in the JSON envelope.  Unknown
// routes and methods are both reported as 404 "Not found".
func HTTPErrorHandler(log *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		code := http.StatusInternalServerError
		msg := "Internal server error"
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			msg = http.StatusText(code)
		}
		switch code {
		case http.StatusNotFound, http.StatusMethodNotAllowed:
			code, msg = http.StatusNotFound, "Not found"
		case http.StatusInternalServerError:
			log.Error("unhandled error", zap.Error(err), zap.String("request_id", requestID(c)))
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = fail(c, code, msg)
		}
		if err != nil {
			log.Warn("write error response", zap.Error(err))
		}
	}
}
