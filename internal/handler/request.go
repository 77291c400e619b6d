package handler

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// flexInt accepts a JSON number or a numeric string.  Browser forms send
// select values as strings ("2") while computed values arrive as numbers,
// so both must decode.  null and "" decode to zero.
type flexInt int64

func (f *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*f = 0
		return nil
	}
	if unq, err := strconv.Unquote(s); err == nil {
		s = unq
	}
	return f.UnmarshalParam(s)
}

// UnmarshalParam implements echo.BindUnmarshaler for form and query values.
func (f *flexInt) UnmarshalParam(param string) error {
	s := strings.TrimSpace(param)
	if s == "" {
		*f = 0
		return nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		*f = flexInt(n)
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v != math.Trunc(v) || math.IsInf(v, 0) {
		return fmt.Errorf("not an integer: %q", param)
	}
	*f = flexInt(v)
	return nil
}

// id converts to an identifier; negative values count as absent.
func (f flexInt) id() uint64 {
	if f < 0 {
		return 0
	}
	return uint64(f)
}

type fareReq struct {
	FromStationID   flexInt `json:"fromStationId" form:"fromStationId"`
	ToStationID     flexInt `json:"toStationId" form:"toStationId"`
	ReservationType string  `json:"reservationType" form:"reservationType"`
}

type bookReq struct {
	UserID          flexInt `json:"userId" form:"userId"`
	PassengerName   string  `json:"passengerName" form:"passengerName"`
	Age             flexInt `json:"age" form:"age"`
	ReservationType string  `json:"reservationType" form:"reservationType"`
	TravelDate      string  `json:"travelDate" form:"travelDate"`
	FromStationID   flexInt `json:"fromStationId" form:"fromStationId"`
	ToStationID     flexInt `json:"toStationId" form:"toStationId"`
}

type registerReq struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type loginReq struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}
