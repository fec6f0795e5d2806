package beds24

import (
	"encoding/json"
	"strconv"
)

// FlexValue is a JSON field that the upstream API serves either as a number
// or as a string. The raw literal is kept so identifier values survive
// untouched until they are normalized at the model boundary.
type FlexValue string

// UnmarshalJSON accepts strings, numbers and null.
func (v *FlexValue) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = FlexValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*v = FlexValue(n.String())
	return nil
}

func (v FlexValue) String() string { return string(v) }

// Int returns the value as an integer when it parses as one.
func (v FlexValue) Int() (int, bool) {
	n, err := strconv.Atoi(string(v))
	if err != nil {
		return 0, false
	}
	return n, true
}

// RawBooking models one booking record as returned by the bookings endpoint.
type RawBooking struct {
	ID        FlexValue `json:"id"`
	RoomID    FlexValue `json:"roomId"`
	UnitID    FlexValue `json:"unitId"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Arrival   string    `json:"arrival"`
	Departure string    `json:"departure"`
	Status    string    `json:"status"`
	NumAdult  int       `json:"numAdult"`
	NumChild  int       `json:"numChild"`
	Notes     string    `json:"notes"`
}

// TokenResponse models the authentication endpoints' response. Refresh
// responses omit refreshToken.
type TokenResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int    `json:"expiresIn"`
}

// bookingsResponse models the top-level structure of the bookings endpoint.
type bookingsResponse struct {
	Data []RawBooking `json:"data"`
}
