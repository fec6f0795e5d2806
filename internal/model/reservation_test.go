package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booking-report-backend/internal/beds24"
	"booking-report-backend/internal/rooms"
)

func TestParse(t *testing.T) {
	table := rooms.FromConfig(nil)

	raw := beds24.RawBooking{
		ID:        "A1",
		RoomID:    "564321",
		UnitID:    "1",
		FirstName: "Ada",
		LastName:  "Byron",
		Arrival:   "2024-05-17",
		Departure: "2024-05-19",
		Status:    "confirmed",
		NumAdult:  2,
		NumChild:  1,
		Notes:     "late arrival",
	}

	r, err := Parse(raw, table)
	require.NoError(t, err)

	assert.Equal(t, "A1", r.BookingID)
	assert.Equal(t, "Byron Ada", r.GuestName)
	assert.Equal(t, "101", r.RoomName)
	assert.Equal(t, 2, r.Nights)
	assert.Equal(t, time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC), r.CheckinDate)
	assert.Equal(t, time.Date(2024, 5, 19, 0, 0, 0, 0, time.UTC), r.CheckoutDate)
}

func TestParse_GuestName(t *testing.T) {
	table := rooms.Table{}

	testCases := []struct {
		name  string
		first string
		last  string
		want  string
	}{
		{"both names", "Ada", "Byron", "Byron Ada"},
		{"last name only", "", "Byron", "Byron"},
		{"first name only", "Ada", "", "Ada"},
		{"both absent", "", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := Parse(beds24.RawBooking{
				FirstName: tc.first,
				LastName:  tc.last,
				Arrival:   "2024-05-17",
				Departure: "2024-05-18",
			}, table)
			require.NoError(t, err)
			assert.Equal(t, tc.want, r.GuestName)
		})
	}
}

func TestParse_UnknownRoomSynthesizesLabel(t *testing.T) {
	r, err := Parse(beds24.RawBooking{
		ID:        "1",
		RoomID:    "999999",
		UnitID:    "1",
		Arrival:   "2024-05-17",
		Departure: "2024-05-18",
	}, rooms.FromConfig(nil))
	require.NoError(t, err)
	assert.Equal(t, "Room 999999-1", r.RoomName)
}

func TestParse_MalformedDates(t *testing.T) {
	table := rooms.Table{}

	_, err := Parse(beds24.RawBooking{ID: "7", Arrival: "not-a-date", Departure: "2024-05-18"}, table)
	require.Error(t, err)

	var malformed *MalformedRecordError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "7", malformed.BookingID)
	assert.Equal(t, "arrival", malformed.Field)

	_, err = Parse(beds24.RawBooking{ID: "8", Arrival: "2024-05-17", Departure: ""}, table)
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "departure", malformed.Field)
}

func TestParseAll_AbortsOnFirstMalformedRecord(t *testing.T) {
	table := rooms.Table{}
	raws := []beds24.RawBooking{
		{ID: "1", Arrival: "2024-05-17", Departure: "2024-05-18"},
		{ID: "2", Arrival: "bad", Departure: "2024-05-18"},
		{ID: "3", Arrival: "2024-05-17", Departure: "2024-05-18"},
	}

	_, err := ParseAll(raws, table)
	var malformed *MalformedRecordError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "2", malformed.BookingID)
}

func TestParse_NightCount(t *testing.T) {
	table := rooms.Table{}

	testCases := []struct {
		name      string
		arrival   string
		departure string
		want      int
	}{
		{"two nights", "2024-05-17", "2024-05-19", 2},
		{"zero nights", "2024-05-17", "2024-05-17", 0},
		{"negative nights flagged but kept", "2024-05-19", "2024-05-17", -2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := Parse(beds24.RawBooking{Arrival: tc.arrival, Departure: tc.departure}, table)
			require.NoError(t, err)
			assert.Equal(t, tc.want, r.Nights)
		})
	}
}
