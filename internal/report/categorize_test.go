package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booking-report-backend/internal/model"
)

func res(id, room, checkin, checkout, status string) *model.Reservation {
	ci, _ := time.Parse("2006-01-02", checkin)
	co, _ := time.Parse("2006-01-02", checkout)
	return &model.Reservation{
		BookingID:    id,
		RoomName:     room,
		Status:       status,
		CheckinDate:  ci,
		CheckoutDate: co,
	}
}

func ids(rs []*model.Reservation) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.BookingID
	}
	return out
}

func TestCategorize(t *testing.T) {
	target := time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC)

	reservations := []*model.Reservation{
		res("arriving", "101", "2024-05-17", "2024-05-19", "confirmed"),
		res("departing", "102", "2024-05-15", "2024-05-17", "confirmed"),
		res("staying", "103", "2024-05-16", "2024-05-18", "confirmed"),
		res("unrelated", "104", "2024-05-20", "2024-05-22", "confirmed"),
	}

	c := Categorize(reservations, target)
	assert.Equal(t, []string{"arriving"}, ids(c.Arrivals))
	assert.Equal(t, []string{"departing"}, ids(c.Departures))
	assert.Equal(t, []string{"staying"}, ids(c.StayThrough))
}

func TestCategorize_BlackStatusNeverAppears(t *testing.T) {
	target := time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC)

	c := Categorize([]*model.Reservation{
		res("blocked", "101", "2024-05-16", "2024-05-18", "black"),
		res("blocked-arrival", "102", "2024-05-17", "2024-05-19", "black"),
	}, target)

	assert.Empty(t, c.Arrivals)
	assert.Empty(t, c.Departures)
	assert.Empty(t, c.StayThrough)
}

func TestCategorize_ZeroNightBookingIsArrivalAndDeparture(t *testing.T) {
	target := time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC)

	c := Categorize([]*model.Reservation{
		res("daytrip", "101", "2024-05-17", "2024-05-17", "confirmed"),
	}, target)

	assert.Equal(t, []string{"daytrip"}, ids(c.Arrivals))
	assert.Equal(t, []string{"daytrip"}, ids(c.Departures))
	assert.Empty(t, c.StayThrough, "arrival or departure day itself never counts as stay-through")
}

func TestCategorize_StayThroughIsStrict(t *testing.T) {
	// An arrival on the target date spans it but does not stay through.
	target := time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC)
	spanning := res("A1", "101", "2024-05-17", "2024-05-19", "confirmed")

	c := Categorize([]*model.Reservation{spanning}, target)
	assert.Equal(t, []string{"A1"}, ids(c.Arrivals))
	assert.Empty(t, c.StayThrough)

	// One day later the same booking is stay-through only.
	c = Categorize([]*model.Reservation{spanning}, target.AddDate(0, 0, 1))
	assert.Empty(t, c.Arrivals)
	assert.Empty(t, c.Departures)
	assert.Equal(t, []string{"A1"}, ids(c.StayThrough))
}

func TestCategorize_SortsByRoomLabelStringwise(t *testing.T) {
	target := time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC)

	c := Categorize([]*model.Reservation{
		res("a", "2", "2024-05-17", "2024-05-18", "confirmed"),
		res("b", "101", "2024-05-17", "2024-05-18", "confirmed"),
		res("c", "Room 999999-1", "2024-05-17", "2024-05-18", "confirmed"),
	}, target)

	require.Len(t, c.Arrivals, 3)
	assert.Equal(t, []string{"101", "2", "Room 999999-1"}, []string{
		c.Arrivals[0].RoomName, c.Arrivals[1].RoomName, c.Arrivals[2].RoomName,
	})
}

func TestCategorize_Idempotent(t *testing.T) {
	target := time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC)
	reservations := []*model.Reservation{
		res("a", "201", "2024-05-17", "2024-05-18", "confirmed"),
		res("b", "101", "2024-05-17", "2024-05-18", "confirmed"),
		res("c", "103", "2024-05-16", "2024-05-18", "confirmed"),
	}

	first := Categorize(reservations, target)
	second := Categorize(reservations, target)

	assert.Equal(t, ids(first.Arrivals), ids(second.Arrivals))
	assert.Equal(t, ids(first.Departures), ids(second.Departures))
	assert.Equal(t, ids(first.StayThrough), ids(second.StayThrough))
}
