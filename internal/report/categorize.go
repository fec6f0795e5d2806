// Package report turns parsed reservations into the two daily PDF reports.
package report

import (
	"sort"
	"time"

	"booking-report-backend/internal/model"
)

// Categories holds the three report sections for one target date.
type Categories struct {
	Arrivals    []*model.Reservation
	Departures  []*model.Reservation
	StayThrough []*model.Reservation
}

// Categorize partitions reservations by their relation to the target date.
// The three rules are evaluated independently, so a zero-night booking shows
// up as both an arrival and a departure. Entries with status "black" are
// skipped entirely. Each section is sorted by room label using plain string
// comparison, so "101" sorts before "2"; the printed reports have always
// ordered rooms this way.
func Categorize(reservations []*model.Reservation, target time.Time) Categories {
	var c Categories

	targetDay := day(target)
	for _, r := range reservations {
		if r.Status == model.StatusBlack {
			continue
		}
		checkin := day(r.CheckinDate)
		checkout := day(r.CheckoutDate)

		if checkin.Equal(targetDay) {
			c.Arrivals = append(c.Arrivals, r)
		}
		if checkout.Equal(targetDay) {
			c.Departures = append(c.Departures, r)
		}
		if checkin.Before(targetDay) && targetDay.Before(checkout) {
			c.StayThrough = append(c.StayThrough, r)
		}
	}

	sortByRoom(c.Arrivals)
	sortByRoom(c.Departures)
	sortByRoom(c.StayThrough)
	return c
}

func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func sortByRoom(rs []*model.Reservation) {
	sort.SliceStable(rs, func(i, j int) bool {
		return rs[i].RoomName < rs[j].RoomName
	})
}
