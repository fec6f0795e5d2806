// Package fetch retrieves every booking record relevant to a target date
// from the upstream bookings endpoint.
package fetch

import (
	"context"
	"fmt"
	"log"
	"time"

	"booking-report-backend/internal/beds24"
)

const dateLayout = "2006-01-02"

// stayWindowDays bounds the stay-through query. Stays longer than this are
// assumed not to occur.
const stayWindowDays = 30

// Fetcher issues the three date-windowed booking queries that together
// cover arrivals, departures and stay-through reservations.
type Fetcher struct {
	client *beds24.Client
}

// NewFetcher creates a fetcher over the given API client.
func NewFetcher(client *beds24.Client) *Fetcher {
	return &Fetcher{client: client}
}

// ForDate fetches arrivals, departures and stay-through candidates for the
// target date and unions them, deduplicated by booking ID in first-seen
// order. A failed query degrades to an empty result with a warning message;
// the union of whatever succeeded is always returned.
func (f *Fetcher) ForDate(ctx context.Context, accessToken string, target time.Time) ([]beds24.RawBooking, []string) {
	day := target.Format(dateLayout)
	windowStart := target.AddDate(0, 0, -stayWindowDays).Format(dateLayout)
	windowEnd := target.AddDate(0, 0, stayWindowDays).Format(dateLayout)

	queries := []struct {
		name  string
		query beds24.BookingQuery
	}{
		{
			name: "arrivals",
			query: beds24.BookingQuery{
				Filter:      "arrivals",
				ArrivalFrom: day,
				ArrivalTo:   day,
			},
		},
		{
			name: "departures",
			query: beds24.BookingQuery{
				Filter:        "departures",
				DepartureFrom: day,
				DepartureTo:   day,
			},
		},
		{
			name: "stay-through",
			query: beds24.BookingQuery{
				ArrivalFrom:   windowStart,
				ArrivalTo:     day,
				DepartureFrom: day,
				DepartureTo:   windowEnd,
			},
		},
	}

	var combined []beds24.RawBooking
	var warnings []string
	seen := make(map[string]struct{})

	for _, q := range queries {
		bookings, err := f.client.ListBookings(ctx, accessToken, q.query)
		if err != nil {
			msg := fmt.Sprintf("%s query failed: %v", q.name, err)
			log.Printf("Warning: %s", msg)
			warnings = append(warnings, msg)
			continue
		}
		for _, b := range bookings {
			id := b.ID.String()
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			combined = append(combined, b)
		}
	}

	return combined, warnings
}
