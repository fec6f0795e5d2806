package fetch

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booking-report-backend/internal/beds24"
)

var target = time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC)

// bookingJSON renders a minimal raw booking record.
func bookingJSON(id, guest string) string {
	return fmt.Sprintf(`{"id":%s,"lastName":%q,"arrival":"2024-05-17","departure":"2024-05-19"}`, id, guest)
}

func TestFetcher_ForDate(t *testing.T) {
	var queries []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		queries = append(queries, q.Get("filter"))

		switch q.Get("filter") {
		case "arrivals":
			assert.Equal(t, "2024-05-17", q.Get("arrivalFrom"))
			assert.Equal(t, "2024-05-17", q.Get("arrivalTo"))
			fmt.Fprintf(w, `{"data":[%s,%s]}`, bookingJSON("1", "Byron"), bookingJSON("2", "Lovelace"))
		case "departures":
			assert.Equal(t, "2024-05-17", q.Get("departureFrom"))
			assert.Equal(t, "2024-05-17", q.Get("departureTo"))
			fmt.Fprintf(w, `{"data":[%s]}`, bookingJSON("3", "Hopper"))
		default:
			// Stay-through window: 30 days either side of the target.
			assert.Equal(t, "2024-04-17", q.Get("arrivalFrom"))
			assert.Equal(t, "2024-05-17", q.Get("arrivalTo"))
			assert.Equal(t, "2024-05-17", q.Get("departureFrom"))
			assert.Equal(t, "2024-06-16", q.Get("departureTo"))
			fmt.Fprintf(w, `{"data":[%s]}`, bookingJSON("4", "Hamilton"))
		}
	}))
	defer server.Close()

	f := NewFetcher(beds24.NewClient(server.URL, 0))
	bookings, warnings := f.ForDate(context.Background(), "tok", target)

	assert.Empty(t, warnings)
	assert.Equal(t, []string{"arrivals", "departures", ""}, queries)
	require.Len(t, bookings, 4)
	assert.Equal(t, "1", bookings[0].ID.String())
	assert.Equal(t, "4", bookings[3].ID.String())
}

func TestFetcher_DeduplicatesKeepingFirstOccurrence(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("filter") {
		case "arrivals":
			fmt.Fprintf(w, `{"data":[%s]}`, bookingJSON(`"123"`, "First"))
		case "departures":
			fmt.Fprintf(w, `{"data":[%s]}`, bookingJSON(`"123"`, "Duplicate"))
		default:
			fmt.Fprintf(w, `{"data":[%s,%s]}`, bookingJSON(`"123"`, "Duplicate"), bookingJSON(`"456"`, "Other"))
		}
	}))
	defer server.Close()

	f := NewFetcher(beds24.NewClient(server.URL, 0))
	bookings, warnings := f.ForDate(context.Background(), "tok", target)

	assert.Empty(t, warnings)
	require.Len(t, bookings, 2)
	assert.Equal(t, "123", bookings[0].ID.String())
	assert.Equal(t, "First", bookings[0].LastName)
	assert.Equal(t, "456", bookings[1].ID.String())
}

func TestFetcher_PartialFailureReturnsUnionOfSuccesses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("filter") {
		case "departures":
			w.WriteHeader(http.StatusTooManyRequests)
		case "arrivals":
			fmt.Fprintf(w, `{"data":[%s]}`, bookingJSON("1", "Byron"))
		default:
			fmt.Fprintf(w, `{"data":[%s]}`, bookingJSON("2", "Hamilton"))
		}
	}))
	defer server.Close()

	f := NewFetcher(beds24.NewClient(server.URL, 0))
	bookings, warnings := f.ForDate(context.Background(), "tok", target)

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "departures query failed")
	assert.Contains(t, warnings[0], "rate limit exceeded")
	assert.Len(t, bookings, 2)
}

func TestFetcher_AllQueriesFailing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	f := NewFetcher(beds24.NewClient(server.URL, 0))
	bookings, warnings := f.ForDate(context.Background(), "tok", target)

	assert.Empty(t, bookings)
	assert.Len(t, warnings, 3)
}
