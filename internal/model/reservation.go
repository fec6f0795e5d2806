package model

import (
	"fmt"
	"log"
	"strings"
	"time"

	"booking-report-backend/internal/beds24"
	"booking-report-backend/internal/rooms"
)

const dateLayout = "2006-01-02"

// StatusBlack marks a blocked entry that must never appear on a report.
const StatusBlack = "black"

// MalformedRecordError reports a booking record whose dates cannot be
// parsed. It aborts the whole invocation rather than being skipped.
type MalformedRecordError struct {
	BookingID string
	Field     string
	Err       error
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("booking %s has malformed %s date: %v", e.BookingID, e.Field, e.Err)
}

func (e *MalformedRecordError) Unwrap() error { return e.Err }

// Reservation is the canonical in-memory shape of one booking record.
// Instances are built once per fetched record and never mutated.
type Reservation struct {
	BookingID string
	GuestName string
	RoomName  string
	RoomID    string
	UnitID    string
	Checkin   string
	Checkout  string
	Status    string
	Adults    int
	Children  int
	Nights    int
	Notes     string

	CheckinDate  time.Time
	CheckoutDate time.Time
}

// Parse normalizes one raw booking record. Room and unit identifiers are
// canonicalized before the table lookup; unmatched pairs get the synthesized
// label. Unparseable arrival or departure dates fail the record with a
// *MalformedRecordError.
func Parse(raw beds24.RawBooking, table rooms.Table) (*Reservation, error) {
	bookingID := raw.ID.String()

	checkin, err := time.Parse(dateLayout, raw.Arrival)
	if err != nil {
		return nil, &MalformedRecordError{BookingID: bookingID, Field: "arrival", Err: err}
	}
	checkout, err := time.Parse(dateLayout, raw.Departure)
	if err != nil {
		return nil, &MalformedRecordError{BookingID: bookingID, Field: "departure", Err: err}
	}

	nights := int(checkout.Sub(checkin).Hours() / 24)
	if nights < 0 {
		log.Printf("Warning: booking %s departs before it arrives (%s -> %s)", bookingID, raw.Arrival, raw.Departure)
	}

	roomID := rooms.Normalize(raw.RoomID.String())
	unitID := rooms.Normalize(raw.UnitID.String())

	return &Reservation{
		BookingID:    bookingID,
		GuestName:    strings.TrimSpace(raw.LastName + " " + raw.FirstName),
		RoomName:     table.Label(roomID, unitID),
		RoomID:       roomID,
		UnitID:       unitID,
		Checkin:      raw.Arrival,
		Checkout:     raw.Departure,
		Status:       raw.Status,
		Adults:       raw.NumAdult,
		Children:     raw.NumChild,
		Nights:       nights,
		Notes:        raw.Notes,
		CheckinDate:  checkin,
		CheckoutDate: checkout,
	}, nil
}

// ParseAll normalizes a batch of raw records. The first malformed record
// aborts the batch.
func ParseAll(raws []beds24.RawBooking, table rooms.Table) ([]*Reservation, error) {
	reservations := make([]*Reservation, 0, len(raws))
	for _, raw := range raws {
		r, err := Parse(raw, table)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, r)
	}
	return reservations, nil
}
