package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"booking-report-backend/internal/model"
)

const dateLayout = "2006-01-02"

// guestCount formats one reservation's occupancy, e.g. "2A" or "2A+1C".
func guestCount(r *model.Reservation) string {
	s := fmt.Sprintf("%dA", r.Adults)
	if r.Children > 0 {
		s += fmt.Sprintf("+%dC", r.Children)
	}
	return s
}

// guestSummary totals a section's occupancy, e.g. "5A" or "5A +2C".
func guestSummary(rs []*model.Reservation) string {
	var adults, children int
	for _, r := range rs {
		adults += r.Adults
		children += r.Children
	}
	if children > 0 {
		return fmt.Sprintf("%dA +%dC", adults, children)
	}
	return fmt.Sprintf("%dA", adults)
}

// shortDate renders an ISO date as "Mon 02.01", keeping the raw value when
// it does not parse.
func shortDate(iso string) string {
	t, err := time.Parse(dateLayout, iso)
	if err != nil {
		return iso
	}
	return t.Format("Mon 02.01")
}

type column struct {
	header string
	width  float64
	align  string
	value  func(*model.Reservation) string
}

var frontDeskColumns = []column{
	{"Room", 16, "C", func(r *model.Reservation) string { return r.RoomName }},
	{"Guest Name", 42, "L", func(r *model.Reservation) string {
		if r.GuestName == "" {
			return "No Name"
		}
		return r.GuestName
	}},
	{"Guests", 14, "C", guestCount},
	{"Nights", 14, "C", func(r *model.Reservation) string { return fmt.Sprintf("%d", r.Nights) }},
	{"Check-In", 22, "C", func(r *model.Reservation) string { return shortDate(r.Checkin) }},
	{"Check-Out", 22, "C", func(r *model.Reservation) string { return shortDate(r.Checkout) }},
	{"Notes", 60, "L", func(r *model.Reservation) string { return r.Notes }},
}

var housekeepingColumns = []column{
	{"Room", 38, "C", func(r *model.Reservation) string { return r.RoomName }},
	{"Guests", 26, "C", guestCount},
	{"Nights", 22, "C", func(r *model.Reservation) string { return fmt.Sprintf("%d", r.Nights) }},
	{"Check-In", 32, "C", func(r *model.Reservation) string { return shortDate(r.Checkin) }},
	{"Check-Out", 32, "C", func(r *model.Reservation) string { return shortDate(r.Checkout) }},
}

// RenderFrontDesk renders the reception report with guest names and notes.
func RenderFrontDesk(c Categories, target, generatedAt time.Time) ([]byte, error) {
	return render("Front Desk Report", frontDeskColumns, c, target, generatedAt)
}

// RenderHousekeeping renders the cleaning report without guest details.
func RenderHousekeeping(c Categories, target, generatedAt time.Time) ([]byte, error) {
	return render("Housekeeping Report", housekeepingColumns, c, target, generatedAt)
}

func render(title string, cols []column, c Categories, target, generatedAt time.Time) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(true, 12)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, fmt.Sprintf("%s - %s", title, target.Format("January 2, 2006")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	sections := []struct {
		name string
		rows []*model.Reservation
	}{
		{"ARRIVALS", c.Arrivals},
		{"DEPARTURES", c.Departures},
		{"STAYING THROUGH", c.StayThrough},
	}

	for _, section := range sections {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(0, 9, fmt.Sprintf("%s - %s", section.name, guestSummary(section.rows)), "", 1, "L", false, 0, "")

		writeTable(pdf, cols, section.rows)
		pdf.Ln(6)
	}

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, fmt.Sprintf("Report generated on %s via Beds24 API v2", generatedAt.Format("2006-01-02 15:04:05")), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", title, err)
	}
	return buf.Bytes(), nil
}

func writeTable(pdf *fpdf.Fpdf, cols []column, rows []*model.Reservation) {
	if len(rows) == 0 {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.CellFormat(0, 7, "No reservations for this category", "1", 1, "L", false, 0, "")
		return
	}

	pdf.SetFont("Helvetica", "B", 10)
	for _, col := range cols {
		pdf.CellFormat(col.width, 7, col.header, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, r := range rows {
		for _, col := range cols {
			pdf.CellFormat(col.width, 7, col.value(r), "1", 0, col.align, false, 0, "")
		}
		pdf.Ln(-1)
	}
}
