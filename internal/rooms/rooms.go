// Package rooms maps the upstream (room, unit) identifier pairs to the
// human-readable room labels used on the printed reports.
package rooms

import (
	"fmt"
	"strconv"
	"strings"

	"booking-report-backend/config"
)

// Key identifies one bookable unit. Both parts are canonical strings:
// integer-looking identifiers are normalized ("01" and 1 both become "1"),
// anything else is kept verbatim and will simply miss the table.
type Key struct {
	RoomID string
	UnitID string
}

// Table maps unit keys to room labels. At most one label per key.
type Table map[Key]string

// Normalize coerces a raw identifier value into its canonical string form.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	if n, err := strconv.Atoi(s); err == nil {
		return strconv.Itoa(n)
	}
	return s
}

// Label resolves the room label for a raw identifier pair. Unknown pairs get
// a synthesized "Room {roomId}-{unitId}" label.
func (t Table) Label(roomID, unitID string) string {
	room := Normalize(roomID)
	unit := Normalize(unitID)
	if label, ok := t[Key{RoomID: room, UnitID: unit}]; ok {
		return label
	}
	return fmt.Sprintf("Room %s-%s", room, unit)
}

// FromConfig builds a lookup table from configured entries, falling back to
// the built-in property table when none are configured.
func FromConfig(entries []config.RoomEntry) Table {
	if len(entries) == 0 {
		return defaultTable()
	}
	t := make(Table, len(entries))
	for _, e := range entries {
		t[Key{RoomID: Normalize(e.RoomID), UnitID: Normalize(e.UnitID)}] = e.Label
	}
	return t
}

// defaultTable is the property's room plan.
func defaultTable() Table {
	plan := map[string]map[string]string{
		"564321": {"1": "101", "2": "201", "3": "301", "4": "302"},
		"564327": {"1": "102", "2": "202"},
		"564325": {"1": "103", "2": "203"},
		"564328": {"1": "104", "2": "204"},
		"564326": {"1": "105", "2": "106", "3": "205", "4": "206"},
		"564322": {"1": "404", "2": "504", "3": "604"},
		"564323": {
			"1": "401", "2": "402", "3": "403",
			"4": "501", "5": "502", "6": "503",
			"7": "601", "8": "602", "9": "603",
		},
		"564324": {"1": "405", "2": "505", "3": "605"},
		"570543": {"1": "701"},
		"570545": {"1": "702"},
		"570542": {"1": "703"},
		"570544": {"1": "704"},
		"570546": {"1": "705"},
	}

	t := make(Table)
	for room, units := range plan {
		for unit, label := range units {
			t[Key{RoomID: room, UnitID: unit}] = label
		}
	}
	return t
}
