package domain

import (
	"math"
	"strings"
	"time"
)

// BusinessLocation is where the properties are; calendar days are counted in
// this zone.
const BusinessLocation = "Asia/Kolkata"

var businessZone = loadBusinessZone()

func loadBusinessZone() *time.Location {
	loc, err := time.LoadLocation(BusinessLocation)
	if err != nil {
		return time.FixedZone("IST", 5*3600+1800)
	}
	return loc
}

// NumOfDays is the number of started days between start and end, 0 when
// either is missing or end is not after start.
func NumOfDays(b Booking) int {
	start, ok := ParseInstant(b.StartDateTime)
	if !ok {
		return 0
	}
	end, ok := ParseInstant(b.EndDateTime)
	if !ok {
		return 0
	}
	if !end.After(start) {
		return 0
	}
	return int(math.Ceil(end.Sub(start).Hours() / 24))
}

// AllProperties lists the properties of the events followed by those of the
// booking, without duplicates.
func AllProperties(b Booking) []Property {
	seen := map[Property]bool{}
	out := []Property{}
	add := func(p Property) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	for _, e := range b.Events {
		for _, p := range e.Properties {
			add(p)
		}
	}
	for _, p := range b.Properties {
		add(p)
	}
	return out
}

// PropertyDBKey is the column-friendly form of a property: "Meadow Lane"
// becomes "meadowlane".
func PropertyDBKey(p Property) string {
	return strings.ReplaceAll(strings.ToLower(string(p)), " ", "")
}

func PropertyDBKeys(props []Property) []string {
	keys := make([]string, 0, len(props))
	for _, p := range props {
		keys = append(keys, PropertyDBKey(p))
	}
	return keys
}

// LocalDate formats an instant as the business-local calendar day.
func LocalDate(instant string) string {
	t, ok := ParseInstant(instant)
	if !ok {
		return ""
	}
	return t.In(businessZone).Format("2006-01-02")
}

func GroupByStartDate(bookings []Booking) map[string][]Booking {
	return groupBy(bookings, func(b Booking) string { return b.StartDateTime })
}

func GroupByCreatedDate(bookings []Booking) map[string][]Booking {
	return groupBy(bookings, func(b Booking) string { return b.CreatedDateTime })
}

func groupBy(bookings []Booking, instant func(Booking) string) map[string][]Booking {
	out := map[string][]Booking{}
	for _, b := range bookings {
		day := LocalDate(instant(b))
		out[day] = append(out[day], b)
	}
	return out
}
