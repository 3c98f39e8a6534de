package catalog

import (
	"slices"
	"time"
)

const DateLayout = "2006-01-02"

// Season is one contracted rate period. Start and End are inclusive.
type Season struct {
	Start      time.Time        `json:"start"`
	End        time.Time        `json:"end"`
	RoomRates  map[string]Money `json:"room_rates"`
	ExtraAdult Money            `json:"extra_adult"`
	ExtraChild Money            `json:"extra_child"`
}

func (s Season) Contains(date time.Time) bool {
	d := Date(date)

	return !d.Before(s.Start) && !d.After(s.End)
}

type Resort struct {
	Name             string   `json:"name"`
	Currency         string   `json:"currency"`
	Seasons          []Season `json:"seasons"`
	GreenTax         Money    `json:"green_tax"`
	MinStay          int      `json:"min_stay"`
	ExtraNightCharge Money    `json:"extra_night_charge"`
	AdultOnly        bool     `json:"adult_only"`
	RoomTypes        []string `json:"room_types"`
	// Note flags catalog values that did not come from the contract sheet.
	Note             string   `json:"note,omitempty"`
}

func (r *Resort) HasRoomType(roomType string) bool {
	return slices.Contains(r.RoomTypes, roomType)
}

// Date truncates t to a civil date at UTC midnight.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}
