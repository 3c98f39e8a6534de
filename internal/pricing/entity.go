package pricing

import (
	"time"

	"github.com/avstrong/resortrates/internal/catalog"
)

// MaxStays is how many consecutive room categories a single booking may split into.
const MaxStays = 2

// Request bounds. With catalog amounts capped at catalog.MaxAmount they keep
// every charge well inside int64 minor units.
const (
	MaxNights = 365
	MaxRooms  = 100
	MaxGuests = 100
)

type StayInput struct {
	RoomType string `json:"room_type"`
	Nights   int    `json:"nights"`
}

type Stay struct {
	RoomType string    `json:"room_type"`
	Nights   int       `json:"nights"`
	CheckIn  time.Time `json:"check_in"`
}

func (s Stay) CheckOut() time.Time {
	return s.CheckIn.AddDate(0, 0, s.Nights)
}

type Guests struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
}

func (g Guests) Total() int {
	return g.Adults + g.Children
}

type Request struct {
	Resort  string
	CheckIn time.Time
	Stays   []StayInput
	Guests  Guests
	Rooms   int
}

type ChargeLine struct {
	Charge string        `json:"charge"`
	Amount catalog.Money `json:"amount"`
}

type StayQuote struct {
	Number   int           `json:"number"`
	Stay     Stay          `json:"stay"`
	Season   int           `json:"season"`
	Charges  []ChargeLine  `json:"charges"`
	Subtotal catalog.Money `json:"subtotal"`
	Skipped  bool          `json:"skipped"`
}

// Charge returns the amount of the named charge, zero when the stay does not carry it.
func (sq StayQuote) Charge(name string) catalog.Money {
	for _, line := range sq.Charges {
		if line.Charge == name {
			return line.Amount
		}
	}

	return 0
}

type Breakdown struct {
	Stays   []StayQuote
	Total   catalog.Money
	Skipped []*NoSeasonError
}

type Quote struct {
	ID       string        `json:"id"`
	Resort   string        `json:"resort"`
	Currency string        `json:"currency"`
	CheckIn  time.Time     `json:"check_in"`
	CheckOut time.Time     `json:"check_out"`
	Nights   int           `json:"nights"`
	Guests   Guests        `json:"guests"`
	Rooms    int           `json:"rooms"`
	Stays    []StayQuote   `json:"stays"`
	Total    catalog.Money `json:"total"`
	Complete bool          `json:"complete"`
	Warnings []string      `json:"warnings,omitempty"`
}
