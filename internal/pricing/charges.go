package pricing

import (
	"github.com/avstrong/resortrates/internal/catalog"
)

const (
	ChargeBaseRate   = "base_rate"
	ChargeExtraAdult = "extra_adult"
	ChargeExtraChild = "extra_child"
	ChargeGreenTax   = "green_tax"
	ChargeExtraNight = "extra_night_charge"
)

// Base rate covers two adults per room.
const includedAdults = 2

// ChargeInput is everything a charge may look at for one stay.
type ChargeInput struct {
	Resort *catalog.Resort
	Season *catalog.Season
	Stay   Stay
	Guests Guests
	Rooms  int
}

type Charge interface {
	Name() string
	Amount(in ChargeInput) catalog.Money
}

type baseRate struct{}

func (baseRate) Name() string { return ChargeBaseRate }

func (baseRate) Amount(in ChargeInput) catalog.Money {
	return in.Season.RoomRates[in.Stay.RoomType].Times(in.Stay.Nights).Times(in.Rooms)
}

type extraAdult struct{}

func (extraAdult) Name() string { return ChargeExtraAdult }

func (extraAdult) Amount(in ChargeInput) catalog.Money {
	if in.Guests.Adults <= includedAdults {
		return 0
	}

	return in.Season.ExtraAdult.Times(in.Guests.Adults - includedAdults).Times(in.Stay.Nights).Times(in.Rooms)
}

type extraChild struct{}

func (extraChild) Name() string { return ChargeExtraChild }

func (extraChild) Amount(in ChargeInput) catalog.Money {
	return in.Season.ExtraChild.Times(in.Guests.Children).Times(in.Stay.Nights).Times(in.Rooms)
}

// greenTax is levied per guest per night and does not scale with rooms.
type greenTax struct{}

func (greenTax) Name() string { return ChargeGreenTax }

func (greenTax) Amount(in ChargeInput) catalog.Money {
	return in.Resort.GreenTax.Times(in.Guests.Total()).Times(in.Stay.Nights)
}

type extraNight struct{}

func (extraNight) Name() string { return ChargeExtraNight }

func (extraNight) Amount(in ChargeInput) catalog.Money {
	return in.Resort.ExtraNightCharge.Times(in.Rooms).Times(in.Stay.Nights)
}

func Charges() []Charge {
	return []Charge{baseRate{}, extraAdult{}, extraChild{}, greenTax{}, extraNight{}}
}

// ComputeTotal prices every stay on its own season. A stay whose check-in
// falls outside all seasons contributes nothing and is reported in Skipped.
func ComputeTotal(resort *catalog.Resort, stays []Stay, guests Guests, rooms int) Breakdown {
	charges := Charges()

	breakdown := Breakdown{
		Stays: make([]StayQuote, 0, len(stays)),
	}

	for idx, stay := range stays {
		sq := StayQuote{
			Number: idx + 1,
			Stay:   stay,
			Season: -1,
		}

		seasonIdx, err := resort.SeasonIndex(stay.CheckIn)
		if err != nil {
			sq.Skipped = true
			breakdown.Stays = append(breakdown.Stays, sq)
			breakdown.Skipped = append(breakdown.Skipped, &NoSeasonError{
				Stay:    sq.Number,
				CheckIn: stay.CheckIn,
				err:     err,
			})

			continue
		}

		in := ChargeInput{
			Resort: resort,
			Season: &resort.Seasons[seasonIdx],
			Stay:   stay,
			Guests: guests,
			Rooms:  rooms,
		}

		sq.Season = seasonIdx
		sq.Charges = make([]ChargeLine, 0, len(charges))

		for _, charge := range charges {
			amount := charge.Amount(in)
			sq.Charges = append(sq.Charges, ChargeLine{Charge: charge.Name(), Amount: amount})
			sq.Subtotal += amount
		}

		breakdown.Stays = append(breakdown.Stays, sq)
		breakdown.Total += sq.Subtotal
	}

	return breakdown
}
