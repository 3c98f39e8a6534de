package pricing

import (
	"time"

	"github.com/avstrong/resortrates/internal/catalog"
)

// Sequence lays the stays back to back starting on checkIn.
func Sequence(checkIn time.Time, inputs []StayInput) []Stay {
	stays := make([]Stay, 0, len(inputs))
	next := catalog.Date(checkIn)

	for _, in := range inputs {
		stay := Stay{
			RoomType: in.RoomType,
			Nights:   in.Nights,
			CheckIn:  next,
		}

		stays = append(stays, stay)
		next = stay.CheckOut()
	}

	return stays
}

func TotalNights(inputs []StayInput) int {
	var nights int
	for _, in := range inputs {
		nights += in.Nights
	}

	return nights
}

func ValidateMinStay(resort *catalog.Resort, totalNights int) error {
	if totalNights < resort.MinStay {
		return &MinStayViolationError{
			Resort:  resort.Name,
			MinStay: resort.MinStay,
			Nights:  totalNights,
		}
	}

	return nil
}
