package catalog

import (
	"fmt"
	"time"
)

// SeasonIndex returns the index of the first season containing date.
func (r *Resort) SeasonIndex(date time.Time) (int, error) {
	for idx, season := range r.Seasons {
		if season.Contains(date) {
			return idx, nil
		}
	}

	return -1, fmt.Errorf("%s on %s: %w", r.Name, Date(date).Format(DateLayout), ErrNoSeason)
}

func (r *Resort) Season(date time.Time) (*Season, error) {
	idx, err := r.SeasonIndex(date)
	if err != nil {
		return nil, err
	}

	return &r.Seasons[idx], nil
}

// Overlaps reports the first pair of seasons sharing at least one date.
func (r *Resort) Overlaps() (int, int, bool) {
	for i := range r.Seasons {
		for j := i + 1; j < len(r.Seasons); j++ {
			a, b := r.Seasons[i], r.Seasons[j]
			if !a.End.Before(b.Start) && !b.End.Before(a.Start) {
				return i, j, true
			}
		}
	}

	return -1, -1, false
}
