package catalog

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"golang.org/x/text/currency"
)

const DefaultCurrency = "USD"

// Load parses a catalog document. Resorts and room types keep the order in
// which the document lists them. fallbackCurrency applies to resorts and
// documents that do not name a currency.
func Load(data []byte, fallbackCurrency string) ([]*Resort, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("catalog is not valid JSON: %w", ErrMalformed)
	}

	doc := gjson.ParseBytes(data)

	resortsNode := doc.Get("resorts")
	if !resortsNode.IsObject() {
		return nil, fmt.Errorf("catalog has no resorts object: %w", ErrMalformed)
	}

	docCurrency := fallbackCurrency
	if c := doc.Get("currency"); c.Exists() {
		docCurrency = c.String()
	}

	if docCurrency == "" {
		docCurrency = DefaultCurrency
	}

	verr := newValidationError()

	var resorts []*Resort

	seen := make(map[string]bool)

	resortsNode.ForEach(func(key, value gjson.Result) bool {
		if seen[key.String()] {
			verr.add("resorts", "resort %q is listed twice", key.String())

			return true
		}

		seen[key.String()] = true

		resort := parseResort(key.String(), value, docCurrency, verr)
		if resort != nil {
			resorts = append(resorts, resort)
		}

		return true
	})

	if len(resorts) == 0 && verr.fieldsCount() == 0 {
		verr.add("resorts", "at least one resort is required")
	}

	if verr.fieldsCount() > 0 {
		return nil, verr
	}

	return resorts, nil
}

func LoadFile(path, fallbackCurrency string) ([]*Resort, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file %s: %w", path, err)
	}

	resorts, err := Load(data, fallbackCurrency)
	if err != nil {
		return nil, fmt.Errorf("load catalog file %s: %w", path, err)
	}

	return resorts, nil
}

//nolint:funlen,cyclop // field by field validation
func parseResort(name string, node gjson.Result, fallbackCurrency string, verr *ValidationError) *Resort {
	prefix := fmt.Sprintf("resorts[%s]", name)
	errsBefore := verr.messagesCount()

	if name == "" {
		verr.add("resorts", "resort name must not be empty")
	}

	resort := &Resort{
		Name:     name,
		Currency: fallbackCurrency,
	}

	if c := node.Get("currency"); c.Exists() {
		resort.Currency = c.String()
	}

	if _, err := currency.ParseISO(resort.Currency); err != nil {
		verr.add(prefix+".currency", "unknown currency %q", resort.Currency)
	}

	seasons := parseSeasons(prefix, node.Get("seasons"), verr)
	count := len(seasons)

	rates := node.Get("room_rates")
	if !rates.IsObject() || len(rates.Map()) == 0 {
		verr.add(prefix+".room_rates", "at least one room type is required")

		rates = gjson.Result{}
	}

	rates.ForEach(func(room, values gjson.Result) bool {
		field := fmt.Sprintf("%s.room_rates[%s]", prefix, room.String())
		amounts := parseSchedule(field, values, count, verr)

		resort.RoomTypes = append(resort.RoomTypes, room.String())

		for idx := range seasons {
			if idx < len(amounts) {
				seasons[idx].RoomRates[room.String()] = amounts[idx]
			}
		}

		return true
	})

	charges := node.Get("extra_charges")

	if adult := charges.Get("adult"); adult.Exists() {
		for idx, amount := range parseSchedule(prefix+".extra_charges.adult", adult, count, verr) {
			if idx < count {
				seasons[idx].ExtraAdult = amount
			}
		}
	} else {
		verr.add(prefix+".extra_charges.adult", "adult surcharge schedule is required")
	}

	if child := charges.Get("child"); child.Exists() {
		for idx, amount := range parseSchedule(prefix+".extra_charges.child", child, count, verr) {
			if idx < count {
				seasons[idx].ExtraChild = amount
			}
		}
	}

	resort.GreenTax = parseAmount(prefix+".extra_charges.green_tax", charges.Get("green_tax"), verr)
	resort.ExtraNightCharge = parseAmount(prefix+".extra_night_charge", node.Get("extra_night_charge"), verr)

	minStay := node.Get("min_stay")
	switch {
	case !minStay.Exists():
		resort.MinStay = 1
	case minStay.Type != gjson.Number || minStay.Int() < 1 || float64(minStay.Int()) != minStay.Float():
		verr.add(prefix+".min_stay", "must be a whole number of at least 1")
	default:
		resort.MinStay = int(minStay.Int())
	}

	resort.AdultOnly = node.Get("adult_only").Bool()
	resort.Note = node.Get("note").String()
	resort.Seasons = seasons

	if i, j, ok := resort.Overlaps(); ok {
		verr.add(prefix+".seasons", "season %d overlaps season %d", i, j)
	}

	if verr.messagesCount() > errsBefore {
		return nil
	}

	return resort
}

func parseSeasons(prefix string, node gjson.Result, verr *ValidationError) []Season {
	field := prefix + ".seasons"

	if !node.IsArray() || len(node.Array()) == 0 {
		verr.add(field, "at least one season is required")

		return nil
	}

	items := node.Array()
	seasons := make([]Season, 0, len(items))

	for idx, item := range items {
		start, end := item.Get("0"), item.Get("1")
		if item.IsObject() {
			start, end = item.Get("start"), item.Get("end")
		}

		from, errFrom := ParseDate(start.String())
		to, errTo := ParseDate(end.String())

		if errFrom != nil || errTo != nil {
			verr.add(field, "season %d must be a [start, end] pair of %s dates", idx, DateLayout)

			continue
		}

		if to.Before(from) {
			verr.add(field, "season %d ends before it starts", idx)
		}

		seasons = append(seasons, Season{
			Start:     from,
			End:       to,
			RoomRates: make(map[string]Money),
		})
	}

	return seasons
}

func parseSchedule(field string, node gjson.Result, count int, verr *ValidationError) []Money {
	if !node.IsArray() {
		verr.add(field, "must be an array with one amount per season")

		return nil
	}

	items := node.Array()
	if len(items) != count {
		verr.add(field, "has %d amounts for %d seasons", len(items), count)
	}

	amounts := make([]Money, 0, len(items))

	for _, item := range items {
		amounts = append(amounts, parseAmount(field, item, verr))
	}

	return amounts
}

func parseAmount(field string, node gjson.Result, verr *ValidationError) Money {
	if !node.Exists() || node.Type == gjson.Null {
		return 0
	}

	if node.Type != gjson.Number {
		verr.add(field, "must be a number, got %s", node.Raw)

		return 0
	}

	amount, err := moneyFromFloat(node.Float())
	if err != nil {
		verr.add(field, "%v", err)

		return 0
	}

	return amount
}
