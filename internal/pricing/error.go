package pricing

import (
	"errors"
	"fmt"
	"time"

	"github.com/avstrong/resortrates/internal/catalog"
)

var ErrNextID = errors.New("get next id from generator")

type InputError struct {
	fields map[string][]string
}

func newInputError() *InputError {
	return &InputError{
		fields: make(map[string][]string),
	}
}

func IsInputError(err error) *InputError {
	if err == nil {
		return nil
	}

	var inputError *InputError

	if errors.As(err, &inputError) {
		return inputError
	}

	return nil
}

func (ie *InputError) fieldsCount() int {
	return len(ie.fields)
}

func (ie *InputError) addError(field, msg string) {
	ie.fields[field] = append(ie.fields[field], msg)
}

func (ie *InputError) Error() string {
	return fmt.Sprintf("%+v", ie.fields)
}

func (ie *InputError) Fields() map[string][]string {
	return ie.fields
}

type UnknownResortError struct {
	Name string
	err  error
}

func IsUnknownResortError(err error) *UnknownResortError {
	var e *UnknownResortError

	if errors.As(err, &e) {
		return e
	}

	return nil
}

func (e *UnknownResortError) Error() string {
	return fmt.Sprintf("unknown resort %q", e.Name)
}

func (e *UnknownResortError) Unwrap() error {
	return e.err
}

type MinStayViolationError struct {
	Resort  string
	MinStay int
	Nights  int
}

func IsMinStayViolationError(err error) *MinStayViolationError {
	var e *MinStayViolationError

	if errors.As(err, &e) {
		return e
	}

	return nil
}

func (e *MinStayViolationError) Error() string {
	return fmt.Sprintf("minimum stay for %s is %d nights, booking has %d", e.Resort, e.MinStay, e.Nights)
}

// NoSeasonError reports a stay whose check-in date falls outside every contracted season.
type NoSeasonError struct {
	Stay    int
	CheckIn time.Time
	err     error
}

func IsNoSeasonError(err error) *NoSeasonError {
	var e *NoSeasonError

	if errors.As(err, &e) {
		return e
	}

	return nil
}

func (e *NoSeasonError) Error() string {
	return fmt.Sprintf("stay %d: no valid season found for check-in %s", e.Stay, e.CheckIn.Format(catalog.DateLayout))
}

func (e *NoSeasonError) Unwrap() error {
	return e.err
}
