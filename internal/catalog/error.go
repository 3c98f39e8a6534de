package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrResortNotFound  = errors.New("resort not found")
	ErrNoSeason        = errors.New("no season covers date")
	ErrNegativeAmount  = errors.New("amount must not be negative")
	ErrAmountPrecision = errors.New("amount has more than two fractional digits")
	ErrAmountTooLarge  = errors.New("amount exceeds the catalog maximum")
	ErrMalformed       = errors.New("malformed catalog")
)

// ValidationError collects every inconsistency found while loading a catalog.
type ValidationError struct {
	fields map[string][]string
}

func newValidationError() *ValidationError {
	return &ValidationError{
		fields: make(map[string][]string),
	}
}

func IsValidationError(err error) *ValidationError {
	if err == nil {
		return nil
	}

	var validationError *ValidationError

	if errors.As(err, &validationError) {
		return validationError
	}

	return nil
}

func (ve *ValidationError) add(field, format string, v ...any) {
	ve.fields[field] = append(ve.fields[field], fmt.Sprintf(format, v...))
}

func (ve *ValidationError) fieldsCount() int {
	return len(ve.fields)
}

func (ve *ValidationError) messagesCount() int {
	n := 0
	for _, msgs := range ve.fields {
		n += len(msgs)
	}

	return n
}

func (ve *ValidationError) Fields() map[string][]string {
	return ve.fields
}

func (ve *ValidationError) Error() string {
	keys := make([]string, 0, len(ve.fields))
	for k := range ve.fields {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(ve.fields[k], "; ")))
	}

	return "invalid catalog: " + strings.Join(parts, ", ")
}
