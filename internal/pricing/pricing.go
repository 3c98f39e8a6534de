package pricing

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/avstrong/resortrates/internal/catalog"
	"github.com/avstrong/resortrates/internal/logger"
)

const tracerName = "github.com/avstrong/resortrates/internal/pricing"

type idGenerator interface {
	GetID(ctx context.Context) (string, error)
}

type storage interface {
	GetResort(ctx context.Context, name string) (*catalog.Resort, error)
}

type Config struct {
	// StrictSeasons fails the whole quote when a stay has no season instead
	// of pricing the remaining stays.
	StrictSeasons bool
}

type Engine struct {
	l           *logger.Logger
	storage     storage
	idGenerator idGenerator
	conf        Config
	tracer      trace.Tracer
}

func New(l *logger.Logger, storage storage, idGenerator idGenerator, conf Config) *Engine {
	return &Engine{
		l:           l,
		storage:     storage,
		idGenerator: idGenerator,
		conf:        conf,
		tracer:      otel.Tracer(tracerName),
	}
}

//nolint:cyclop // field by field validation
func (r *Request) validate() error {
	inputErr := newInputError()

	if r.Resort == "" {
		inputErr.addError("resort", "provide resort")
	}

	if r.CheckIn.IsZero() {
		inputErr.addError("check_in", "provide check-in date")
	}

	if len(r.Stays) == 0 {
		inputErr.addError("stays", "provide at least one stay")
	}

	if len(r.Stays) > MaxStays {
		inputErr.addError("stays", fmt.Sprintf("a booking can be split into at most %d stays", MaxStays))
	}

	for idx, stay := range r.Stays {
		if stay.RoomType == "" {
			inputErr.addError(fmt.Sprintf("stays[%d].room_type", idx), "provide room type")
		}

		if stay.Nights < 1 || stay.Nights > MaxNights {
			inputErr.addError(fmt.Sprintf("stays[%d].nights", idx), fmt.Sprintf("nights must be between 1 and %d", MaxNights))
		}
	}

	if nights := TotalNights(r.Stays); nights > MaxNights {
		inputErr.addError("stays", fmt.Sprintf("a booking can span at most %d nights", MaxNights))
	}

	if r.Guests.Adults < 1 {
		inputErr.addError("adults", "at least one adult is required")
	}

	if r.Guests.Children < 0 {
		inputErr.addError("children", "children must not be negative")
	}

	if r.Guests.Adults > MaxGuests || r.Guests.Children > MaxGuests || r.Guests.Total() > MaxGuests {
		inputErr.addError("guests", fmt.Sprintf("a booking can hold at most %d guests", MaxGuests))
	}

	if r.Rooms < 1 {
		inputErr.addError("rooms", "at least one room is required")
	}

	if r.Rooms > MaxRooms {
		inputErr.addError("rooms", fmt.Sprintf("a booking can hold at most %d rooms", MaxRooms))
	}

	if inputErr.fieldsCount() > 0 {
		return inputErr
	}

	return nil
}

func checkRoomTypes(resort *catalog.Resort, stays []StayInput) error {
	inputErr := newInputError()

	for idx, stay := range stays {
		if !resort.HasRoomType(stay.RoomType) {
			inputErr.addError(
				fmt.Sprintf("stays[%d].room_type", idx),
				fmt.Sprintf("%s has no room type %q", resort.Name, stay.RoomType),
			)
		}
	}

	if inputErr.fieldsCount() > 0 {
		return inputErr
	}

	return nil
}

func (e *Engine) resort(ctx context.Context, name string) (*catalog.Resort, error) {
	resort, err := e.storage.GetResort(ctx, name)
	if errors.Is(err, catalog.ErrResortNotFound) {
		return nil, &UnknownResortError{Name: name, err: err}
	}

	if err != nil {
		return nil, fmt.Errorf("get resort %q from storage: %w", name, err)
	}

	return resort, nil
}

func (e *Engine) quoteID(ctx context.Context) (string, error) {
	if id, ok := RequestIDFromContext(ctx); ok && id != "" {
		return id, nil
	}

	id, err := e.idGenerator.GetID(ctx)
	if err != nil {
		return "", ErrNextID
	}

	return id, nil
}

// Quote prices a booking request against the catalog.
//
//nolint:funlen // linear pipeline
func (e *Engine) Quote(ctx context.Context, req *Request) (_ *Quote, err error) {
	ctx, span := e.tracer.Start(ctx, "pricing.Quote", trace.WithAttributes(
		attribute.String("resort", req.Resort),
		attribute.Int("stays", len(req.Stays)),
	))

	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}

		span.End()
	}()

	if err := req.validate(); err != nil {
		return nil, err
	}

	resort, err := e.resort(ctx, req.Resort)
	if err != nil {
		return nil, err
	}

	if err := checkRoomTypes(resort, req.Stays); err != nil {
		return nil, err
	}

	guests := req.Guests

	var warnings []string

	if resort.AdultOnly && guests.Children > 0 {
		warnings = append(warnings, fmt.Sprintf(
			"%s is an adult-only resort, %d children removed from the booking", resort.Name, guests.Children,
		))
		e.l.LogWarnf("Adult-only resort %s requested with %d children, pricing adults only", resort.Name, guests.Children)

		guests.Children = 0
	}

	nights := TotalNights(req.Stays)
	if err := ValidateMinStay(resort, nights); err != nil {
		return nil, err
	}

	stays := Sequence(req.CheckIn, req.Stays)
	breakdown := ComputeTotal(resort, stays, guests, req.Rooms)

	for _, skipped := range breakdown.Skipped {
		span.AddEvent("stay.skipped", trace.WithAttributes(
			attribute.Int("stay", skipped.Stay),
			attribute.String("check_in", skipped.CheckIn.Format(catalog.DateLayout)),
		))

		if e.conf.StrictSeasons {
			return nil, skipped
		}

		e.l.LogWarnf("Stay %d of %s quote skipped: %v", skipped.Stay, resort.Name, skipped.Unwrap())
		warnings = append(warnings, skipped.Error())
	}

	id, err := e.quoteID(ctx)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String("quote.id", id), attribute.Int64("quote.total_minor", int64(breakdown.Total)))

	return &Quote{
		ID:       id,
		Resort:   resort.Name,
		Currency: resort.Currency,
		CheckIn:  stays[0].CheckIn,
		CheckOut: stays[len(stays)-1].CheckOut(),
		Nights:   nights,
		Guests:   guests,
		Rooms:    req.Rooms,
		Stays:    breakdown.Stays,
		Total:    breakdown.Total,
		Complete: len(breakdown.Skipped) == 0,
		Warnings: warnings,
	}, nil
}
