package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/avstrong/resortrates/internal/app"
	"github.com/avstrong/resortrates/internal/catalog"
	"github.com/avstrong/resortrates/internal/pricing"
)

var ErrStayFormat = errors.New(`stay must look like "Room Type:Nights"`)

type quoteFlags struct {
	resort   string
	checkIn  string
	stays    []string
	adults   int
	children int
	rooms    int
}

func newQuoteCmd(st *state) *cobra.Command {
	var f quoteFlags

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Calculate the total cost of a booking",
		Example: `  resortrates quote --resort "Heritance Aarah" --check-in 2025-06-10 --stay "Beach Villa:4"
  resortrates quote --resort "Heritance Aarah" --check-in 2025-04-27 \
      --stay "Beach Villa:4" --stay "Ocean Villa:3" --adults 3 --rooms 1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := f.request()
			if err != nil {
				return err
			}

			engine, _, err := app.Engine(cmd.Context(), st.quietLogger(), st.conf)
			if err != nil {
				return err
			}

			quote, err := engine.Quote(cmd.Context(), req)
			if inputErr := pricing.IsInputError(err); inputErr != nil {
				for field, msgs := range inputErr.Fields() {
					for _, msg := range msgs {
						color.New(color.FgRed).Fprintf(cmd.ErrOrStderr(), "  %s: %s\n", field, msg)
					}
				}

				return err
			}

			if err != nil {
				return err
			}

			printQuote(cmd.OutOrStdout(), quote)

			return nil
		},
	}

	cmd.Flags().StringVar(&f.resort, "resort", "", "resort name")
	cmd.Flags().StringVar(&f.checkIn, "check-in", "", "check-in date ("+catalog.DateLayout+")")
	cmd.Flags().StringArrayVar(&f.stays, "stay", nil, `room category and nights, "Room Type:Nights" (repeat for a split stay)`)
	cmd.Flags().IntVar(&f.adults, "adults", 2, "adults in the booking") //nolint:gomnd
	cmd.Flags().IntVar(&f.children, "children", 0, "children in the booking")
	cmd.Flags().IntVar(&f.rooms, "rooms", 1, "number of rooms")

	_ = cmd.MarkFlagRequired("resort")
	_ = cmd.MarkFlagRequired("check-in")
	_ = cmd.MarkFlagRequired("stay")

	return cmd
}

func (f quoteFlags) request() (*pricing.Request, error) {
	checkIn, err := catalog.ParseDate(f.checkIn)
	if err != nil {
		return nil, fmt.Errorf("check-in %q: use %s", f.checkIn, catalog.DateLayout)
	}

	stays := make([]pricing.StayInput, 0, len(f.stays))

	for _, raw := range f.stays {
		stay, err := parseStay(raw)
		if err != nil {
			return nil, err
		}

		stays = append(stays, stay)
	}

	return &pricing.Request{
		Resort:  f.resort,
		CheckIn: checkIn,
		Stays:   stays,
		Guests:  pricing.Guests{Adults: f.adults, Children: f.children},
		Rooms:   f.rooms,
	}, nil
}

// parseStay splits on the last colon so room names may contain colons.
func parseStay(raw string) (pricing.StayInput, error) {
	i := strings.LastIndex(raw, ":")
	if i <= 0 || i == len(raw)-1 {
		return pricing.StayInput{}, fmt.Errorf("%q: %w", raw, ErrStayFormat)
	}

	nights, err := strconv.Atoi(strings.TrimSpace(raw[i+1:]))
	if err != nil {
		return pricing.StayInput{}, fmt.Errorf("%q: %w", raw, ErrStayFormat)
	}

	return pricing.StayInput{RoomType: strings.TrimSpace(raw[:i]), Nights: nights}, nil
}

func printQuote(w io.Writer, q *pricing.Quote) {
	warn := color.New(color.FgYellow)
	bold := color.New(color.Bold)

	bold.Fprintf(w, "%s\n", q.Resort)
	fmt.Fprintf(w, "Check-in %s, check-out %s, %d nights, %d adults, %d children, %d rooms\n",
		q.CheckIn.Format(catalog.DateLayout),
		q.CheckOut.Format(catalog.DateLayout),
		q.Nights,
		q.Guests.Adults,
		q.Guests.Children,
		q.Rooms,
	)

	for _, sq := range q.Stays {
		fmt.Fprintf(w, "\nStay %d: %s, %d nights from %s\n",
			sq.Number,
			sq.Stay.RoomType,
			sq.Stay.Nights,
			sq.Stay.CheckIn.Format(catalog.DateLayout),
		)

		if sq.Skipped {
			warn.Fprintf(w, "  not priced, no contracted season\n")

			continue
		}

		for _, line := range sq.Charges {
			fmt.Fprintf(w, "  %-20s %s\n", line.Charge, formatMoney(line.Amount, q.Currency))
		}

		fmt.Fprintf(w, "  %-20s %s\n", "subtotal", formatMoney(sq.Subtotal, q.Currency))
	}

	fmt.Fprintln(w)

	for _, msg := range q.Warnings {
		warn.Fprintf(w, "Warning: %s\n", msg)
	}

	color.New(color.FgGreen, color.Bold).Fprintf(w, "Total Cost for %s: %s\n", q.Resort, formatMoney(q.Total, q.Currency))

	if !q.Complete {
		warn.Fprintf(w, "Total is partial, some stays could not be priced\n")
	}
}
