package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/avstrong/resortrates/internal/app"
	"github.com/avstrong/resortrates/internal/catalog"
)

func newResortsCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "resorts",
		Short: "List resorts and room categories in the rate catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, storage, err := app.Engine(cmd.Context(), st.quietLogger(), st.conf)
			if err != nil {
				return err
			}

			resorts, err := storage.Resorts(cmd.Context())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			bold := color.New(color.Bold)
			warn := color.New(color.FgYellow)

			for _, r := range resorts {
				bold.Fprintf(w, "%s (%s)\n", r.Name, r.Currency)
				fmt.Fprintf(w, "  minimum stay: %d nights\n", r.MinStay)
				fmt.Fprintf(w, "  green tax: %s per guest per night\n", formatMoney(r.GreenTax, r.Currency))

				if r.AdultOnly {
					warn.Fprintf(w, "  adult-only resort, children are not accepted\n")
				}

				if r.Note != "" {
					warn.Fprintf(w, "  note: %s\n", r.Note)
				}

				fmt.Fprintf(w, "  room types: %s\n", strings.Join(r.RoomTypes, ", "))

				for _, s := range r.Seasons {
					fmt.Fprintf(w, "  season %s to %s\n", s.Start.Format(catalog.DateLayout), s.End.Format(catalog.DateLayout))
				}
			}

			return nil
		},
	}
}
