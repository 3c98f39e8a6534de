package cli

import (
	"github.com/spf13/cobra"

	"github.com/avstrong/resortrates/internal/app"
)

func newServeCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the quote API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(st.l, st.conf)
		},
	}
}
