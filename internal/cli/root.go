package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/avstrong/resortrates/internal/config"
	"github.com/avstrong/resortrates/internal/logger"
)

var longHelp = `
Multi-resort rate calculator.

Prices accommodation bookings from contracted seasonal room rates:
base rate, extra adults, children, green tax and extra-night charges,
with optional split stays across two room categories.`

type state struct {
	l         *logger.Logger
	configDir string
	conf      config.Config
}

// quietLogger keeps one-shot commands silent unless debugging.
func (s *state) quietLogger() *logger.Logger {
	if !s.conf.Debug {
		return logger.Discard()
	}

	return s.l
}

func NewRootCmd(l *logger.Logger) *cobra.Command {
	st := &state{l: l}

	rootCmd := &cobra.Command{
		Use:           "resortrates",
		Short:         "Calculate resort booking costs from contracted rates",
		Long:          longHelp,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := config.Load(st.configDir)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			if cmd.Flags().Changed("catalog") {
				conf.CatalogPath, _ = cmd.Flags().GetString("catalog")
			}

			if cmd.Flags().Changed("strict-seasons") {
				conf.StrictSeasons, _ = cmd.Flags().GetBool("strict-seasons")
			}

			st.conf = conf
			st.l.SetDebug(conf.Debug)

			return nil
		},
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&st.configDir, "config-dir", ".", "directory holding config.env and .env")
	rootCmd.PersistentFlags().String("catalog", "", "rate catalog JSON file (default: bundled catalog)")
	rootCmd.PersistentFlags().Bool("strict-seasons", false, "fail a quote when a stay has no contracted season")

	rootCmd.AddCommand(newServeCmd(st))
	rootCmd.AddCommand(newQuoteCmd(st))
	rootCmd.AddCommand(newResortsCmd(st))

	return rootCmd
}

func Execute(l *logger.Logger) error {
	return execute(NewRootCmd(l), os.Args[1:], os.Stderr)
}

func execute(cmd *cobra.Command, args []string, stderr io.Writer) error {
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		errColorPrint := color.New(color.FgRed).Add(color.Bold)
		if _, printErr := errColorPrint.Fprintf(stderr, "error: %v\n", err); printErr != nil {
			log.Printf("error: %v", err)
		}

		return err
	}

	return nil
}
