package cli

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avstrong/resortrates/internal/catalog"
	"github.com/avstrong/resortrates/internal/logger"
	"github.com/avstrong/resortrates/internal/pricing"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	color.NoColor = true

	var stdout, stderr bytes.Buffer

	cmd := NewRootCmd(logger.Discard())
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := execute(cmd, append([]string{"--config-dir", t.TempDir()}, args...), &stderr)

	return stdout.String(), stderr.String(), err
}

func TestParseStay(t *testing.T) {
	tests := []struct {
		raw     string
		want    pricing.StayInput
		wantErr bool
	}{
		{raw: "Beach Villa:4", want: pricing.StayInput{RoomType: "Beach Villa", Nights: 4}},
		{raw: "Ocean Villa with Pool : 3", want: pricing.StayInput{RoomType: "Ocean Villa with Pool", Nights: 3}},
		{raw: "Suite: Sunset:2", want: pricing.StayInput{RoomType: "Suite: Sunset", Nights: 2}},
		{raw: "Beach Villa", wantErr: true},
		{raw: ":4", wantErr: true},
		{raw: "Beach Villa:", wantErr: true},
		{raw: "Beach Villa:four", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := parseStay(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrStayFormat)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatMoney(t *testing.T) {
	out := formatMoney(catalog.FromMajor(3780), "USD")
	assert.Contains(t, out, "$")
	assert.Contains(t, out, "780")

	assert.Equal(t, "XYZ1 12.00", formatMoney(catalog.FromMajor(12), "XYZ1"))
}

func TestQuoteCmd(t *testing.T) {
	stdout, _, err := run(t, "quote",
		"--resort", "Heritance Aarah",
		"--check-in", "2025-06-10",
		"--stay", "Beach Villa:4",
	)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Total Cost for Heritance Aarah")
	assert.Contains(t, stdout, "780")
	assert.Contains(t, stdout, "Check-in 2025-06-10, check-out 2025-06-14, 4 nights")
	assert.NotContains(t, stdout, "partial")
}

func TestQuoteCmd_SplitStay(t *testing.T) {
	stdout, _, err := run(t, "quote",
		"--resort", "Heritance Aarah",
		"--check-in", "2025-04-27",
		"--stay", "Beach Villa:4",
		"--stay", "Ocean Villa:3",
	)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Stay 1: Beach Villa, 4 nights from 2025-04-27")
	assert.Contains(t, stdout, "Stay 2: Ocean Villa, 3 nights from 2025-05-01")
}

func TestQuoteCmd_Partial(t *testing.T) {
	stdout, _, err := run(t, "quote",
		"--resort", "Heritance Aarah",
		"--check-in", "2026-06-10",
		"--stay", "Beach Villa:3",
	)
	require.NoError(t, err)

	assert.Contains(t, stdout, "not priced, no contracted season")
	assert.Contains(t, stdout, "Total is partial")
}

func TestQuoteCmd_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "strict seasons",
			args: []string{"--strict-seasons", "--resort", "Heritance Aarah", "--check-in", "2026-06-10", "--stay", "Beach Villa:3"},
			want: "no valid season",
		},
		{
			name: "minimum stay",
			args: []string{"--resort", "Heritance Aarah", "--check-in", "2025-06-10", "--stay", "Beach Villa:2"},
			want: "minimum stay",
		},
		{
			name: "bad date",
			args: []string{"--resort", "Heritance Aarah", "--check-in", "10/06/2025", "--stay", "Beach Villa:3"},
			want: "check-in",
		},
		{
			name: "unknown resort",
			args: []string{"--resort", "Atlantis", "--check-in", "2025-06-10", "--stay", "Beach Villa:3"},
			want: "Atlantis",
		},
		{
			name: "missing stay",
			args: []string{"--resort", "Heritance Aarah", "--check-in", "2025-06-10"},
			want: "stay",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, err := run(t, append([]string{"quote"}, tt.args...)...)
			require.Error(t, err)
			assert.Contains(t, stderr, "error:")
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestResortsCmd(t *testing.T) {
	stdout, _, err := run(t, "resorts")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Adaaran Prestige Vadoo (USD)")
	assert.Contains(t, stdout, "adult-only resort")
	assert.Contains(t, stdout, "minimum stay: 3 nights")
	assert.Contains(t, stdout, "Beach Villa")
	assert.Contains(t, stdout, "note: contract lists extra adult/child surcharges for two seasons only")
}

func TestQuoteCmd_GuestFlagsAreBookingWide(t *testing.T) {
	cmd := newQuoteCmd(&state{l: logger.Discard()})

	assert.Equal(t, "adults in the booking", cmd.Flags().Lookup("adults").Usage)
	assert.Equal(t, "children in the booking", cmd.Flags().Lookup("children").Usage)
}
