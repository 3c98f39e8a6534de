package app

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avstrong/resortrates/internal/catalog"
	"github.com/avstrong/resortrates/internal/config"
	"github.com/avstrong/resortrates/internal/logger"
	"github.com/avstrong/resortrates/internal/pricing"
)

func TestEngine_BundledCatalog(t *testing.T) {
	engine, storage, err := Engine(context.Background(), logger.Discard(), config.Config{Currency: "USD"})
	require.NoError(t, err)

	resorts, err := storage.Resorts(context.Background())
	require.NoError(t, err)
	assert.Len(t, resorts, 3)

	checkIn, err := catalog.ParseDate("2025-06-10")
	require.NoError(t, err)

	quote, err := engine.Quote(context.Background(), &pricing.Request{
		Resort:  "Heritance Aarah",
		CheckIn: checkIn,
		Stays:   []pricing.StayInput{{RoomType: "Beach Villa", Nights: 4}},
		Guests:  pricing.Guests{Adults: 2},
		Rooms:   1,
	})
	require.NoError(t, err)
	assert.Equal(t, catalog.FromMajor(3780), quote.Total)
	assert.Len(t, quote.ID, 36)
}

func TestEngine_MissingCatalog(t *testing.T) {
	_, _, err := Engine(context.Background(), logger.Discard(), config.Config{CatalogPath: "/nonexistent.json"})
	assert.Error(t, err)
}

func TestEngine_DeterministicIDs(t *testing.T) {
	engine, _, err := Engine(context.Background(), logger.Discard(), config.Config{DeterministicIDs: true})
	require.NoError(t, err)

	req := &pricing.Request{
		Resort:  "Heritance Aarah",
		CheckIn: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		Stays:   []pricing.StayInput{{RoomType: "Beach Villa", Nights: 3}},
		Guests:  pricing.Guests{Adults: 2},
		Rooms:   1,
	}

	for _, want := range []string{"quote-1", "quote-2"} {
		quote, err := engine.Quote(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, want, quote.ID)
	}
}

func TestRun_PortInUse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	defer ln.Close()

	host, port, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)

	err = Run(logger.Discard(), config.Config{
		Host:              host,
		Port:              port,
		ReadHeaderTimeout: time.Second,
		ShutdownTimeout:   time.Second,
		LivenessEndpoint:  "/liveness",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run http server")
}
