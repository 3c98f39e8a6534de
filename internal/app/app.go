package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/avstrong/resortrates/internal/config"
	"github.com/avstrong/resortrates/internal/idgen/random"
	"github.com/avstrong/resortrates/internal/idgen/simple"
	"github.com/avstrong/resortrates/internal/logger"
	"github.com/avstrong/resortrates/internal/migration"
	"github.com/avstrong/resortrates/internal/pricing"
	"github.com/avstrong/resortrates/internal/storage/memory"
	"github.com/avstrong/resortrates/internal/transport/web"
)

type idGenerator interface {
	GetID(ctx context.Context) (string, error)
}

func newIDGenerator(conf config.Config) idGenerator {
	if conf.DeterministicIDs {
		return simple.New("quote")
	}

	return random.New()
}

// Engine loads the catalog described by conf and returns a pricing engine over it.
func Engine(ctx context.Context, l *logger.Logger, conf config.Config) (*pricing.Engine, *memory.DB, error) {
	storage := memory.New(memory.Config{L: l})

	src := migration.Source{Path: conf.CatalogPath, Currency: conf.Currency}
	if err := migration.Up(ctx, l, storage, src); err != nil {
		return nil, nil, fmt.Errorf("load rate catalog: %w", err)
	}

	engine := pricing.New(l, storage, newIDGenerator(conf), pricing.Config{StrictSeasons: conf.StrictSeasons})

	return engine, storage, nil
}

func Run(l *logger.Logger, conf config.Config) error {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGHUP,
	)
	defer cancel()

	engine, storage, err := Engine(ctx, l, conf)
	if err != nil {
		return err
	}

	webConf := web.Conf{
		L:                 l,
		ServerLogger:      log.Default(),
		Host:              conf.Host,
		Port:              conf.Port,
		ReadHeaderTimeout: conf.ReadHeaderTimeout,
		LivenessEndpoint:  conf.LivenessEndpoint,
	}

	srv, err := web.New(ctx, webConf, engine, storage)
	if err != nil {
		return fmt.Errorf("init http server: %w", err)
	}

	//nolint:contextcheck
	go func() {
		<-ctx.Done()

		ctx, cancel := context.WithTimeout(context.Background(), conf.ShutdownTimeout)
		defer cancel()

		if err := srv.Srv().Shutdown(ctx); err != nil {
			l.LogErrorf("Failed to stop http server: %v", err.Error())
		}
	}()

	l.LogInfo("Application is running on %v:%v...", webConf.Host, webConf.Port)

	if err := srv.Srv().ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		cancel()

		return fmt.Errorf("run http server: %w", err)
	}

	l.LogInfo("Application stopped gracefully")

	return nil
}
