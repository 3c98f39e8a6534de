package migration

import (
	"context"
	"fmt"

	"github.com/avstrong/resortrates/internal/catalog"
	"github.com/avstrong/resortrates/internal/logger"
)

type storage interface {
	Load(ctx context.Context, resorts []*catalog.Resort) error
}

type Source struct {
	// Path of a catalog JSON file. Empty means the bundled catalog.
	Path     string
	Currency string
}

func (s Source) String() string {
	if s.Path == "" {
		return "bundled catalog"
	}

	return s.Path
}

// Up loads the rate catalog from src into storage. It runs once at startup.
func Up(ctx context.Context, l *logger.Logger, storage storage, src Source) error {
	var (
		resorts []*catalog.Resort
		err     error
	)

	if src.Path == "" {
		resorts, err = catalog.Default(src.Currency)
	} else {
		resorts, err = catalog.LoadFile(src.Path, src.Currency)
	}

	if err != nil {
		return fmt.Errorf("load %s: %w", src, err)
	}

	if err = storage.Load(ctx, resorts); err != nil {
		return fmt.Errorf("save resorts to storage: %w", err)
	}

	for _, r := range resorts {
		l.LogDebug("Resort %s: %d seasons, %d room types, min stay %d", r.Name, len(r.Seasons), len(r.RoomTypes), r.MinStay)

		if r.Note != "" {
			l.LogWarnf("Resort %s: %s", r.Name, r.Note)
		}
	}

	l.LogInfo("Rate catalog loaded from %s: %d resorts", src, len(resorts))

	return nil
}
