package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/avstrong/resortrates/internal/catalog"
	"github.com/avstrong/resortrates/internal/logger"
)

type Config struct {
	L *logger.Logger
}

// DB holds the rate catalog. It is filled once by Load and read-only afterwards.
type DB struct {
	mu      sync.RWMutex
	l       *logger.Logger
	resorts map[string]*catalog.Resort
	names   []string
	loaded  bool
}

func New(conf Config) *DB {
	//nolint:exhaustruct
	return &DB{
		l:       conf.L,
		resorts: make(map[string]*catalog.Resort),
	}
}

func (db *DB) Load(_ context.Context, resorts []*catalog.Resort) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.loaded {
		return ErrAlreadyLoaded
	}

	staged := make(map[string]*catalog.Resort, len(resorts))

	for _, resort := range resorts {
		if _, exists := staged[resort.Name]; exists {
			return fmt.Errorf("resort %q: %w", resort.Name, ErrDuplicate)
		}

		staged[resort.Name] = resort
	}

	names := make([]string, 0, len(staged))
	for name := range staged {
		names = append(names, name)
	}

	sort.Strings(names)

	db.resorts = staged
	db.names = names
	db.loaded = true

	db.l.LogDebug("Catalog store holds %d resorts", len(names))

	return nil
}

func (db *DB) GetResort(_ context.Context, name string) (*catalog.Resort, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	resort, ok := db.resorts[name]
	if !ok {
		return nil, fmt.Errorf("resort %q: %w", name, catalog.ErrResortNotFound)
	}

	return resort, nil
}

// Resorts lists every resort ordered by name.
func (db *DB) Resorts(_ context.Context) ([]*catalog.Resort, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	result := make([]*catalog.Resort, 0, len(db.names))
	for _, name := range db.names {
		result = append(result, db.resorts[name])
	}

	return result, nil
}
