package catalog

import (
	_ "embed"
	"fmt"
)

//go:embed data/resorts.json
var defaultCatalog []byte

// Default returns the contracted resorts bundled with the binary.
func Default(fallbackCurrency string) ([]*Resort, error) {
	resorts, err := Load(defaultCatalog, fallbackCurrency)
	if err != nil {
		return nil, fmt.Errorf("load bundled catalog: %w", err)
	}

	return resorts, nil
}
