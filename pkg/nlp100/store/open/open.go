// Package open selects a store backend by driver name.
package open

import (
	"context"
	"fmt"

	"github.com/cognicore/nlp100/pkg/nlp100/internalerr"
	"github.com/cognicore/nlp100/pkg/nlp100/store"
	"github.com/cognicore/nlp100/pkg/nlp100/store/memstore"
	"github.com/cognicore/nlp100/pkg/nlp100/store/sqlite"
)

// Driver names accepted by Open.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

// Open returns the store for driver. The dsn is ignored by the memory driver.
func Open(ctx context.Context, driver, dsn string) (store.Store, error) {
	switch driver {
	case "", DriverMemory:
		return memstore.New(), nil
	case DriverSQLite:
		st, err := sqlite.OpenSQLite(ctx, dsn)
		if err != nil {
			return nil, fmt.Errorf("open sqlite %q: %w", dsn, err)
		}
		return st, nil
	default:
		return nil, fmt.Errorf("%w: unknown store driver %q", internalerr.ErrInvalidInput, driver)
	}
}
