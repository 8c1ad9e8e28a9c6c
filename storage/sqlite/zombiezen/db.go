package zombiezen

import (
	"fmt"
	"runtime"

	"zombiezen.com/go/sqlite/sqlitex"
)

// NewPool opens a connection pool on dbPath, one connection per CPU.
func NewPool(dbPath string) (*sqlitex.Pool, error) {
	// default flags: OpenReadWrite | OpenCreate | OpenWAL | OpenURI
	pool, err := sqlitex.NewPool(fmt.Sprintf("file:%s", dbPath), sqlitex.PoolOptions{
		PoolSize: runtime.NumCPU(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite pool at %s: %w", dbPath, err)
	}

	return pool, nil
}
