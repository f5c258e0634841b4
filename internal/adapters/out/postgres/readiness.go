package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	// Registers the pq driver used by the readiness probe.
	_ "github.com/lib/pq"
)

const (
	readinessPingTimeout = 2 * time.Second
	readinessRetryDelay  = time.Second
)

// WaitForStore blocks until the database behind dsn answers a ping or the
// attempts are exhausted. The service must not accept traffic or start the
// admission worker before the order store is reachable, so this runs before
// the GORM connection is opened.
func WaitForStore(ctx context.Context, dsn string, attempts int) error {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("open store connection: %w", err)
	}
	defer db.Close()

	var lastErr error
	for i := 0; i < attempts; i++ {
		pingCtx, cancel := context.WithTimeout(ctx, readinessPingTimeout)
		lastErr = db.PingContext(pingCtx)
		cancel()

		if lastErr == nil {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(readinessRetryDelay):
		}
	}

	return fmt.Errorf("store not ready after %d attempts: %w", attempts, lastErr)
}
