package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog/log"
)

// openDatabase connects to Postgres and retries with backoff until the
// instance responds or maxWait elapses. Compose brings the database up in
// parallel with the API, so the first pings routinely fail.
func openDatabase(ctx context.Context, dsn string, maxWait time.Duration) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Two users never need more than a handful of connections.
	db.SetMaxOpenConns(8)
	db.SetMaxIdleConns(4)
	db.SetConnMaxIdleTime(5 * time.Minute)

	const pingTimeout = 3 * time.Second

	deadline := time.Now().Add(maxWait)
	backoff := 250 * time.Millisecond
	var lastErr error

	for attempt := 1; ; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		lastErr = db.PingContext(pingCtx)
		cancel()

		if lastErr == nil {
			return db, nil
		}
		if ctx.Err() != nil || time.Now().After(deadline) {
			break
		}

		log.Warn().
			Err(lastErr).
			Int("attempt", attempt).
			Dur("backoff", backoff).
			Msg("database not ready, retrying")

		time.Sleep(backoff)
		if backoff < 4*time.Second {
			backoff *= 2
		}
	}

	_ = db.Close()
	return nil, fmt.Errorf("ping database: %w", lastErr)
}
