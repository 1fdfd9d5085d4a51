package mongo

import (
	"context"
	"time"
)

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	start := time.Now()
	var err error
	defer func() {
		s.observe("close", err, start)
	}()

	err = s.db.Disconnect(ctx)
	return err
}

// Ping verifies that the primary is reachable.
func (s *Store) Ping(ctx context.Context) error {
	start := time.Now()
	var err error
	defer func() {
		s.observe("ping", err, start)
	}()

	err = s.db.Ping(ctx)
	return err
}
