package store

import (
	"context"
	"fmt"
	"sync"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

const sequenceTable = "activity_sequence"

// sequencer stamps each activity event with its append order. The counter
// lives in its own single-row table so clearing the log never rewinds it.
type sequencer struct {
	mu  sync.Mutex
	drv *entsql.Driver
}

func newSequencer(ctx context.Context, drv *entsql.Driver) (*sequencer, error) {
	query, args := entsql.Dialect(dialect.SQLite).Insert(sequenceTable).
		Columns("id", "last_val").
		Values(1, 0).
		OnConflict(entsql.DoNothing()).
		Query()
	if err := drv.Exec(ctx, query, args, nil); err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}
	return &sequencer{drv: drv}, nil
}

// Next bumps the counter and returns the new value, starting at 1.
func (s *sequencer) Next(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	query, args := entsql.Dialect(dialect.SQLite).Update(sequenceTable).
		Add("last_val", 1).
		Where(entsql.EQ("id", 1)).
		Returning("last_val").
		Query()

	rows := &entsql.Rows{}
	if err := s.drv.Query(ctx, query, args, rows); err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return 0, fmt.Errorf("next sequence: %w", err)
		}
		return 0, fmt.Errorf("next sequence: counter row missing")
	}
	var v int64
	if err := rows.Scan(&v); err != nil {
		return 0, fmt.Errorf("scan sequence: %w", err)
	}
	return v, nil
}
