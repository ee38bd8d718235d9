package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

const activityTable = "activity_events"

// timeLayout is fixed width so text order in the timestamp column matches
// time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

type activityRepo struct {
	drv *entsql.Driver
	seq *sequencer
	now func() time.Time
}

func (r *activityRepo) builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

func (r *activityRepo) AppendActivity(ctx context.Context, data ActivityEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := r.builder().Insert(activityTable).
		Columns("sequence", "timestamp", "session_id", "username", "kind", "detail").
		Values(seqNum, formatTime(r.now()), data.SessionID, data.Username, string(data.Kind), data.Detail).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save activity event: %w", err)
	}
	return nil
}

func (r *activityRepo) CountByKind(ctx context.Context) ([]KindCount, error) {
	b := r.builder()
	query, args := b.Select("kind", entsql.As(entsql.Count("*"), "n")).
		From(b.Table(activityTable)).
		GroupBy("kind").
		OrderBy("kind").
		Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("count activity: %w", err)
	}
	defer rows.Close()

	var out []KindCount
	for rows.Next() {
		var kc KindCount
		var kind string
		if err := rows.Scan(&kind, &kc.Count); err != nil {
			return nil, fmt.Errorf("scan activity count: %w", err)
		}
		kc.Kind = Kind(kind)
		out = append(out, kc)
	}
	return out, rows.Err()
}

func (r *activityRepo) Recent(ctx context.Context, opts QueryOpts) ([]ActivityEvent, error) {
	b := r.builder()
	sel := b.Select("sequence", "timestamp", "session_id", "username", "kind", "detail").
		From(b.Table(activityTable))

	var preds []*entsql.Predicate
	if opts.Kind != "" {
		preds = append(preds, entsql.EQ("kind", string(opts.Kind)))
	}
	if !opts.From.IsZero() {
		preds = append(preds, entsql.GTE("timestamp", formatTime(opts.From)))
	}
	if len(preds) > 0 {
		sel.Where(entsql.And(preds...))
	}
	sel.OrderBy(entsql.Desc("sequence"))
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}
	query, args := sel.Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query activity: %w", err)
	}
	defer rows.Close()

	var out []ActivityEvent
	for rows.Next() {
		var (
			ev   ActivityEvent
			ts   string
			kind string
		)
		if err := rows.Scan(&ev.Sequence, &ts, &ev.SessionID, &ev.Username, &kind, &ev.Detail); err != nil {
			return nil, fmt.Errorf("scan activity event: %w", err)
		}
		ev.Kind = Kind(kind)
		parsed, err := time.Parse(timeLayout, ts)
		if err != nil {
			return nil, fmt.Errorf("parse timestamp %q: %w", ts, err)
		}
		ev.Timestamp = parsed
		out = append(out, ev)
	}
	return out, rows.Err()
}

func (r *activityRepo) Clear(ctx context.Context) (int64, error) {
	query, args := r.builder().Delete(activityTable).Query()

	var res sql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return 0, fmt.Errorf("clear activity: %w", err)
	}
	return res.RowsAffected()
}
