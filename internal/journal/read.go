package journal

import (
	"context"
	"fmt"
	"time"
)

// ListRestocks returns recorded events, newest first.
// A limit of zero or less returns every event.
func (j *Journal) ListRestocks(ctx context.Context, limit int) ([]Event, error) {
	query := `
		SELECT seq, id, country, code, product, added, new_quantity, lines_patched, inventory, recorded_at
		FROM restocks
		ORDER BY seq DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list restocks: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var (
			ev         Event
			recordedAt string
		)
		if err := rows.Scan(
			&ev.Seq,
			&ev.ID,
			&ev.Country,
			&ev.Code,
			&ev.Product,
			&ev.Added,
			&ev.NewQuantity,
			&ev.LinesPatched,
			&ev.Inventory,
			&recordedAt,
		); err != nil {
			return nil, fmt.Errorf("list restocks: scan: %w", err)
		}
		ev.RecordedAt, err = time.Parse(time.RFC3339Nano, recordedAt)
		if err != nil {
			return nil, fmt.Errorf("list restocks: parse recorded_at %q: %w", recordedAt, err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list restocks: %w", err)
	}

	return events, nil
}
