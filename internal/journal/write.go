package journal

import (
	"context"
	"fmt"
	"time"
)

// WriteRestock appends an event and returns it with ID, Seq and RecordedAt
// filled in.
func (j *Journal) WriteRestock(ctx context.Context, ev Event) (Event, error) {
	if ev.ID == "" {
		ev.ID = j.newID()
	}
	if ev.RecordedAt.IsZero() {
		ev.RecordedAt = j.now()
	}

	result, err := j.db.ExecContext(ctx, `
		INSERT INTO restocks
		(id, country, code, product, added, new_quantity, lines_patched, inventory, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		ev.ID,
		ev.Country,
		ev.Code,
		ev.Product,
		ev.Added,
		ev.NewQuantity,
		ev.LinesPatched,
		ev.Inventory,
		ev.RecordedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return Event{}, fmt.Errorf("write restock: %w", err)
	}

	seq, err := result.LastInsertId()
	if err != nil {
		return Event{}, fmt.Errorf("write restock: last insert id: %w", err)
	}
	ev.Seq = seq

	return ev, nil
}
