package journal

import "time"

// Event is one recorded restock.
type Event struct {
	// Seq is the insertion order assigned by the journal.
	Seq int64 `json:"seq"`

	// ID uniquely identifies the event. Assigned on write when empty.
	ID string `json:"id"`

	Country string `json:"country"`
	Code    string `json:"code"`
	Product string `json:"product"`

	// Added is the number of units added by the restock.
	Added int `json:"added"`

	// NewQuantity is the record's quantity after the restock.
	NewQuantity int `json:"new_quantity"`

	// LinesPatched is how many inventory file lines received NewQuantity.
	LinesPatched int `json:"lines_patched"`

	// Inventory is the path of the inventory file that was written.
	Inventory string `json:"inventory"`

	// RecordedAt is stamped on write when zero.
	RecordedAt time.Time `json:"recorded_at"`
}
