// Package tracker coordinates the in-memory store, the inventory file and
// the optional restock journal.
//
// Both the interactive shell and the one-shot CLI commands go through a
// Tracker, so reload and restock behave the same everywhere.
package tracker

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/roach88/shoestock/internal/inventory"
	"github.com/roach88/shoestock/internal/journal"
	"github.com/roach88/shoestock/internal/stockfile"
)

// ReloadMode selects how Reload refreshes the store.
type ReloadMode string

const (
	// ReloadClear empties the store and loads the file on every call.
	ReloadClear ReloadMode = "clear"

	// ReloadOnce loads the file on the first call only.
	ReloadOnce ReloadMode = "once"

	// ReloadAppend loads the file on every call without emptying the store,
	// so each call appends another copy of every record.
	ReloadAppend ReloadMode = "append"
)

// ErrJournalDisabled is returned by History when no journal is configured.
var ErrJournalDisabled = errors.New("restock journal is not configured")

// Journal is the subset of *journal.Journal the tracker needs.
type Journal interface {
	WriteRestock(ctx context.Context, ev journal.Event) (journal.Event, error)
	ListRestocks(ctx context.Context, limit int) ([]journal.Event, error)
}

// RestockResult describes a completed restock.
type RestockResult struct {
	Record       *inventory.Record `json:"record"`
	Added        int               `json:"added"`
	NewQuantity  int               `json:"new_quantity"`
	LinesPatched int               `json:"lines_patched"`
}

// Tracker owns one store and its backing file.
type Tracker struct {
	store   *inventory.Store
	file    *stockfile.File
	journal Journal
	mode    ReloadMode
	loaded  bool
	log     *zap.Logger
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithJournal enables restock journaling.
func WithJournal(j Journal) Option {
	return func(t *Tracker) { t.journal = j }
}

// WithReloadMode overrides the default ReloadClear policy.
func WithReloadMode(mode ReloadMode) Option {
	return func(t *Tracker) { t.mode = mode }
}

// WithLogger sets the diagnostics logger.
func WithLogger(log *zap.Logger) Option {
	return func(t *Tracker) { t.log = log }
}

// New creates a tracker over file with an empty store.
func New(file *stockfile.File, opts ...Option) *Tracker {
	t := &Tracker{
		store: inventory.NewStore(),
		file:  file,
		mode:  ReloadClear,
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// ParseReloadMode validates a reload mode name.
func ParseReloadMode(s string) (ReloadMode, error) {
	switch mode := ReloadMode(s); mode {
	case ReloadClear, ReloadOnce, ReloadAppend:
		return mode, nil
	default:
		return "", fmt.Errorf("invalid reload mode %q", s)
	}
}

// Store returns the tracker's store.
func (t *Tracker) Store() *inventory.Store {
	return t.store
}

// File returns the tracker's inventory file adapter.
func (t *Tracker) File() *stockfile.File {
	return t.file
}

// Reload refreshes the store from the file according to the reload mode.
// With ReloadOnce, calls after the first successful load return an empty
// result without touching the file.
func (t *Tracker) Reload(ctx context.Context) (stockfile.LoadResult, error) {
	if err := ctx.Err(); err != nil {
		return stockfile.LoadResult{}, err
	}

	switch t.mode {
	case ReloadOnce:
		if t.loaded {
			return stockfile.LoadResult{}, nil
		}
	case ReloadClear:
		t.store.Reset()
	}

	result, err := t.file.Load(t.store)
	if err != nil {
		return result, err
	}
	t.loaded = true

	t.log.Debug("store reloaded",
		zap.String("mode", string(t.mode)),
		zap.Int("loaded", result.Loaded),
		zap.Int("records", t.store.Len()),
	)
	return result, nil
}

// Restock adds units to record, persists the new quantity to the file and
// journals the event when a journal is configured.
//
// The in-memory quantity is updated before the file write, so a failed
// write leaves the store ahead of the file; the next clear reload
// resynchronizes it. A journal failure is logged and does not fail the
// restock, which has already been persisted.
func (t *Tracker) Restock(ctx context.Context, record *inventory.Record, add int) (RestockResult, error) {
	if record == nil {
		return RestockResult{}, errors.New("restock: no record")
	}
	if add < 0 {
		return RestockResult{}, &inventory.InvalidNumberError{
			Field: "amount",
			Input: fmt.Sprintf("%d", add),
			Kind:  inventory.KindNegative,
		}
	}

	record.Quantity += add
	result := RestockResult{
		Record:      record,
		Added:       add,
		NewQuantity: record.Quantity,
	}

	patched, err := t.file.PersistRestock(record.Country, record.Quantity)
	if err != nil {
		return result, fmt.Errorf("restock %s: %w", record.Code, err)
	}
	result.LinesPatched = patched

	t.log.Info("restocked",
		zap.String("code", record.Code),
		zap.String("country", record.Country),
		zap.Int("added", add),
		zap.Int("quantity", record.Quantity),
		zap.Int("lines_patched", patched),
	)

	if t.journal != nil {
		_, err := t.journal.WriteRestock(ctx, journal.Event{
			Country:      record.Country,
			Code:         record.Code,
			Product:      record.Product,
			Added:        add,
			NewQuantity:  record.Quantity,
			LinesPatched: patched,
			Inventory:    t.file.Path(),
		})
		if err != nil {
			t.log.Error("failed to journal restock", zap.String("code", record.Code), zap.Error(err))
		}
	}

	return result, nil
}

// History returns journaled restocks, newest first.
func (t *Tracker) History(ctx context.Context, limit int) ([]journal.Event, error) {
	if t.journal == nil {
		return nil, ErrJournalDisabled
	}
	return t.journal.ListRestocks(ctx, limit)
}
