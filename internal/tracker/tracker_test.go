package tracker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/roach88/shoestock/internal/inventory"
	"github.com/roach88/shoestock/internal/journal"
	"github.com/roach88/shoestock/internal/stockfile"
	"github.com/roach88/shoestock/internal/testutil"
)

// fakeJournal records events in memory.
type fakeJournal struct {
	events []journal.Event
	err    error
}

func (f *fakeJournal) WriteRestock(_ context.Context, ev journal.Event) (journal.Event, error) {
	if f.err != nil {
		return journal.Event{}, f.err
	}
	ev.Seq = int64(len(f.events) + 1)
	f.events = append(f.events, ev)
	return ev, nil
}

func (f *fakeJournal) ListRestocks(_ context.Context, limit int) ([]journal.Event, error) {
	out := []journal.Event{}
	for i := len(f.events) - 1; i >= 0; i-- {
		out = append(out, f.events[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func newTracker(t *testing.T, path string, opts ...Option) *Tracker {
	t.Helper()
	return New(stockfile.New(path, nil), opts...)
}

func TestParseReloadMode(t *testing.T) {
	for _, name := range []string{"clear", "once", "append"} {
		mode, err := ParseReloadMode(name)
		require.NoError(t, err)
		assert.Equal(t, ReloadMode(name), mode)
	}

	_, err := ParseReloadMode("always")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid reload mode "always"`)
}

func TestReload_ClearReplacesStore(t *testing.T) {
	path := testutil.WriteInventory(t, "France,AB1,Boot,49.99,3", "Italy,CD2,Sandal,20,5")
	tr := newTracker(t, path)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		result, err := tr.Reload(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, result.Loaded)
		assert.Equal(t, 2, tr.Store().Len())
	}
}

func TestReload_ClearDropsManualAdditions(t *testing.T) {
	path := testutil.WriteInventory(t, "France,AB1,Boot,49.99,3")
	tr := newTracker(t, path)
	ctx := context.Background()

	_, err := tr.Reload(ctx)
	require.NoError(t, err)
	tr.Store().Add(&inventory.Record{Code: "NEW"})
	require.Equal(t, 2, tr.Store().Len())

	_, err = tr.Reload(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, tr.Store().Len())
	_, ok := tr.Store().FindByCode("NEW")
	assert.False(t, ok)
}

func TestReload_ClearSeesExternalEdits(t *testing.T) {
	path := testutil.WriteInventory(t, "France,AB1,Boot,49.99,3")
	tr := newTracker(t, path)
	ctx := context.Background()

	_, err := tr.Reload(ctx)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("h\nItaly,CD2,Sandal,20,5\n"), 0o644))
	_, err = tr.Reload(ctx)
	require.NoError(t, err)

	require.Equal(t, 1, tr.Store().Len())
	assert.Equal(t, "CD2", tr.Store().Records()[0].Code)
}

func TestReload_OnceLoadsOnlyFirstTime(t *testing.T) {
	path := testutil.WriteInventory(t, "France,AB1,Boot,49.99,3")
	tr := newTracker(t, path, WithReloadMode(ReloadOnce))
	ctx := context.Background()

	result, err := tr.Reload(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Loaded)

	tr.Store().Add(&inventory.Record{Code: "NEW"})
	result, err = tr.Reload(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Loaded)
	assert.Equal(t, 2, tr.Store().Len(), "manual additions survive")
}

func TestReload_OnceRetriesAfterFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.txt")
	tr := newTracker(t, path, WithReloadMode(ReloadOnce))
	ctx := context.Background()

	_, err := tr.Reload(ctx)
	require.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("h\nFrance,AB1,Boot,49.99,3\n"), 0o644))
	result, err := tr.Reload(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Loaded)
}

func TestReload_AppendDuplicates(t *testing.T) {
	path := testutil.WriteInventory(t, "France,AB1,Boot,49.99,3", "Italy,CD2,Sandal,20,5")
	tr := newTracker(t, path, WithReloadMode(ReloadAppend))
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		_, err := tr.Reload(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2*i, tr.Store().Len())
	}
}

func TestReload_CancelledContext(t *testing.T) {
	path := testutil.WriteInventory(t, "France,AB1,Boot,49.99,3")
	tr := newTracker(t, path)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := tr.Reload(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, tr.Store().Len())
}

func TestRestock_MinimumRecordByTen(t *testing.T) {
	header := "Country,Code,Product,Cost,Quantity\n"
	path := testutil.WriteRaw(t, header+
		"France,AB1,Boot,49.99,5\n"+
		"Italy,CD2,Sandal,20,2\n"+
		"Spain,EF3,Loafer,30,2\n"+
		"Italy,GH4,Heel,80,9\n")
	tr := newTracker(t, path)
	ctx := context.Background()

	_, err := tr.Reload(ctx)
	require.NoError(t, err)

	lowest, ok := tr.Store().FindMinQuantity()
	require.True(t, ok)
	require.Equal(t, "CD2", lowest.Code)

	result, err := tr.Restock(ctx, lowest, 10)
	require.NoError(t, err)

	assert.Equal(t, 12, lowest.Quantity)
	assert.Equal(t, 12, result.NewQuantity)
	assert.Equal(t, 10, result.Added)
	assert.Equal(t, 2, result.LinesPatched)
	assert.Same(t, lowest, result.Record)

	assert.Equal(t, header+
		"France,AB1,Boot,49.99,5\n"+
		"Italy,CD2,Sandal,20,12\n"+
		"Spain,EF3,Loafer,30,2\n"+
		"Italy,GH4,Heel,80,12\n",
		testutil.ReadFile(t, path))

	// Only the chosen record changes in memory.
	other, _ := tr.Store().FindByCode("GH4")
	assert.Equal(t, 9, other.Quantity)
}

func TestRestock_Journals(t *testing.T) {
	path := testutil.WriteInventory(t, "France,AB1,Boot,49.99,3")
	j := &fakeJournal{}
	tr := newTracker(t, path, WithJournal(j))
	ctx := context.Background()

	_, err := tr.Reload(ctx)
	require.NoError(t, err)
	rec := tr.Store().Records()[0]

	_, err = tr.Restock(ctx, rec, 4)
	require.NoError(t, err)

	require.Len(t, j.events, 1)
	ev := j.events[0]
	assert.Equal(t, "France", ev.Country)
	assert.Equal(t, "AB1", ev.Code)
	assert.Equal(t, "Boot", ev.Product)
	assert.Equal(t, 4, ev.Added)
	assert.Equal(t, 7, ev.NewQuantity)
	assert.Equal(t, 1, ev.LinesPatched)
	assert.Equal(t, path, ev.Inventory)

	history, err := tr.History(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestRestock_JournalFailureIsLogged(t *testing.T) {
	path := testutil.WriteInventory(t, "France,AB1,Boot,49.99,3")
	core, logs := observer.New(zap.ErrorLevel)
	tr := newTracker(t, path,
		WithJournal(&fakeJournal{err: errors.New("disk full")}),
		WithLogger(zap.New(core)),
	)
	ctx := context.Background()

	_, err := tr.Reload(ctx)
	require.NoError(t, err)

	_, err = tr.Restock(ctx, tr.Store().Records()[0], 1)
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("failed to journal restock").Len())
	assert.Contains(t, testutil.ReadFile(t, path), "France,AB1,Boot,49.99,4\n")
}

func TestRestock_RejectsNegativeAmount(t *testing.T) {
	path := testutil.WriteInventory(t, "France,AB1,Boot,49.99,3")
	tr := newTracker(t, path)
	rec := &inventory.Record{Country: "France", Quantity: 3}

	_, err := tr.Restock(context.Background(), rec, -1)

	var numErr *inventory.InvalidNumberError
	require.ErrorAs(t, err, &numErr)
	assert.Equal(t, inventory.KindNegative, numErr.Kind)
	assert.Equal(t, 3, rec.Quantity)
}

func TestRestock_NilRecord(t *testing.T) {
	tr := newTracker(t, testutil.WriteInventory(t))
	_, err := tr.Restock(context.Background(), nil, 1)
	require.Error(t, err)
}

func TestRestock_PersistFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")
	tr := newTracker(t, path)
	rec := &inventory.Record{Country: "France", Code: "AB1", Quantity: 3}

	_, err := tr.Restock(context.Background(), rec, 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), "restock AB1")
}

func TestHistory_Disabled(t *testing.T) {
	tr := newTracker(t, testutil.WriteInventory(t))

	_, err := tr.History(context.Background(), 0)
	assert.ErrorIs(t, err, ErrJournalDisabled)
}

func TestAccessors(t *testing.T) {
	f := stockfile.New("inventory.txt", nil)
	tr := New(f)
	assert.Same(t, f, tr.File())
	assert.NotNil(t, tr.Store())
}

func TestRestock_SQLiteJournal(t *testing.T) {
	path := testutil.WriteInventory(t, "France,AB1,Boot,49.99,3", "Italy,CD2,Sandal,20,8")
	clock := testutil.NewSteppingClock()
	j, err := journal.Open(filepath.Join(t.TempDir(), "restocks.db"), journal.WithClock(clock.Now))
	require.NoError(t, err)
	t.Cleanup(func() { j.Close() })

	tr := newTracker(t, path, WithJournal(j))
	ctx := context.Background()

	for _, add := range []int{2, 6} {
		_, err := tr.Reload(ctx)
		require.NoError(t, err)
		lowest, ok := tr.Store().FindMinQuantity()
		require.True(t, ok)
		_, err = tr.Restock(ctx, lowest, add)
		require.NoError(t, err)
	}

	history, err := tr.History(ctx, 0)
	require.NoError(t, err)
	require.Len(t, history, 2)

	// Boot 3 -> 5, then Boot 5 -> 11.
	assert.Equal(t, int64(2), history[0].Seq)
	assert.Equal(t, 11, history[0].NewQuantity)
	assert.Equal(t, 5, history[1].NewQuantity)
	assert.True(t, history[1].RecordedAt.Equal(testutil.Epoch))
	assert.True(t, history[0].RecordedAt.Equal(testutil.Epoch.Add(time.Second)))
	assert.Len(t, history[0].ID, 36)
}
