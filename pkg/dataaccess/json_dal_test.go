package dataaccess

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/Jacobbrewer1/orderbot/pkg/custom"
	"github.com/Jacobbrewer1/orderbot/pkg/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGuildDal(t *testing.T) GuildDal {
	t.Helper()
	d, err := NewJSONGuildDal(slog.Default(), t.TempDir())
	require.NoError(t, err)
	return d
}

func newTestTicketDal(t *testing.T) TicketDal {
	t.Helper()
	d, err := NewJSONTicketDal(slog.Default(), t.TempDir())
	require.NoError(t, err)
	return d
}

func TestJSONGuildDal_CreateExists(t *testing.T) {
	ctx := context.Background()
	d := newTestGuildDal(t)

	exists, err := d.Exists(ctx, "g1")
	require.NoError(t, err)
	require.False(t, exists)

	require.NoError(t, d.Create(ctx, entities.NewGuild("g1", "c1", "m1", "cat1", "2024-05-01")))

	exists, err = d.Exists(ctx, "g1")
	require.NoError(t, err)
	require.True(t, exists)

	err = d.Create(ctx, entities.NewGuild("g1", "c2", "m2", "cat2", "2024-05-01"))
	require.ErrorIs(t, err, ErrAlreadyExists)

	got, err := d.Get(ctx, "g1")
	require.NoError(t, err)
	require.Equal(t, "c1", got.OrderChannelID)
	require.Equal(t, entities.StoreStatusClosed, got.Status)
	require.Equal(t, 0, got.TicketsToday)
}

func TestJSONGuildDal_NotFound(t *testing.T) {
	ctx := context.Background()
	d := newTestGuildDal(t)

	_, err := d.Get(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)

	calls := map[string]func() error{
		"SetStatus":             func() error { return d.SetStatus(ctx, "missing", entities.StoreStatusOpen) },
		"SetOrderPanel":         func() error { return d.SetOrderPanel(ctx, "missing", "c", "m") },
		"SetCategory":           func() error { return d.SetCategory(ctx, "missing", "cat") },
		"SetTicketLimit":        func() error { return d.SetTicketLimit(ctx, "missing", 3) },
		"SetTicketsToday":       func() error { return d.SetTicketsToday(ctx, "missing", 3) },
		"IncrementTicketsToday": func() error { return d.IncrementTicketsToday(ctx, "missing") },
		"ResetDaily":            func() error { return d.ResetDaily(ctx, "missing", "2024-05-01") },
		"AddNotify":             func() error { return d.AddNotify(ctx, "missing", "u1") },
		"RemoveNotify":          func() error { return d.RemoveNotify(ctx, "missing", "u1") },
		"ClearNotify":           func() error { return d.ClearNotify(ctx, "missing") },
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, call(), ErrNotFound)
		})
	}
}

func TestJSONGuildDal_FieldUpdates(t *testing.T) {
	ctx := context.Background()
	d := newTestGuildDal(t)
	require.NoError(t, d.Create(ctx, entities.NewGuild("g1", "c1", "m1", "cat1", "2024-05-01")))

	require.NoError(t, d.SetStatus(ctx, "g1", entities.StoreStatusPaused))
	require.NoError(t, d.SetTicketLimit(ctx, "g1", 4))
	require.NoError(t, d.IncrementTicketsToday(ctx, "g1"))
	require.NoError(t, d.IncrementTicketsToday(ctx, "g1"))
	require.NoError(t, d.SetOrderPanel(ctx, "g1", "c9", "m9"))

	got, err := d.Get(ctx, "g1")
	require.NoError(t, err)
	require.Equal(t, entities.StoreStatusPaused, got.Status)
	require.Equal(t, 4, got.TicketLimit)
	require.Equal(t, 2, got.TicketsToday)
	require.Equal(t, "c9", got.OrderChannelID)
	require.Equal(t, "m9", got.OrderMessageID)
	require.Equal(t, "cat1", got.CategoryID)

	require.NoError(t, d.SetTicketsToday(ctx, "g1", 9))
	require.NoError(t, d.SetCategory(ctx, "g1", "cat2"))
	got, err = d.Get(ctx, "g1")
	require.NoError(t, err)
	require.Equal(t, 9, got.TicketsToday)
	require.Equal(t, "cat2", got.CategoryID)
}

func TestJSONGuildDal_ResetDailyIdempotent(t *testing.T) {
	ctx := context.Background()
	d := newTestGuildDal(t)
	require.NoError(t, d.Create(ctx, entities.NewGuild("g1", "c1", "m1", "cat1", "2024-05-01")))
	require.NoError(t, d.SetTicketsToday(ctx, "g1", 5))

	require.NoError(t, d.ResetDaily(ctx, "g1", "2024-05-02"))
	got, err := d.Get(ctx, "g1")
	require.NoError(t, err)
	require.Equal(t, 0, got.TicketsToday)
	require.Equal(t, custom.Date("2024-05-02"), got.LastReset)

	require.NoError(t, d.ResetDaily(ctx, "g1", "2024-05-02"))
	got, err = d.Get(ctx, "g1")
	require.NoError(t, err)
	require.Equal(t, 0, got.TicketsToday)
	require.Equal(t, custom.Date("2024-05-02"), got.LastReset)

	// A stale second reset must not wipe tickets counted since the first.
	require.NoError(t, d.IncrementTicketsToday(ctx, "g1"))
	require.NoError(t, d.ResetDaily(ctx, "g1", "2024-05-02"))
	got, err = d.Get(ctx, "g1")
	require.NoError(t, err)
	require.Equal(t, 1, got.TicketsToday)
}

func TestJSONGuildDal_Notify(t *testing.T) {
	ctx := context.Background()
	d := newTestGuildDal(t)
	require.NoError(t, d.Create(ctx, entities.NewGuild("g1", "c1", "m1", "cat1", "2024-05-01")))

	require.NoError(t, d.AddNotify(ctx, "g1", "u1"))
	require.NoError(t, d.AddNotify(ctx, "g1", "u1"))
	require.NoError(t, d.AddNotify(ctx, "g1", "u2"))

	got, err := d.Get(ctx, "g1")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"u1", "u2"}, got.Notify)

	require.NoError(t, d.RemoveNotify(ctx, "g1", "u1"))
	require.NoError(t, d.RemoveNotify(ctx, "g1", "nobody"))
	got, err = d.Get(ctx, "g1")
	require.NoError(t, err)
	require.Equal(t, []string{"u2"}, got.Notify)

	require.NoError(t, d.ClearNotify(ctx, "g1"))
	got, err = d.Get(ctx, "g1")
	require.NoError(t, err)
	require.Empty(t, got.Notify)
}

func TestJSONGuildDal_ConcurrentUpdates(t *testing.T) {
	ctx := context.Background()
	d := newTestGuildDal(t)
	require.NoError(t, d.Create(ctx, entities.NewGuild("g1", "c1", "m1", "cat1", "2024-05-01")))

	const workers = 20
	wg := new(sync.WaitGroup)
	for i := 0; i < workers; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.NoError(t, d.IncrementTicketsToday(ctx, "g1"))
		}()
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, d.AddNotify(ctx, "g1", fmt.Sprintf("u%d", i)))
		}(i)
	}
	require.NoError(t, d.SetStatus(ctx, "g1", entities.StoreStatusOpen))
	wg.Wait()

	got, err := d.Get(ctx, "g1")
	require.NoError(t, err)
	require.Equal(t, workers, got.TicketsToday)
	require.Len(t, got.Notify, workers)
	require.Equal(t, entities.StoreStatusOpen, got.Status)
}

func TestJSONGuildDal_Persists(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	d, err := NewJSONGuildDal(slog.Default(), dir)
	require.NoError(t, err)
	require.NoError(t, d.Create(ctx, entities.NewGuild("g1", "c1", "m1", "cat1", "2024-05-01")))

	_, err = os.Stat(filepath.Join(dir, guildsFile))
	require.NoError(t, err)

	reopened, err := NewJSONGuildDal(slog.Default(), dir)
	require.NoError(t, err)
	exists, err := reopened.Exists(ctx, "g1")
	require.NoError(t, err)
	require.True(t, exists)
}

func TestJSONGuildDal_GetInvalidRecord(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	d, err := NewJSONGuildDal(slog.Default(), dir)
	require.NoError(t, err)

	doc := `{"g1": {"id": "g1", "status": "Open", "last_reset": "01/05/2024"}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, guildsFile), []byte(doc), 0o644))

	_, err = d.Get(ctx, "g1")
	require.ErrorIs(t, err, entities.ErrInvalidGuild)
}

func TestJSONTicketDal(t *testing.T) {
	ctx := context.Background()
	d := newTestTicketDal(t)

	exists, err := d.Exists(ctx, "t1")
	require.NoError(t, err)
	require.False(t, exists)

	_, err = d.Get(ctx, "t1")
	require.ErrorIs(t, err, ErrNotFound)

	first := custom.Datetime(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))
	second := custom.Datetime(time.Date(2024, 5, 1, 11, 0, 0, 0, time.UTC))

	require.NoError(t, d.Create(ctx, &entities.Ticket{ID: "t2", UserID: "u2", GuildID: "g1", CreatedAt: second}))
	require.NoError(t, d.Create(ctx, &entities.Ticket{ID: "t1", UserID: "u1", GuildID: "g1", CreatedAt: first}))
	require.NoError(t, d.Create(ctx, &entities.Ticket{ID: "t3", UserID: "u3", GuildID: "g2", CreatedAt: first}))

	err = d.Create(ctx, &entities.Ticket{ID: "t1", UserID: "u9", GuildID: "g1"})
	require.ErrorIs(t, err, ErrAlreadyExists)

	got, err := d.Get(ctx, "t1")
	require.NoError(t, err)
	require.Equal(t, "u1", got.UserID)

	list, err := d.ListByGuild(ctx, "g1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "t1", list[0].ID)
	require.Equal(t, "t2", list[1].ID)

	require.NoError(t, d.Remove(ctx, "t1"))
	require.NoError(t, d.Remove(ctx, "t1"))
	require.NoError(t, d.Remove(ctx, "never"))

	exists, err = d.Exists(ctx, "t1")
	require.NoError(t, err)
	require.False(t, exists)

	// Unrelated records are untouched.
	exists, err = d.Exists(ctx, "t2")
	require.NoError(t, err)
	require.True(t, exists)
	exists, err = d.Exists(ctx, "t3")
	require.NoError(t, err)
	require.True(t, exists)
}
