package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/GbrlSouza/API-Times-Brasileiros/internal/cache"
)

// fakeClock is an adjustable time source for expiry tests.
type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.now = f.now.Add(d)
}

func TestMemory_RoundTrip(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	store := cache.NewMemory(cache.WithClock(clock.Now))
	ctx := context.Background()

	if err := store.Set(ctx, "wiki:Santos", []byte(`{"title":"Santos FC"}`), time.Hour); err != nil {
		t.Fatalf("Set() unexpected error: %v", err)
	}

	value, ok, err := store.Get(ctx, "wiki:Santos")
	if err != nil {
		t.Fatalf("Get() unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("Get() miss before expiry, want hit")
	}
	if string(value) != `{"title":"Santos FC"}` {
		t.Errorf("Get() value = %s", value)
	}
}

func TestMemory_ExpiryOnRead(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	store := cache.NewMemory(cache.WithClock(clock.Now))
	ctx := context.Background()

	if err := store.Set(ctx, "k", []byte("v"), time.Hour); err != nil {
		t.Fatalf("Set() unexpected error: %v", err)
	}

	clock.Advance(time.Hour)

	if _, ok, _ := store.Get(ctx, "k"); ok {
		t.Fatal("Get() hit at expiry instant, want miss")
	}
	if store.Len() != 0 {
		t.Errorf("expired entry not purged on read, len = %d", store.Len())
	}
}

func TestMemory_MissForAbsentKey(t *testing.T) {
	store := cache.NewMemory()

	if _, ok, err := store.Get(context.Background(), "nope"); ok || err != nil {
		t.Fatalf("Get(absent) = ok=%v err=%v, want miss without error", ok, err)
	}
}

func TestMemory_DefaultTTL(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	store := cache.NewMemory(cache.WithClock(clock.Now))
	ctx := context.Background()

	// Non-positive TTL falls back to the 24h default.
	if err := store.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set() unexpected error: %v", err)
	}

	clock.Advance(23 * time.Hour)
	if _, ok, _ := store.Get(ctx, "k"); !ok {
		t.Fatal("Get() miss before default TTL elapsed")
	}

	clock.Advance(2 * time.Hour)
	if _, ok, _ := store.Get(ctx, "k"); ok {
		t.Fatal("Get() hit after default TTL elapsed")
	}
}

func TestMemory_MaxEntriesEvictsClosestToExpiry(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	store := cache.NewMemory(cache.WithClock(clock.Now), cache.WithMaxEntries(2))
	ctx := context.Background()

	_ = store.Set(ctx, "short", []byte("a"), time.Minute)
	_ = store.Set(ctx, "long", []byte("b"), time.Hour)
	_ = store.Set(ctx, "new", []byte("c"), time.Hour)

	if store.Len() != 2 {
		t.Fatalf("len = %d, want 2", store.Len())
	}
	if _, ok, _ := store.Get(ctx, "short"); ok {
		t.Error("entry closest to expiry survived eviction")
	}
	if _, ok, _ := store.Get(ctx, "long"); !ok {
		t.Error("entry furthest from expiry was evicted")
	}
	if _, ok, _ := store.Get(ctx, "new"); !ok {
		t.Error("newly set entry missing")
	}
}

func TestMemory_OverwriteDoesNotEvict(t *testing.T) {
	store := cache.NewMemory(cache.WithMaxEntries(2))
	ctx := context.Background()

	_ = store.Set(ctx, "a", []byte("1"), time.Hour)
	_ = store.Set(ctx, "b", []byte("2"), time.Hour)
	_ = store.Set(ctx, "a", []byte("3"), time.Hour)

	if store.Len() != 2 {
		t.Fatalf("len = %d, want 2", store.Len())
	}
	value, ok, _ := store.Get(ctx, "a")
	if !ok || string(value) != "3" {
		t.Errorf("Get(a) = %q ok=%v, want overwritten value", value, ok)
	}
}
