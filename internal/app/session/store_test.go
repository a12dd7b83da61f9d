package session

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jsamuelsen11/skysearch/internal/domain"
	"github.com/jsamuelsen11/skysearch/internal/platform/clock"
)

func TestStore_AddGetDelete(t *testing.T) {
	t.Parallel()

	clk := clock.NewFake(now)
	store := NewStore(clk, time.Hour, nil)
	sched := &fakeScheduler{}
	sess := New(Params{ID: "abc", Now: clk.Now()})
	sess.BindLookup(sched)

	if err := store.Add(sess); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := store.Add(New(Params{ID: "abc"})); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("duplicate Add() error = %v, want ErrConflict", err)
	}

	got, err := store.Get("abc")
	if err != nil || got != sess {
		t.Fatalf("Get() = %v, %v", got, err)
	}

	if err := store.Delete("abc"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if !sched.stopped {
		t.Error("Delete() did not stop the session's lookup")
	}
	if _, err := store.Get("abc"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrNotFound", err)
	}
	if err := store.Delete("abc"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
}

func TestStore_EvictIdle(t *testing.T) {
	t.Parallel()

	clk := clock.NewFake(now)
	store := NewStore(clk, 30*time.Minute, nil)
	_ = store.Add(New(Params{ID: "idle", Now: clk.Now()}))
	_ = store.Add(New(Params{ID: "busy", Now: clk.Now()}))

	clk.Advance(20 * time.Minute)
	if _, err := store.Get("busy"); err != nil {
		t.Fatalf("Get(busy) error = %v", err)
	}

	clk.Advance(10 * time.Minute)
	evicted := store.Evict()

	if len(evicted) != 1 || evicted[0] != "idle" {
		t.Errorf("Evict() = %v, want [idle]", evicted)
	}
	if store.Len() != 1 {
		t.Errorf("Len() = %d, want 1", store.Len())
	}
}

func TestStore_EvictDisabled(t *testing.T) {
	t.Parallel()

	clk := clock.NewFake(now)
	store := NewStore(clk, 0, nil)
	_ = store.Add(New(Params{ID: "forever", Now: clk.Now()}))
	clk.Advance(24 * time.Hour)

	if evicted := store.Evict(); len(evicted) != 0 {
		t.Errorf("Evict() = %v with ttl disabled", evicted)
	}
}

func TestStore_Janitor(t *testing.T) {
	t.Parallel()

	clk := clock.NewFake(now)
	store := NewStore(clk, time.Minute, nil)
	_ = store.Add(New(Params{ID: "idle", Now: clk.Now()}))
	store.StartJanitor(time.Minute)

	clk.Advance(time.Minute)

	deadline := time.Now().Add(2 * time.Second)
	for store.Len() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("janitor did not evict the idle session")
		}
		time.Sleep(5 * time.Millisecond)
	}

	if err := store.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}

func TestStore_JanitorRunsSweeps(t *testing.T) {
	t.Parallel()

	clk := clock.NewFake(now)
	store := NewStore(clk, time.Minute, nil)

	var sweeps atomic.Int32
	store.OnSweep(func() { sweeps.Add(1) })
	store.StartJanitor(time.Minute)

	clk.Advance(time.Minute)

	deadline := time.Now().Add(2 * time.Second)
	for sweeps.Load() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("janitor did not run the sweep hook")
		}
		time.Sleep(5 * time.Millisecond)
	}

	if err := store.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}

func TestStore_ShutdownClosesSessions(t *testing.T) {
	t.Parallel()

	store := NewStore(clock.NewFake(now), time.Hour, nil)
	sched := &fakeScheduler{}
	sess := New(Params{ID: "a", Now: now})
	sess.BindLookup(sched)
	_ = store.Add(sess)

	if err := store.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() without janitor error = %v", err)
	}
	if !sched.stopped {
		t.Error("Shutdown() did not stop session lookups")
	}
	if store.Len() != 0 {
		t.Errorf("Len() = %d after Shutdown", store.Len())
	}
	if err := store.Shutdown(context.Background()); err != nil {
		t.Errorf("second Shutdown() error = %v", err)
	}
}
