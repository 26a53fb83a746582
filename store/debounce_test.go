package store

import (
	"bytes"
	"context"
	"testing"
	"time"
)

func TestDebouncerCoalesces(t *testing.T) {
	ctx := context.Background()
	gw := newMemGateway()
	d := NewDebouncer(gw, 20*time.Millisecond)

	for _, payload := range []string{"v1", "v2", "v3"} {
		if err := d.Save(ctx, "alice", KeyDomains, []byte(payload)); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case <-d.flushed:
	case <-time.After(time.Second):
		t.Fatal("flush never happened")
	}

	if got := gw.saveCount(); got != 1 {
		t.Errorf("backend saw %d saves, want the 3 writes coalesced into 1", got)
	}
	data, ok := gw.get("alice", KeyDomains)
	if !ok || !bytes.Equal(data, []byte("v3")) {
		t.Errorf("backend holds %q, want the latest v3", data)
	}
}

func TestDebouncerLoadSeesStaged(t *testing.T) {
	ctx := context.Background()
	gw := newMemGateway()
	gw.records[pendingKey{"alice", KeyDomains}] = []byte("old")
	d := NewDebouncer(gw, time.Hour) // never flushes during the test

	if err := d.Save(ctx, "alice", KeyDomains, []byte("staged")); err != nil {
		t.Fatal(err)
	}
	data, err := d.Load(ctx, "alice", KeyDomains)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, []byte("staged")) {
		t.Errorf("Load = %q, want the staged payload, not the stale backend one", data)
	}

	// an unrelated key delegates to the backend.
	if _, err := d.Load(ctx, "alice", KeyStats); err != ErrNotFound {
		t.Errorf("Load(stats) error = %v, want ErrNotFound from the backend", err)
	}
}

func TestDebouncerFlush(t *testing.T) {
	ctx := context.Background()
	gw := newMemGateway()
	d := NewDebouncer(gw, time.Hour)

	if err := d.Save(ctx, "alice", KeyDomains, []byte("v1")); err != nil {
		t.Fatal(err)
	}
	if err := d.Save(ctx, "alice", KeyTransactions, []byte("v2")); err != nil {
		t.Fatal(err)
	}
	if err := d.Flush(ctx); err != nil {
		t.Fatal(err)
	}
	if got := gw.saveCount(); got != 2 {
		t.Errorf("backend saw %d saves, want both staged keys", got)
	}
	// a second flush has nothing to do.
	if err := d.Flush(ctx); err != nil {
		t.Fatal(err)
	}
	if got := gw.saveCount(); got != 2 {
		t.Errorf("empty flush wrote %d more saves", got-2)
	}
}

func TestDebouncerClose(t *testing.T) {
	ctx := context.Background()
	gw := newMemGateway()
	d := NewDebouncer(gw, time.Hour)

	if err := d.Save(ctx, "alice", KeyDomains, []byte("v1")); err != nil {
		t.Fatal(err)
	}
	if err := d.Close(ctx); err != nil {
		t.Fatal(err)
	}
	if data, ok := gw.get("alice", KeyDomains); !ok || !bytes.Equal(data, []byte("v1")) {
		t.Error("Close dropped the pending write")
	}

	// after Close saves pass straight through.
	if err := d.Save(ctx, "alice", KeyDomains, []byte("v2")); err != nil {
		t.Fatal(err)
	}
	if data, _ := gw.get("alice", KeyDomains); !bytes.Equal(data, []byte("v2")) {
		t.Errorf("post-close save was staged instead of written, backend holds %q", data)
	}
}

func TestDebouncerFlushReportsFirstError(t *testing.T) {
	ctx := context.Background()
	gw := newMemGateway()
	gw.saveErr = errBackendDown
	d := NewDebouncer(gw, time.Hour)

	if err := d.Save(ctx, "alice", KeyDomains, []byte("v1")); err != nil {
		t.Fatal(err)
	}
	if err := d.Flush(ctx); err != errBackendDown {
		t.Errorf("Flush error = %v, want the backend error", err)
	}
}
