package store

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func TestLocal(t *testing.T) {
	ctx := context.Background()
	l, err := OpenLocal(filepath.Join(t.TempDir(), "mirror.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()

	t.Run("missing record", func(t *testing.T) {
		if _, err := l.Load(ctx, "alice", KeyDomains); !errors.Is(err, ErrNotFound) {
			t.Errorf("Load error = %v, want ErrNotFound", err)
		}
	})

	t.Run("save and load", func(t *testing.T) {
		if err := l.Save(ctx, "alice", KeyDomains, []byte("v1")); err != nil {
			t.Fatal(err)
		}
		data, err := l.Load(ctx, "alice", KeyDomains)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(data, []byte("v1")) {
			t.Errorf("Load = %q, want v1", data)
		}
	})

	t.Run("save replaces", func(t *testing.T) {
		if err := l.Save(ctx, "alice", KeyDomains, []byte("v2")); err != nil {
			t.Fatal(err)
		}
		data, err := l.Load(ctx, "alice", KeyDomains)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(data, []byte("v2")) {
			t.Errorf("Load = %q, want the replaced v2", data)
		}
	})

	t.Run("keys and owners are independent", func(t *testing.T) {
		if err := l.Save(ctx, "alice", KeyTransactions, []byte("txs")); err != nil {
			t.Fatal(err)
		}
		if err := l.Save(ctx, "bob", KeyDomains, []byte("bobs")); err != nil {
			t.Fatal(err)
		}
		data, err := l.Load(ctx, "alice", KeyDomains)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(data, []byte("v2")) {
			t.Errorf("alice/domains = %q, want untouched v2", data)
		}
	})
}

func TestOpenLocalReopens(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "mirror.db")

	l, err := OpenLocal(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := l.Save(ctx, "alice", KeyStats, []byte("persisted")); err != nil {
		t.Fatal(err)
	}
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}

	l, err = OpenLocal(path)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()
	data, err := l.Load(ctx, "alice", KeyStats)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, []byte("persisted")) {
		t.Errorf("Load after reopen = %q, want persisted", data)
	}
}
