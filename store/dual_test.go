package store

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
)

func TestDualSave(t *testing.T) {
	ctx := context.Background()

	t.Run("writes both stores", func(t *testing.T) {
		remote, local := newMemGateway(), newMemGateway()
		d := NewDual(remote, local, zerolog.Nop())
		if err := d.Save(ctx, "alice", KeyDomains, []byte("v1")); err != nil {
			t.Fatal(err)
		}
		for name, gw := range map[string]*memGateway{"remote": remote, "local": local} {
			if data, ok := gw.get("alice", KeyDomains); !ok || !bytes.Equal(data, []byte("v1")) {
				t.Errorf("%s store holds %q, want v1", name, data)
			}
		}
	})

	t.Run("remote failure degrades silently", func(t *testing.T) {
		remote, local := newMemGateway(), newMemGateway()
		remote.saveErr = errBackendDown
		d := NewDual(remote, local, zerolog.Nop())
		if err := d.Save(ctx, "alice", KeyDomains, []byte("v1")); err != nil {
			t.Fatalf("remote failure leaked to the caller: %v", err)
		}
		if data, ok := local.get("alice", KeyDomains); !ok || !bytes.Equal(data, []byte("v1")) {
			t.Error("payload not kept locally")
		}
	})

	t.Run("local failure is fatal", func(t *testing.T) {
		remote, local := newMemGateway(), newMemGateway()
		local.saveErr = errBackendDown
		d := NewDual(remote, local, zerolog.Nop())
		if err := d.Save(ctx, "alice", KeyDomains, []byte("v1")); err == nil {
			t.Error("a failing local mirror must fail the save")
		}
	})
}

func TestDualLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("remote wins and refreshes the mirror", func(t *testing.T) {
		remote, local := newMemGateway(), newMemGateway()
		remote.records[pendingKey{"alice", KeyDomains}] = []byte("remote")
		local.records[pendingKey{"alice", KeyDomains}] = []byte("stale")
		d := NewDual(remote, local, zerolog.Nop())

		data, err := d.Load(ctx, "alice", KeyDomains)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(data, []byte("remote")) {
			t.Errorf("Load = %q, want the remote payload", data)
		}
		if mirrored, _ := local.get("alice", KeyDomains); !bytes.Equal(mirrored, []byte("remote")) {
			t.Errorf("mirror holds %q, want refreshed to remote", mirrored)
		}
	})

	t.Run("remote outage falls back to the mirror", func(t *testing.T) {
		remote, local := newMemGateway(), newMemGateway()
		remote.loadErr = errBackendDown
		local.records[pendingKey{"alice", KeyDomains}] = []byte("mirror")
		d := NewDual(remote, local, zerolog.Nop())

		data, err := d.Load(ctx, "alice", KeyDomains)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(data, []byte("mirror")) {
			t.Errorf("Load = %q, want the mirror payload", data)
		}
	})

	t.Run("remote miss backfills from the mirror", func(t *testing.T) {
		remote, local := newMemGateway(), newMemGateway()
		local.records[pendingKey{"alice", KeyDomains}] = []byte("mirror")
		d := NewDual(remote, local, zerolog.Nop())

		if _, err := d.Load(ctx, "alice", KeyDomains); err != nil {
			t.Fatal(err)
		}
		if data, ok := remote.get("alice", KeyDomains); !ok || !bytes.Equal(data, []byte("mirror")) {
			t.Error("remote was not backfilled from the mirror")
		}
	})

	t.Run("missing everywhere", func(t *testing.T) {
		d := NewDual(newMemGateway(), newMemGateway(), zerolog.Nop())
		if _, err := d.Load(ctx, "alice", KeyDomains); err != ErrNotFound {
			t.Errorf("Load error = %v, want ErrNotFound", err)
		}
	})
}
