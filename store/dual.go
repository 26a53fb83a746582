package store

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
)

// Dual writes through to the remote store while keeping the local mirror
// current. A remote failure degrades silently: the write lands locally, a
// warning is logged, and the caller sees success. There is no retry queue;
// the next save of the same key carries the full payload anyway.
type Dual struct {
	remote Gateway
	local  Gateway
	log    zerolog.Logger
}

// NewDual composes a remote-primary, local-mirror gateway.
func NewDual(remote, local Gateway, log zerolog.Logger) *Dual {
	return &Dual{remote: remote, local: local, log: log}
}

// Save implements Gateway. The local mirror is written first so the payload
// is never lost; remote errors are logged and swallowed.
func (d *Dual) Save(ctx context.Context, owner string, key Key, data []byte) error {
	if err := d.local.Save(ctx, owner, key, data); err != nil {
		return err
	}
	if err := d.remote.Save(ctx, owner, key, data); err != nil {
		d.log.Warn().Err(err).Str("owner", owner).Str("key", string(key)).
			Msg("remote save failed, payload kept locally")
	}
	return nil
}

// Load implements Gateway. Reads prefer the remote store and fall back to
// the local mirror; a payload found only locally is opportunistically pushed
// back to the remote.
func (d *Dual) Load(ctx context.Context, owner string, key Key) ([]byte, error) {
	data, err := d.remote.Load(ctx, owner, key)
	if err == nil {
		// keep the mirror current; a failing mirror write is not worth
		// failing the read for.
		if merr := d.local.Save(ctx, owner, key, data); merr != nil {
			d.log.Warn().Err(merr).Str("owner", owner).Str("key", string(key)).
				Msg("local mirror update failed")
		}
		return data, nil
	}
	if !errors.Is(err, ErrNotFound) {
		d.log.Warn().Err(err).Str("owner", owner).Str("key", string(key)).
			Msg("remote load failed, falling back to local mirror")
	}

	data, lerr := d.local.Load(ctx, owner, key)
	if lerr != nil {
		return nil, lerr
	}
	if errors.Is(err, ErrNotFound) {
		if berr := d.remote.Save(ctx, owner, key, data); berr != nil {
			d.log.Warn().Err(berr).Str("owner", owner).Str("key", string(key)).
				Msg("remote backfill failed")
		}
	}
	return data, nil
}
