// Package store persists portfolio payloads through a remote HTTP store with
// a local sqlite mirror. Payloads are opaque to the store: the ledger codecs
// produce them, the store only moves bytes under well-known keys.
package store

import (
	"context"
	"errors"
)

// Key names one persisted payload of a portfolio.
type Key string

const (
	KeyDomains      Key = "domains"
	KeyTransactions Key = "transactions"
	KeyStats        Key = "stats"
)

// ErrNotFound is returned when an owner has no payload under a key.
var ErrNotFound = errors.New("record not found")

// Gateway moves payloads in and out of one backing store.
type Gateway interface {
	// Save stores the payload for an owner under a key, replacing any
	// previous version.
	Save(ctx context.Context, owner string, key Key, data []byte) error
	// Load returns the payload for an owner under a key, or ErrNotFound.
	Load(ctx context.Context, owner string, key Key) ([]byte, error)
}
