package store

import (
	"context"
	"errors"
	"sync"
)

// memGateway is an in-memory Gateway for tests. Optional per-call hooks
// inject failures.
type memGateway struct {
	mu      sync.Mutex
	records map[pendingKey][]byte
	saves   int
	loads   int
	saveErr error
	loadErr error
}

func newMemGateway() *memGateway {
	return &memGateway{records: make(map[pendingKey][]byte)}
}

func (g *memGateway) Save(_ context.Context, owner string, key Key, data []byte) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.saves++
	if g.saveErr != nil {
		return g.saveErr
	}
	g.records[pendingKey{owner, key}] = data
	return nil
}

func (g *memGateway) Load(_ context.Context, owner string, key Key) ([]byte, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.loads++
	if g.loadErr != nil {
		return nil, g.loadErr
	}
	data, ok := g.records[pendingKey{owner, key}]
	if !ok {
		return nil, ErrNotFound
	}
	return data, nil
}

func (g *memGateway) get(owner string, key Key) ([]byte, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	data, ok := g.records[pendingKey{owner, key}]
	return data, ok
}

func (g *memGateway) saveCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.saves
}

var errBackendDown = errors.New("backend down")
