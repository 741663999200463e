// Package registry maintains the set of wallet identifiers permitted to
// issue certificates. The set is append-only for the life of the process:
// there is no removal operation in this design.
package registry

import (
	"context"
	"sync"
)

// Registry is the authorization gate consulted by the issuance sequencer.
// Implementations must make membership checks O(1) and treat duplicate
// additions as no-ops.
type Registry interface {
	IsAuthorized(ctx context.Context, wallet string) (bool, error)
	Authorize(ctx context.Context, wallet string) error
	List(ctx context.Context) ([]string, error)
}

// DefaultIssuers is the fixed whitelist loaded at startup. In production this
// would live in the on-chain program state.
var DefaultIssuers = []string{
	"Fg6PaFpoGXkYsidMpWTK6W2BeZ7FEfcYkg476zPFsLnS", // demo issuer
	"Demo1111111111111111111111111111111111",       // Dulaty University
	"NU11111111111111111111111111111111111111",     // Nazarbayev University
	"KNU1111111111111111111111111111111111111",     // Al-Farabi Kazakh National University
	"AITU111111111111111111111111111111111111",     // Astana IT University
	"Kaspi11111111111111111111111111111111111",     // Kaspi.kz Academy
	"KMG1111111111111111111111111111111111111",     // KazMunayGas Corporate Institute
	"AstanaHub1111111111111111111111111111111",     // Astana Hub
	"DigKZ1111111111111111111111111111111111",      // NFactorial
}

// InMemory is the default registry when Redis is not configured.
type InMemory struct {
	mu      sync.RWMutex
	wallets map[string]struct{}
}

// NewInMemory constructs a registry seeded with the given wallets.
func NewInMemory(seed []string) *InMemory {
	r := &InMemory{wallets: make(map[string]struct{}, len(seed))}
	for _, w := range seed {
		r.wallets[w] = struct{}{}
	}
	return r
}

// IsAuthorized reports membership. Unknown or malformed input is simply
// false, never an error.
func (r *InMemory) IsAuthorized(_ context.Context, wallet string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.wallets[wallet]
	return ok, nil
}

// Authorize adds a wallet to the set. Idempotent; format validation is the
// caller's responsibility.
func (r *InMemory) Authorize(_ context.Context, wallet string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.wallets[wallet] = struct{}{}
	return nil
}

// List returns the current members. Order is unspecified.
func (r *InMemory) List(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.wallets))
	for w := range r.wallets {
		out = append(out, w)
	}
	return out, nil
}
