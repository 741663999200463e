package property

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"tamga/pkg/platform/sentinel"
)

// ErrInsufficientTokens is returned when a purchase exceeds the remaining
// supply.
var ErrInsufficientTokens = errors.New("insufficient tokens available")

// Store holds the property catalog and wallet holdings.
type Store interface {
	List(ctx context.Context) ([]Property, error)
	Get(ctx context.Context, id string) (Property, error)
	Purchase(ctx context.Context, id, wallet string, tokens int) (Property, Holding, error)
	HoldingsByWallet(ctx context.Context, wallet string) ([]Holding, error)
}

// InMemoryStore keeps everything under one mutex; purchases check supply and
// mutate atomically.
type InMemoryStore struct {
	mu         sync.RWMutex
	properties map[string]*Property
	order      []string
	holdings   map[string]map[string]*Holding // wallet -> propertyID -> holding
	now        func() time.Time
}

// NewInMemoryStore constructs a store seeded with the demo catalog.
func NewInMemoryStore() *InMemoryStore {
	s := &InMemoryStore{
		properties: make(map[string]*Property),
		holdings:   make(map[string]map[string]*Holding),
		now:        time.Now,
	}
	for _, p := range seedProperties() {
		prop := p
		s.properties[p.ID] = &prop
		s.order = append(s.order, p.ID)
	}
	return s
}

// List returns the catalog in seed order.
func (s *InMemoryStore) List(_ context.Context) ([]Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Property, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.properties[id])
	}
	return out, nil
}

func (s *InMemoryStore) Get(_ context.Context, id string) (Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.properties[id]
	if !ok {
		return Property{}, sentinel.ErrNotFound
	}
	return *p, nil
}

// Purchase checks supply and updates the property and the wallet's holding in
// one critical section.
func (s *InMemoryStore) Purchase(_ context.Context, id, wallet string, tokens int) (Property, Holding, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.properties[id]
	if !ok {
		return Property{}, Holding{}, sentinel.ErrNotFound
	}
	if tokens > p.AvailableTokens() {
		return Property{}, Holding{}, ErrInsufficientTokens
	}

	p.TokensSold += tokens

	byProperty, ok := s.holdings[wallet]
	if !ok {
		byProperty = make(map[string]*Holding)
		s.holdings[wallet] = byProperty
	}
	h, ok := byProperty[id]
	if !ok {
		h = &Holding{PropertyID: id, Wallet: wallet}
		byProperty[id] = h
	}
	h.Tokens += tokens
	h.InvestedUSD += float64(tokens) * p.PricePerToken
	h.LastPurchase = s.now()

	return *p, *h, nil
}

// HoldingsByWallet returns the wallet's positions sorted by property id.
func (s *InMemoryStore) HoldingsByWallet(_ context.Context, wallet string) ([]Holding, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Holding, 0, len(s.holdings[wallet]))
	for _, h := range s.holdings[wallet] {
		out = append(out, *h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PropertyID < out[j].PropertyID })
	return out, nil
}
