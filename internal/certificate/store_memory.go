package certificate

import (
	"context"
	"sync"

	"tamga/pkg/platform/sentinel"
)

// InMemoryStore is the fallback certificate store used when no database is
// configured. Insertion order is preserved so list queries match the
// postgres variant's ordering.
type InMemoryStore struct {
	mu    sync.RWMutex
	certs []Certificate
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Create(_ context.Context, cert Certificate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.certs = append(s.certs, cert)
	return nil
}

func (s *InMemoryStore) FindByMint(_ context.Context, mint string) (Certificate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.certs {
		if c.Mint == mint {
			return c, nil
		}
	}
	return Certificate{}, sentinel.ErrNotFound
}

func (s *InMemoryStore) ListByStudent(_ context.Context, wallet string) ([]Certificate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Certificate
	for _, c := range s.certs {
		if c.Student == wallet {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *InMemoryStore) ListVerifiedByStudent(_ context.Context, wallet string) ([]Certificate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Certificate
	for _, c := range s.certs {
		if c.Student == wallet && c.Verified {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *InMemoryStore) FindByIdempotencyKey(_ context.Context, key string) (Certificate, error) {
	if key == "" {
		return Certificate{}, sentinel.ErrNotFound
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.certs {
		if c.IdempotencyKey == key {
			return c, nil
		}
	}
	return Certificate{}, sentinel.ErrNotFound
}

func (s *InMemoryStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.certs), nil
}

func (s *InMemoryStore) Mode() string { return "memory" }
