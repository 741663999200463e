package certificate

import "context"

// Store persists issued certificates. Implementations: PostgresStore when
// DATABASE_URL is configured, InMemoryStore otherwise. Only the postgres
// variant enforces mint uniqueness; the in-memory fallback relies on the
// generator's collision probability.
type Store interface {
	Create(ctx context.Context, cert Certificate) error
	FindByMint(ctx context.Context, mint string) (Certificate, error)
	ListByStudent(ctx context.Context, wallet string) ([]Certificate, error)
	ListVerifiedByStudent(ctx context.Context, wallet string) ([]Certificate, error)
	FindByIdempotencyKey(ctx context.Context, key string) (Certificate, error)
	Count(ctx context.Context) (int, error)
	Mode() string
}
