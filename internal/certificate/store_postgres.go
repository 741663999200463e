package certificate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"tamga/pkg/platform/sentinel"
)

// PostgresStore persists certificates in PostgreSQL. The unique constraint on
// mint is the only hard guarantee against duplicate identifiers in the whole
// system.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed certificate store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const schema = `
CREATE TABLE IF NOT EXISTS certificates (
	id BIGSERIAL PRIMARY KEY,
	mint TEXT UNIQUE NOT NULL,
	student_name TEXT NOT NULL,
	course_name TEXT NOT NULL,
	issuer_name TEXT NOT NULL,
	issue_date TEXT NOT NULL,
	student_wallet TEXT NOT NULL,
	issuer_wallet TEXT NOT NULL,
	metadata_uri TEXT,
	verified BOOLEAN NOT NULL DEFAULT true,
	signature TEXT,
	idempotency_key TEXT,
	created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS certificates_student_wallet_idx ON certificates (student_wallet);
CREATE INDEX IF NOT EXISTS certificates_idempotency_key_idx ON certificates (idempotency_key);
`

// EnsureSchema creates the certificates table if it does not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure certificates schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Create(ctx context.Context, cert Certificate) error {
	createdAt := cert.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	query := `
		INSERT INTO certificates (
			mint, student_name, course_name, issuer_name, issue_date,
			student_wallet, issuer_wallet, metadata_uri, verified,
			signature, idempotency_key, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NULLIF($11, ''), $12)
	`
	_, err := s.db.ExecContext(ctx, query,
		cert.Mint, cert.StudentName, cert.CourseName, cert.IssuerName, cert.Date,
		cert.Student, cert.Issuer, cert.MetadataURI, cert.Verified,
		cert.Signature, cert.IdempotencyKey, createdAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("insert certificate: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByMint(ctx context.Context, mint string) (Certificate, error) {
	row := s.db.QueryRowContext(ctx, selectColumns+` WHERE mint = $1`, mint)
	cert, err := scanCertificate(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Certificate{}, sentinel.ErrNotFound
		}
		return Certificate{}, fmt.Errorf("find certificate by mint: %w", err)
	}
	return cert, nil
}

func (s *PostgresStore) ListByStudent(ctx context.Context, wallet string) ([]Certificate, error) {
	return s.list(ctx, selectColumns+` WHERE student_wallet = $1 ORDER BY id`, wallet)
}

func (s *PostgresStore) ListVerifiedByStudent(ctx context.Context, wallet string) ([]Certificate, error) {
	return s.list(ctx, selectColumns+` WHERE student_wallet = $1 AND verified ORDER BY id`, wallet)
}

func (s *PostgresStore) FindByIdempotencyKey(ctx context.Context, key string) (Certificate, error) {
	if key == "" {
		return Certificate{}, sentinel.ErrNotFound
	}
	row := s.db.QueryRowContext(ctx, selectColumns+` WHERE idempotency_key = $1`, key)
	cert, err := scanCertificate(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Certificate{}, sentinel.ErrNotFound
		}
		return Certificate{}, fmt.Errorf("find certificate by idempotency key: %w", err)
	}
	return cert, nil
}

func (s *PostgresStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM certificates`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count certificates: %w", err)
	}
	return n, nil
}

func (s *PostgresStore) Mode() string { return "postgres" }

const selectColumns = `
	SELECT mint, student_name, course_name, issuer_name, issue_date,
	       student_wallet, issuer_wallet, COALESCE(metadata_uri, ''), verified,
	       COALESCE(signature, ''), COALESCE(idempotency_key, ''), created_at
	FROM certificates`

func (s *PostgresStore) list(ctx context.Context, query string, args ...any) ([]Certificate, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list certificates: %w", err)
	}
	defer rows.Close()

	var out []Certificate
	for rows.Next() {
		cert, err := scanCertificate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan certificate: %w", err)
		}
		out = append(out, cert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate certificates: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCertificate(row rowScanner) (Certificate, error) {
	var c Certificate
	err := row.Scan(
		&c.Mint, &c.StudentName, &c.CourseName, &c.IssuerName, &c.Date,
		&c.Student, &c.Issuer, &c.MetadataURI, &c.Verified,
		&c.Signature, &c.IdempotencyKey, &c.CreatedAt,
	)
	return c, err
}
