package kvstore

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hotel-portal/internal/infra"
	"hotel-portal/internal/pkg/clock"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS kv_entries (
	key        TEXT PRIMARY KEY,
	value      BYTEA NOT NULL,
	expires_at TIMESTAMPTZ
)`

// PostgresStore keeps entries in a single table. Expiry is filtered on read
// and purged on Migrate.
type PostgresStore struct {
	pool   *pgxpool.Pool
	clock  clock.Clock
	ns     string
	logger *slog.Logger
}

func NewPostgresStore(ctx context.Context, dsn, namespace string, clk clock.Clock, logger *slog.Logger) (*PostgresStore, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, infra.WrapStoreErr(logger, infra.KindUnavailable, "open postgres pool", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, infra.WrapStoreErr(logger, infra.KindUnavailable, "ping postgres", err)
	}
	return &PostgresStore{pool: pool, clock: clk, ns: namespace, logger: logger}, nil
}

// Migrate creates the table when missing and drops expired rows.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := s.pool.Exec(ctx, createTableSQL); err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindUnavailable, "create kv table", err)
	}
	if _, err := s.pool.Exec(ctx, `DELETE FROM kv_entries WHERE expires_at IS NOT NULL AND expires_at <= $1`, s.clock.Now()); err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindUnavailable, "purge expired kv entries", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	const q = `SELECT value FROM kv_entries WHERE key = $1 AND (expires_at IS NULL OR expires_at > $2)`
	var value []byte
	err := s.pool.QueryRow(ctx, q, namespaced(s.ns, key), s.clock.Now()).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, infra.WrapStoreErr(s.logger, infra.KindNotFound, "key not found", nil)
	}
	if err != nil {
		return nil, infra.WrapStoreErr(s.logger, infra.KindUnavailable, "postgres get", err)
	}
	return value, nil
}

func (s *PostgresStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var expiresAt *time.Time
	if ttl > 0 {
		t := s.clock.Now().Add(ttl)
		expiresAt = &t
	}
	const q = `
		INSERT INTO kv_entries (key, value, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			expires_at = EXCLUDED.expires_at`
	if _, err := s.pool.Exec(ctx, q, namespaced(s.ns, key), value, expiresAt); err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindUnavailable, "postgres set", err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := s.pool.Exec(ctx, `DELETE FROM kv_entries WHERE key = $1`, namespaced(s.ns, key)); err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindUnavailable, "postgres delete", err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
