package kvstore

import (
	"context"
	"database/sql"
	"sync"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/yupiter/analytics-api/infrastructure/database/postgres"
)

const kvTable = "kv"

// Postgres keeps the same one-document-per-key layout in a single table, for
// deployments where the data should outlive the host. Each Set upserts one
// row; keys stay independent.
type Postgres struct {
	conn   *postgres.Connection
	prefix string
	mu     sync.Mutex
}

func NewPostgres(ctx context.Context, conn *postgres.Connection, prefix string) (*Postgres, error) {
	_, err := conn.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS `+kvTable+` (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return nil, errors.Wrap(err, "creating kv table")
	}

	return &Postgres{conn: conn, prefix: prefix}, nil
}

func (s *Postgres) Get(key string, out any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	query, args, err := squirrel.
		Select("value").
		From(kvTable).
		Where(squirrel.Eq{"key": s.prefix + key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("failed to build kv query")
		return false
	}

	var raw string
	err = s.conn.QueryRow(query, args...).Scan(&raw)
	if err == sql.ErrNoRows {
		return false
	}
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("failed to read stored value")
		return false
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("discarding undecodable stored value")
		return false
	}

	return true
}

func (s *Postgres) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "encoding value for key %s", key)
	}

	query, args, err := squirrel.
		Insert(kvTable).
		Columns("key", "value").
		Values(s.prefix+key, string(raw)).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = s.conn.Exec(query, args...)
	return errors.Wrapf(err, "writing key %s", key)
}

func (s *Postgres) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query, args, err := squirrel.
		Delete(kvTable).
		Where(squirrel.Eq{"key": s.prefix + key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = s.conn.Exec(query, args...)
	return errors.Wrapf(err, "deleting key %s", key)
}

func (s *Postgres) Keys() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	query, args, err := squirrel.
		Select("key").
		From(kvTable).
		Where(squirrel.Like{"key": s.prefix + "%"}).
		OrderBy("key ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "listing keys")
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key[len(s.prefix):])
	}

	return keys, rows.Err()
}
