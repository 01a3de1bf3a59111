package store

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Table names double as live-query topics.
const (
	topicLaunches = "launches"
	topicRockets  = "rockets"
	topicCapsules = "capsules"
)

// Store is the SQLite-backed cache. It is the only owner of persisted rows
// and notifies live queries after every committed write.
type Store struct {
	db   *sqlx.DB
	live *registry
}

// Open connects to the SQLite file at path (creating parent directories),
// applies pending migrations and returns a ready Store.
func Open(ctx context.Context, path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating db dir: %w", err)
		}
	}

	db, err := sqlx.ConnectContext(ctx, "sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("connecting to db: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	log.Debug().Str("path", path).Msg("cache store opened")
	return &Store{db: db, live: newRegistry()}, nil
}

// dsn builds a file URI for path. The path is percent-encoded so '?' and '#'
// in a file name are not read as the query or fragment.
func dsn(path string) string {
	escaped := (&url.URL{Path: path}).EscapedPath()
	return "file:" + escaped + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_txlock=immediate"
}

func migrate(ctx context.Context, db *sqlx.DB) error {
	fsys, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		return fmt.Errorf("loading migrations: %w", err)
	}
	provider, err := goose.NewProvider(goose.DialectSQLite3, db.DB, fsys)
	if err != nil {
		return fmt.Errorf("preparing migrations: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("applying migration: %w", err)
	}
	for _, r := range results {
		log.Debug().Int64("version", r.Source.Version).Dur("duration", r.Duration).Msg("migration applied")
	}
	return nil
}

// Close ends every live query and closes the database.
func (s *Store) Close() error {
	s.live.Shutdown()
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("closing store: %w", err)
	}
	return nil
}

// withTx runs fn inside one transaction and publishes topic after commit.
func (s *Store) withTx(ctx context.Context, topic string, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning tx: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing tx: %w", err)
	}
	s.live.Publish(topic)
	return nil
}
