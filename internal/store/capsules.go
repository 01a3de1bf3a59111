package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/JoseDFN/SpaceX-Explorer-App-sub001/internal/domain"
)

// dbCapsule represents a capsule as stored in the database.
type dbCapsule struct {
	ID            string     `db:"id"`
	Serial        string     `db:"serial"`
	Status        string     `db:"status"`
	Type          string     `db:"type"`
	ReuseCount    int        `db:"reuse_count"`
	WaterLandings int        `db:"water_landings"`
	LandLandings  int        `db:"land_landings"`
	LastUpdate    string     `db:"last_update"`
	LaunchIDs     StringList `db:"launch_ids"`
	CachedAt      int64      `db:"cached_at"`
}

func toDomainCapsule(row *dbCapsule) domain.Capsule {
	return domain.Capsule{
		ID:            row.ID,
		Serial:        row.Serial,
		Status:        row.Status,
		Type:          row.Type,
		ReuseCount:    row.ReuseCount,
		WaterLandings: row.WaterLandings,
		LandLandings:  row.LandLandings,
		LastUpdate:    row.LastUpdate,
		LaunchIDs:     []string(row.LaunchIDs),
	}
}

const upsertCapsuleQuery = `INSERT OR REPLACE INTO capsules
	(id, serial, status, type, reuse_count, water_landings, land_landings, last_update, launch_ids, cached_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// UpsertCapsules inserts or replaces capsules by id in a single transaction.
func (s *Store) UpsertCapsules(ctx context.Context, capsules []domain.Capsule) error {
	if len(capsules) == 0 {
		return nil
	}
	now := time.Now().UnixMilli()
	return s.withTx(ctx, topicCapsules, func(tx *sqlx.Tx) error {
		for _, c := range capsules {
			if c.ID == "" {
				return fmt.Errorf("upserting capsule %q: empty id", c.Serial)
			}
			_, err := tx.ExecContext(ctx, upsertCapsuleQuery,
				c.ID, c.Serial, c.Status, c.Type, c.ReuseCount, c.WaterLandings, c.LandLandings,
				c.LastUpdate, StringList(c.LaunchIDs), now)
			if err != nil {
				return fmt.Errorf("upserting capsule %s: %w", c.ID, err)
			}
		}
		return nil
	})
}

// ListCapsules returns every cached capsule ordered by serial.
func (s *Store) ListCapsules(ctx context.Context) ([]domain.Capsule, error) {
	var rows []*dbCapsule
	if err := s.db.SelectContext(ctx, &rows, `SELECT * FROM capsules ORDER BY serial ASC, id ASC`); err != nil {
		return nil, fmt.Errorf("getting capsules: %w", err)
	}
	capsules := make([]domain.Capsule, len(rows))
	for i, row := range rows {
		capsules[i] = toDomainCapsule(row)
	}
	return capsules, nil
}

// ObserveCapsules starts a live query over every cached capsule.
func (s *Store) ObserveCapsules(ctx context.Context) (*Subscription[[]domain.Capsule], error) {
	return observe(ctx, s, topicCapsules, s.ListCapsules)
}

// GetCapsule looks up a capsule by id; a miss is found=false with a nil error.
func (s *Store) GetCapsule(ctx context.Context, id string) (domain.Capsule, bool, error) {
	var row dbCapsule
	err := s.db.GetContext(ctx, &row, `SELECT * FROM capsules WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Capsule{}, false, nil
	}
	if err != nil {
		return domain.Capsule{}, false, fmt.Errorf("getting capsule %s: %w", id, err)
	}
	return toDomainCapsule(&row), true, nil
}
