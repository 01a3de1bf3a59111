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

// LaunchFilter selects which launches a live query returns, and in what order.
type LaunchFilter int

const (
	LaunchesAll        LaunchFilter = iota // every launch, newest first
	LaunchesUpcoming                       // upcoming only, soonest first
	LaunchesPast                           // flown only, newest first
	LaunchesSuccessful                     // successful only, newest first
)

func (f LaunchFilter) String() string {
	switch f {
	case LaunchesUpcoming:
		return "Upcoming"
	case LaunchesPast:
		return "Past"
	case LaunchesSuccessful:
		return "Successful"
	default:
		return "All"
	}
}

// LaunchQuery is a filter plus an optional row limit (zero means no limit).
type LaunchQuery struct {
	Filter LaunchFilter
	Limit  int
}

func (q LaunchQuery) sql() (string, []any) {
	query := `SELECT * FROM launches`
	switch q.Filter {
	case LaunchesUpcoming:
		query += ` WHERE upcoming = 1 ORDER BY date_utc ASC, id ASC`
	case LaunchesPast:
		query += ` WHERE upcoming = 0 ORDER BY date_utc DESC, id ASC`
	case LaunchesSuccessful:
		query += ` WHERE success = 1 ORDER BY date_utc DESC, id ASC`
	default:
		query += ` ORDER BY date_utc DESC, id ASC`
	}
	if q.Limit > 0 {
		return query + ` LIMIT ?`, []any{q.Limit}
	}
	return query, nil
}

// dbLaunch represents a launch as stored in the database.
type dbLaunch struct {
	ID           string       `db:"id"`
	Name         string       `db:"name"`
	FlightNumber int          `db:"flight_number"`
	DateUTC      int64        `db:"date_utc"` // unix millis
	Upcoming     bool         `db:"upcoming"`
	Success      sql.NullBool `db:"success"`
	Details      string       `db:"details"`
	RocketID     string       `db:"rocket_id"`
	PatchURL     string       `db:"patch_url"`
	Failures     FailureList  `db:"failures"`
	CapsuleIDs   StringList   `db:"capsule_ids"`
	CachedAt     int64        `db:"cached_at"`
}

func toDomainLaunch(row *dbLaunch) domain.Launch {
	l := domain.Launch{
		ID:           row.ID,
		Name:         row.Name,
		FlightNumber: row.FlightNumber,
		Upcoming:     row.Upcoming,
		Details:      row.Details,
		RocketID:     row.RocketID,
		PatchURL:     row.PatchURL,
		Failures:     []domain.Failure(row.Failures),
		CapsuleIDs:   []string(row.CapsuleIDs),
	}
	if row.DateUTC != 0 {
		l.DateUTC = time.UnixMilli(row.DateUTC).UTC()
	}
	if row.Success.Valid {
		v := row.Success.Bool
		l.Success = &v
	}
	return l
}

func fromDomainLaunch(l domain.Launch, cachedAt int64) dbLaunch {
	row := dbLaunch{
		ID:           l.ID,
		Name:         l.Name,
		FlightNumber: l.FlightNumber,
		Upcoming:     l.Upcoming,
		Details:      l.Details,
		RocketID:     l.RocketID,
		PatchURL:     l.PatchURL,
		Failures:     FailureList(l.Failures),
		CapsuleIDs:   StringList(l.CapsuleIDs),
		CachedAt:     cachedAt,
	}
	if !l.DateUTC.IsZero() {
		row.DateUTC = l.DateUTC.UnixMilli()
	}
	if l.Success != nil {
		row.Success = sql.NullBool{Bool: *l.Success, Valid: true}
	}
	return row
}

const upsertLaunchQuery = `INSERT INTO launches
	(id, name, flight_number, date_utc, upcoming, success, details, rocket_id, patch_url, failures, capsule_ids, cached_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		name = excluded.name,
		flight_number = excluded.flight_number,
		date_utc = excluded.date_utc,
		upcoming = excluded.upcoming,
		success = excluded.success,
		details = excluded.details,
		rocket_id = excluded.rocket_id,
		patch_url = excluded.patch_url,
		failures = excluded.failures,
		capsule_ids = excluded.capsule_ids,
		cached_at = excluded.cached_at`

// UpsertLaunches inserts or replaces launches by id in a single transaction.
// Rows not present in launches are left alone. An empty batch is a no-op.
func (s *Store) UpsertLaunches(ctx context.Context, launches []domain.Launch) error {
	if len(launches) == 0 {
		return nil
	}
	now := time.Now().UnixMilli()
	return s.withTx(ctx, topicLaunches, func(tx *sqlx.Tx) error {
		stmt, err := tx.PreparexContext(ctx, upsertLaunchQuery)
		if err != nil {
			return fmt.Errorf("preparing launch upsert: %w", err)
		}
		defer stmt.Close()

		for _, l := range launches {
			if l.ID == "" {
				return fmt.Errorf("upserting launch %q: empty id", l.Name)
			}
			row := fromDomainLaunch(l, now)
			_, err := stmt.ExecContext(ctx,
				row.ID, row.Name, row.FlightNumber, row.DateUTC, row.Upcoming, row.Success,
				row.Details, row.RocketID, row.PatchURL, row.Failures, row.CapsuleIDs, row.CachedAt)
			if err != nil {
				return fmt.Errorf("upserting launch %s: %w", l.ID, err)
			}
		}
		return nil
	})
}

// ListLaunches runs q once.
func (s *Store) ListLaunches(ctx context.Context, q LaunchQuery) ([]domain.Launch, error) {
	query, args := q.sql()
	var rows []*dbLaunch
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("getting launches: %w", err)
	}
	launches := make([]domain.Launch, len(rows))
	for i, row := range rows {
		launches[i] = toDomainLaunch(row)
	}
	return launches, nil
}

// ObserveLaunches starts a live query for q.
func (s *Store) ObserveLaunches(ctx context.Context, q LaunchQuery) (*Subscription[[]domain.Launch], error) {
	return observe(ctx, s, topicLaunches, func(ctx context.Context) ([]domain.Launch, error) {
		return s.ListLaunches(ctx, q)
	})
}

// GetLaunch looks up a launch by id. A missing id is reported as found=false
// with a nil error.
func (s *Store) GetLaunch(ctx context.Context, id string) (domain.Launch, bool, error) {
	var row dbLaunch
	err := s.db.GetContext(ctx, &row, `SELECT * FROM launches WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Launch{}, false, nil
	}
	if err != nil {
		return domain.Launch{}, false, fmt.Errorf("getting launch %s: %w", id, err)
	}
	return toDomainLaunch(&row), true, nil
}

// ClearLaunches deletes every cached launch.
func (s *Store) ClearLaunches(ctx context.Context) error {
	return s.withTx(ctx, topicLaunches, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM launches`); err != nil {
			return fmt.Errorf("clearing launches: %w", err)
		}
		return nil
	})
}
