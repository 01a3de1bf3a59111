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

// dbRocket represents a rocket as stored in the database.
type dbRocket struct {
	ID             string     `db:"id"`
	Name           string     `db:"name"`
	Type           string     `db:"type"`
	Active         bool       `db:"active"`
	Stages         int        `db:"stages"`
	Boosters       int        `db:"boosters"`
	CostPerLaunch  int64      `db:"cost_per_launch"`
	SuccessRatePct int        `db:"success_rate_pct"`
	FirstFlight    string     `db:"first_flight"`
	Country        string     `db:"country"`
	Company        string     `db:"company"`
	Description    string     `db:"description"`
	Wikipedia      string     `db:"wikipedia"`
	Images         StringList `db:"images"`
	CachedAt       int64      `db:"cached_at"`
}

func toDomainRocket(row *dbRocket) domain.Rocket {
	return domain.Rocket{
		ID:             row.ID,
		Name:           row.Name,
		Type:           row.Type,
		Active:         row.Active,
		Stages:         row.Stages,
		Boosters:       row.Boosters,
		CostPerLaunch:  row.CostPerLaunch,
		SuccessRatePct: row.SuccessRatePct,
		FirstFlight:    row.FirstFlight,
		Country:        row.Country,
		Company:        row.Company,
		Description:    row.Description,
		Wikipedia:      row.Wikipedia,
		Images:         []string(row.Images),
	}
}

const upsertRocketQuery = `INSERT OR REPLACE INTO rockets
	(id, name, type, active, stages, boosters, cost_per_launch, success_rate_pct,
	 first_flight, country, company, description, wikipedia, images, cached_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// UpsertRockets inserts or replaces rockets by id in a single transaction.
func (s *Store) UpsertRockets(ctx context.Context, rockets []domain.Rocket) error {
	if len(rockets) == 0 {
		return nil
	}
	now := time.Now().UnixMilli()
	return s.withTx(ctx, topicRockets, func(tx *sqlx.Tx) error {
		for _, r := range rockets {
			if r.ID == "" {
				return fmt.Errorf("upserting rocket %q: empty id", r.Name)
			}
			_, err := tx.ExecContext(ctx, upsertRocketQuery,
				r.ID, r.Name, r.Type, r.Active, r.Stages, r.Boosters, r.CostPerLaunch, r.SuccessRatePct,
				r.FirstFlight, r.Country, r.Company, r.Description, r.Wikipedia, StringList(r.Images), now)
			if err != nil {
				return fmt.Errorf("upserting rocket %s: %w", r.ID, err)
			}
		}
		return nil
	})
}

// ListRockets returns every cached rocket ordered by name.
func (s *Store) ListRockets(ctx context.Context) ([]domain.Rocket, error) {
	var rows []*dbRocket
	if err := s.db.SelectContext(ctx, &rows, `SELECT * FROM rockets ORDER BY name ASC, id ASC`); err != nil {
		return nil, fmt.Errorf("getting rockets: %w", err)
	}
	rockets := make([]domain.Rocket, len(rows))
	for i, row := range rows {
		rockets[i] = toDomainRocket(row)
	}
	return rockets, nil
}

// ObserveRockets starts a live query over every cached rocket.
func (s *Store) ObserveRockets(ctx context.Context) (*Subscription[[]domain.Rocket], error) {
	return observe(ctx, s, topicRockets, s.ListRockets)
}

// GetRocket looks up a rocket by id; a miss is found=false with a nil error.
func (s *Store) GetRocket(ctx context.Context, id string) (domain.Rocket, bool, error) {
	var row dbRocket
	err := s.db.GetContext(ctx, &row, `SELECT * FROM rockets WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Rocket{}, false, nil
	}
	if err != nil {
		return domain.Rocket{}, false, fmt.Errorf("getting rocket %s: %w", id, err)
	}
	return toDomainRocket(&row), true, nil
}
