package store

import (
	"context"
	"fmt"

	"github.com/duofinder/duo-services/internal/adsvc/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type GameStore struct {
	db *pgxpool.Pool
}

func NewGameStore(db *pgxpool.Pool) *GameStore {
	return &GameStore{db: db}
}

// ListWithAdCount returns every game together with its live ad count.
func (s *GameStore) ListWithAdCount(ctx context.Context) ([]models.GameWithCount, error) {
	query := `
		SELECT g.id, g.name, g.banner_url, g.created_at, COUNT(a.id)
		FROM games g
		LEFT JOIN ads a ON a.game_id = g.id
		GROUP BY g.id, g.name, g.banner_url, g.created_at
		ORDER BY g.name
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	defer rows.Close()

	games := []models.GameWithCount{}
	for rows.Next() {
		var g models.GameWithCount
		err := rows.Scan(
			&g.ID,
			&g.Name,
			&g.BannerURL,
			&g.CreatedAt,
			&g.Count.Ads,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan game row: %w", err)
		}
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read game rows: %w", err)
	}

	return games, nil
}
