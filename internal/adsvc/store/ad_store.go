package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/duofinder/duo-services/internal/adsvc/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNoRows marks a projection that matched nothing; the service layer
// maps it to a domain not-found failure.
var ErrNoRows = errors.New("no rows found")

type AdStore struct {
	db *pgxpool.Pool
}

func NewAdStore(db *pgxpool.Pool) *AdStore {
	return &AdStore{db: db}
}

// Create inserts a new ad and returns the persisted row. The games FK
// makes an unknown game id an insert-time failure.
func (s *AdStore) Create(ctx context.Context, ad models.Ad) (*models.Ad, error) {
	query := `
		INSERT INTO ads (id, game_id, name, years_playing, discord, week_days, hour_start, hour_end, use_voice_channel)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, game_id, name, years_playing, discord, week_days, hour_start, hour_end, use_voice_channel, created_at
	`

	created := &models.Ad{}
	err := s.db.QueryRow(ctx, query,
		ad.ID,
		ad.GameID,
		ad.Name,
		ad.YearsPlaying,
		ad.Discord,
		ad.WeekDays,
		ad.HourStart,
		ad.HourEnd,
		ad.UseVoiceChannel,
	).Scan(
		&created.ID,
		&created.GameID,
		&created.Name,
		&created.YearsPlaying,
		&created.Discord,
		&created.WeekDays,
		&created.HourStart,
		&created.HourEnd,
		&created.UseVoiceChannel,
		&created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("could not create ad: %w", err)
	}

	return created, nil
}

// ListByGame returns the stored ads for a game, newest first. The rows
// keep the raw stored encoding; decoding happens in the service layer.
func (s *AdStore) ListByGame(ctx context.Context, gameID string) ([]models.Ad, error) {
	query := `
		SELECT id, name, years_playing, discord, week_days, hour_start, hour_end, use_voice_channel, created_at
		FROM ads
		WHERE game_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.Query(ctx, query, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ads for game %s: %w", gameID, err)
	}
	defer rows.Close()

	ads := []models.Ad{}
	for rows.Next() {
		var a models.Ad
		err := rows.Scan(
			&a.ID,
			&a.Name,
			&a.YearsPlaying,
			&a.Discord,
			&a.WeekDays,
			&a.HourStart,
			&a.HourEnd,
			&a.UseVoiceChannel,
			&a.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ad row: %w", err)
		}
		ads = append(ads, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ad rows: %w", err)
	}

	return ads, nil
}

// GetDiscord projects only the contact handle of an ad.
func (s *AdStore) GetDiscord(ctx context.Context, adID string) (string, error) {
	var discord string
	err := s.db.QueryRow(ctx, `
		SELECT discord
		FROM ads
		WHERE id = $1
	`, adID).Scan(&discord)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNoRows
		}
		return "", fmt.Errorf("failed to get ad contact: %w", err)
	}

	return discord, nil
}
