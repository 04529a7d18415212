package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/duofinder/duo-services/internal/adsvc/apperr"
	"github.com/duofinder/duo-services/internal/adsvc/clock"
	"github.com/duofinder/duo-services/internal/adsvc/models"
	"github.com/duofinder/duo-services/internal/adsvc/store"
	"github.com/duofinder/duo-services/internal/adsvc/validate"
)

// AdStore is the slice of the store the ad service needs.
type AdStore interface {
	Create(ctx context.Context, ad models.Ad) (*models.Ad, error)
	ListByGame(ctx context.Context, gameID string) ([]models.Ad, error)
	GetDiscord(ctx context.Context, adID string) (string, error)
}

type AdService struct {
	adStore AdStore
	policy  EmptyResultPolicy
}

func NewAdService(adStore AdStore, policy EmptyResultPolicy) *AdService {
	return &AdService{adStore: adStore, policy: policy}
}

// CreateAd encodes the validated request into stored form and inserts it.
// The returned ad keeps the raw stored encoding.
func (s *AdService) CreateAd(ctx context.Context, gameID string, req *validate.CreateAdRequest) (*models.Ad, error) {
	hourStart, err := clock.Parse(*req.HourStart)
	if err != nil {
		return nil, apperr.Validation("hourStart must be a valid HH:MM time. Ex: 00:00.", map[string]string{
			"hourStart": "hourStart must be a valid HH:MM time. Ex: 00:00.",
		})
	}
	hourEnd, err := clock.Parse(*req.HourEnd)
	if err != nil {
		return nil, apperr.Validation("hourEnd must be a valid HH:MM time. Ex: 01:00.", map[string]string{
			"hourEnd": "hourEnd must be a valid HH:MM time. Ex: 01:00.",
		})
	}

	ad := models.Ad{
		ID:              uuid.NewString(),
		GameID:          gameID,
		Name:            *req.Name,
		YearsPlaying:    *req.YearsPlaying,
		Discord:         *req.Discord,
		WeekDays:        clock.JoinWeekDays(*req.WeekDays),
		HourStart:       hourStart.Minutes(),
		HourEnd:         hourEnd.Minutes(),
		UseVoiceChannel: *req.UseVoiceChannel,
	}

	created, err := s.adStore.Create(ctx, ad)
	if err != nil {
		// 23503 is a foreign key violation: the game does not exist.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, apperr.CreationFailed("there was an unexpected error and your ad could not be created")
		}
		return nil, err
	}
	if created == nil {
		return nil, apperr.CreationFailed("there was an unexpected error and your ad could not be created")
	}

	return created, nil
}

// ListAds returns the ads for a game decoded back to summary form, the
// exact inverse of the creation-time encoding, newest first.
func (s *AdService) ListAds(ctx context.Context, gameID string) ([]models.AdSummary, error) {
	ads, err := s.adStore.ListByGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if len(ads) == 0 && s.policy == EmptyResultError {
		return nil, apperr.EmptyResult("no ads were found for the given game")
	}

	summaries := make([]models.AdSummary, 0, len(ads))
	for _, a := range ads {
		weekDays, err := clock.SplitWeekDays(a.WeekDays)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, models.AdSummary{
			ID:              a.ID,
			Name:            a.Name,
			WeekDays:        weekDays,
			UseVoiceChannel: a.UseVoiceChannel,
			YearsPlaying:    a.YearsPlaying,
			HourStart:       clock.Clock(a.HourStart).String(),
			HourEnd:         clock.Clock(a.HourEnd).String(),
		})
	}

	return summaries, nil
}

// GetContact returns the discord handle of an ad.
func (s *AdService) GetContact(ctx context.Context, adID string) (string, error) {
	discord, err := s.adStore.GetDiscord(ctx, adID)
	if err != nil {
		if errors.Is(err, store.ErrNoRows) {
			return "", apperr.NotFound("the discord for the given ad was not found")
		}
		return "", err
	}

	return discord, nil
}
