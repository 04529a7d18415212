package service

import (
	"context"

	"github.com/duofinder/duo-services/internal/adsvc/apperr"
	"github.com/duofinder/duo-services/internal/adsvc/models"
)

// EmptyResultPolicy decides whether a query that matches nothing is a
// client-visible failure or an empty success.
type EmptyResultPolicy string

const (
	// EmptyResultError surfaces zero rows as a 400, the behavior the
	// frontend was built against.
	EmptyResultError EmptyResultPolicy = "error"
	// EmptyResultOK returns an empty list instead.
	EmptyResultOK EmptyResultPolicy = "empty"
)

// GameStore is the slice of the store the game service needs.
type GameStore interface {
	ListWithAdCount(ctx context.Context) ([]models.GameWithCount, error)
}

type GameService struct {
	gameStore GameStore
	policy    EmptyResultPolicy
}

func NewGameService(gameStore GameStore, policy EmptyResultPolicy) *GameService {
	return &GameService{gameStore: gameStore, policy: policy}
}

// ListGames returns the catalog with live ad counts.
func (s *GameService) ListGames(ctx context.Context) ([]models.GameWithCount, error) {
	games, err := s.gameStore.ListWithAdCount(ctx)
	if err != nil {
		return nil, err
	}

	if len(games) == 0 && s.policy == EmptyResultError {
		return nil, apperr.EmptyResult("there are no games registered to list")
	}

	return games, nil
}
