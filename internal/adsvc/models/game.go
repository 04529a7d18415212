package models

import "time"

type Game struct {
	ID        string    `json:"id"`        // Primary key (uuid)
	Name      string    `json:"name"`      // Display name
	BannerURL string    `json:"bannerUrl"` // Banner image reference
	CreatedAt time.Time `json:"-"`         // Timestamp, not exposed
}

// AdCount is the live derived aggregate of ads per game, serialized the
// way the frontend expects it.
type AdCount struct {
	Ads int `json:"ads"`
}

type GameWithCount struct {
	Game
	Count AdCount `json:"_count"`
}
