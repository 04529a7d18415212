package models

import "time"

// Ad is the stored form of an availability listing. WeekDays is the
// comma-joined weekday string and HourStart/HourEnd are minute-of-day
// integers; both are expanded to structured form only at the API boundary.
type Ad struct {
	ID              string    `json:"id"`              // Primary key (uuid)
	GameID          string    `json:"gameId"`          // Foreign key to Games
	Name            string    `json:"name"`            // Submitter display name
	YearsPlaying    int       `json:"yearsPlaying"`    // Years of experience
	Discord         string    `json:"discord"`         // Contact handle
	WeekDays        string    `json:"weekDays"`        // Joined weekday ints, e.g. "1,5,6"
	HourStart       int       `json:"hourStart"`       // Minute of day [0,1439]
	HourEnd         int       `json:"hourEnd"`         // Minute of day [0,1439]
	UseVoiceChannel bool      `json:"useVoiceChannel"` // Voice channel preference
	CreatedAt       time.Time `json:"createdAt"`       // Timestamp, listing sort key
}

// AdSummary is the listing projection with weekdays and hours decoded
// back to their request-time shape.
type AdSummary struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	WeekDays        []int  `json:"weekDays"`
	UseVoiceChannel bool   `json:"useVoiceChannel"`
	YearsPlaying    int    `json:"yearsPlaying"`
	HourStart       string `json:"hourStart"`
	HourEnd         string `json:"hourEnd"`
}
