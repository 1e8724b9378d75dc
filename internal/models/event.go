package models

import (
	"time"
)

// Price is an amount in a single currency, as reported by the events API.
type Price struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type Event struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartAt     time.Time `json:"start_at"`
	EndAt       time.Time `json:"end_at"`
	Price       Price     `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
}

// EventDraft is the payload for creating an event upstream. The events
// API assigns the identifier and created timestamp.
type EventDraft struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartAt     time.Time `json:"start_at"`
	EndAt       time.Time `json:"end_at"`
	Price       Price     `json:"price"`
}
