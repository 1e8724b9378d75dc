package models

import (
	"time"
)

type Booking struct {
	ID           string    `json:"id"`
	EventID      string    `json:"event_id"`
	CustomerName string    `json:"customer_name"`
	Seats        int       `json:"seats"`
	CreatedAt    time.Time `json:"created_at"`
}
