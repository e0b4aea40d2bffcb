package models

import "time"

// HistoryEntry is the short record kept for every planned trip.
type HistoryEntry struct {
	ID        string      `json:"id"`
	Place     string      `json:"place"`
	Days      int         `json:"days"`
	Budget    float64     `json:"budget"`
	Summary   TripSummary `json:"summary"`
	CreatedAt time.Time   `json:"created_at"`
}
