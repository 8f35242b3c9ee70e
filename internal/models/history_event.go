package models

import "time"

// HistoryEvent is one entry of the append-only client history log.
type HistoryEvent struct {
	ID       ID     `json:"id"`
	ClientID ID     `json:"clientId"`
	Kind     string `json:"kind"`

	Details map[string]any `json:"details,omitempty"`

	Timestamp time.Time `json:"timestamp"`
}
