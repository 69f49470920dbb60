package model

import "time"

// BuyerEvent is published after a buyer mutation has been stored.
type BuyerEvent struct {
	Type       string    `json:"type"`
	BuyerID    string    `json:"buyer_id"`
	ActorID    string    `json:"actor_id"`
	Changes    ChangeSet `json:"changes,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
