package model

import "time"

// LoyaltyTransaction is an append-only audit record of a single scan event.
type LoyaltyTransaction struct {
	ID          int64
	UserID      int64
	Amount      int
	FreeCoffee  bool
	PerformedBy *int64
	CreatedAt   time.Time
}

// CardStats aggregates counters over all loyalty cards.
type CardStats struct {
	UsedCards int64
}
