package dto

import "time"

// ScanResponse describes the outcome of a loyalty scan.
type ScanResponse struct {
	Username     string `json:"username"`
	CoffeeCount  int    `json:"coffeeCount"`
	IsFreeCoffee bool   `json:"isFreeCoffee"`
}

// TransactionResponse describes a scan history entry.
type TransactionResponse struct {
	Amount      int       `json:"amount"`
	FreeCoffee  bool      `json:"freeCoffee"`
	PerformedBy *int64    `json:"performedBy,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
