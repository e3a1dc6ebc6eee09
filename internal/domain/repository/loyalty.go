package repository

import (
	"context"

	"github.com/bobscoffee/loyalty/internal/domain/model"
)

// LoyaltyRepository manages counter updates on loyalty cards. Counter
// mutations for one user must serialize: two concurrent scans may never
// lose an update.
type LoyaltyRepository interface {
	RecordScan(ctx context.Context, username string, amount int, performedBy *int64) (*model.ScanResult, error)
	ResetCount(ctx context.Context, username string) (*model.User, error)
	RemoveOne(ctx context.Context, username string) (*model.User, error)
	Stats(ctx context.Context) (*model.CardStats, error)
}
