package repository

import (
	"context"

	"github.com/bobscoffee/loyalty/internal/domain/model"
)

// TransactionRepository provides access to the append-only scan audit log.
type TransactionRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]model.LoyaltyTransaction, error)
}
