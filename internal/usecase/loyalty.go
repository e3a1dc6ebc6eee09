package usecase

import (
	"context"

	"github.com/bobscoffee/loyalty/internal/domain/model"
	"github.com/bobscoffee/loyalty/internal/domain/repository"
)

// LoyaltyUseCase applies the scan rule to loyalty cards.
type LoyaltyUseCase struct {
	loyalty      repository.LoyaltyRepository
	transactions repository.TransactionRepository
}

// NewLoyaltyUseCase constructs LoyaltyUseCase.
func NewLoyaltyUseCase(loyalty repository.LoyaltyRepository, transactions repository.TransactionRepository) *LoyaltyUseCase {
	return &LoyaltyUseCase{loyalty: loyalty, transactions: transactions}
}

// RecordScan applies amount units to the user's counter and appends one
// audit record, awarding a free coffee at the threshold.
func (u *LoyaltyUseCase) RecordScan(ctx context.Context, username string, amount int, performedBy *int64) (*model.ScanResult, error) {
	if err := ValidateScanAmount(amount); err != nil {
		return nil, err
	}
	return u.loyalty.RecordScan(ctx, username, amount, performedBy)
}

// ResetCount zeroes the user's counter.
func (u *LoyaltyUseCase) ResetCount(ctx context.Context, username string) (*model.User, error) {
	return u.loyalty.ResetCount(ctx, username)
}

// RemoveOne decrements the user's counter, flooring at zero.
func (u *LoyaltyUseCase) RemoveOne(ctx context.Context, username string) (*model.User, error) {
	return u.loyalty.RemoveOne(ctx, username)
}

// History returns the user's scan records, newest first.
func (u *LoyaltyUseCase) History(ctx context.Context, userID int64) ([]model.LoyaltyTransaction, error) {
	return u.transactions.ListByUser(ctx, userID)
}

// Stats returns aggregate counters over all cards.
func (u *LoyaltyUseCase) Stats(ctx context.Context) (*model.CardStats, error) {
	return u.loyalty.Stats(ctx)
}
