package app

import (
	"context"

	"github.com/bobscoffee/loyalty/internal/domain/model"
	"github.com/bobscoffee/loyalty/internal/usecase"
)

// CardFacade aggregates the account and loyalty use cases behind one
// application surface consumed by HTTP handlers.
type CardFacade struct {
	accounts *usecase.AccountUseCase
	loyalty  *usecase.LoyaltyUseCase
}

func NewCardFacade(accounts *usecase.AccountUseCase, loyalty *usecase.LoyaltyUseCase) *CardFacade {
	return &CardFacade{accounts: accounts, loyalty: loyalty}
}

func (f *CardFacade) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	return f.accounts.Register(ctx, username, email, password)
}

func (f *CardFacade) CreateAccount(ctx context.Context, username, email, password string, roles []string) (*model.User, error) {
	return f.accounts.CreateAccount(ctx, username, email, password, roles)
}

func (f *CardFacade) DeleteAccount(ctx context.Context, username string) error {
	return f.accounts.DeleteAccount(ctx, username)
}

func (f *CardFacade) Authenticate(ctx context.Context, username, password string) (*model.User, string, error) {
	return f.accounts.Authenticate(ctx, username, password)
}

func (f *CardFacade) ParseToken(token string) (int64, error) {
	return f.accounts.ParseToken(token)
}

func (f *CardFacade) UserByID(ctx context.Context, id int64) (*model.User, error) {
	return f.accounts.UserByID(ctx, id)
}

func (f *CardFacade) UserByUsername(ctx context.Context, username string) (*model.User, error) {
	return f.accounts.UserByUsername(ctx, username)
}

func (f *CardFacade) AssignRole(ctx context.Context, username, role string, grant bool) (*model.User, error) {
	return f.accounts.AssignRole(ctx, username, role, grant)
}

func (f *CardFacade) QRCode(ctx context.Context, username string) ([]byte, error) {
	return f.accounts.QRCode(ctx, username)
}

func (f *CardFacade) RecordScan(ctx context.Context, username string, amount int, performedBy *int64) (*model.ScanResult, error) {
	return f.loyalty.RecordScan(ctx, username, amount, performedBy)
}

func (f *CardFacade) ResetCount(ctx context.Context, username string) (*model.User, error) {
	return f.loyalty.ResetCount(ctx, username)
}

func (f *CardFacade) RemoveOne(ctx context.Context, username string) (*model.User, error) {
	return f.loyalty.RemoveOne(ctx, username)
}

func (f *CardFacade) History(ctx context.Context, userID int64) ([]model.LoyaltyTransaction, error) {
	return f.loyalty.History(ctx, userID)
}

func (f *CardFacade) Stats(ctx context.Context) (*model.CardStats, error) {
	return f.loyalty.Stats(ctx)
}
