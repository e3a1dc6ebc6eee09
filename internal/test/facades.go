package test

import (
	"context"

	"github.com/bobscoffee/loyalty/internal/domain/model"
)

// AccountFacadeStub simulates account facade interactions.
type AccountFacadeStub struct {
	RegisterFn       func(context.Context, string, string, string) (*model.User, error)
	AuthenticateFn   func(context.Context, string, string) (*model.User, string, error)
	ParseFn          func(string) (int64, error)
	UserByIDFn       func(context.Context, int64) (*model.User, error)
	UserByUsernameFn func(context.Context, string) (*model.User, error)
	QRCodeFn         func(context.Context, string) ([]byte, error)
}

// Register returns the created user for successful registration scenarios.
func (s AccountFacadeStub) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, username, email, password)
	}
	return &model.User{ID: 1, Username: username, Email: email}, nil
}

// Authenticate returns the user and token for successful login scenarios.
func (s AccountFacadeStub) Authenticate(ctx context.Context, username, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, username, password)
	}
	return &model.User{ID: 1, Username: username}, "token", nil
}

// ParseToken returns the stored identifier for an authenticated user.
func (s AccountFacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}

// UserByID resolves the current user for middleware and profile handlers.
func (s AccountFacadeStub) UserByID(ctx context.Context, id int64) (*model.User, error) {
	if s.UserByIDFn != nil {
		return s.UserByIDFn(ctx, id)
	}
	return &model.User{ID: id, Username: "stub"}, nil
}

// UserByUsername resolves users targeted by admin operations.
func (s AccountFacadeStub) UserByUsername(ctx context.Context, username string) (*model.User, error) {
	if s.UserByUsernameFn != nil {
		return s.UserByUsernameFn(ctx, username)
	}
	return &model.User{ID: 1, Username: username}, nil
}

// QRCode serves the rendered card image.
func (s AccountFacadeStub) QRCode(ctx context.Context, username string) ([]byte, error) {
	if s.QRCodeFn != nil {
		return s.QRCodeFn(ctx, username)
	}
	return []byte("png"), nil
}

// LoyaltyFacadeStub simulates scan and history operations.
type LoyaltyFacadeStub struct {
	RecordScanFn func(context.Context, string, int, *int64) (*model.ScanResult, error)
	HistoryFn    func(context.Context, int64) ([]model.LoyaltyTransaction, error)
}

// RecordScan returns a canned scan result.
func (s LoyaltyFacadeStub) RecordScan(ctx context.Context, username string, amount int, performedBy *int64) (*model.ScanResult, error) {
	if s.RecordScanFn != nil {
		return s.RecordScanFn(ctx, username, amount, performedBy)
	}
	return &model.ScanResult{Username: username, CoffeeCount: amount}, nil
}

// History returns the stubbed transaction log.
func (s LoyaltyFacadeStub) History(ctx context.Context, userID int64) ([]model.LoyaltyTransaction, error) {
	if s.HistoryFn != nil {
		return s.HistoryFn(ctx, userID)
	}
	return nil, nil
}

// AdminFacadeStub simulates account administration operations.
type AdminFacadeStub struct {
	CreateAccountFn func(context.Context, string, string, string, []string) (*model.User, error)
	DeleteAccountFn func(context.Context, string) error
	AssignRoleFn    func(context.Context, string, string, bool) (*model.User, error)
	ResetCountFn    func(context.Context, string) (*model.User, error)
	RemoveOneFn     func(context.Context, string) (*model.User, error)
	StatsFn         func(context.Context) (*model.CardStats, error)
}

// CreateAccount returns the provisioned user.
func (s AdminFacadeStub) CreateAccount(ctx context.Context, username, email, password string, roles []string) (*model.User, error) {
	if s.CreateAccountFn != nil {
		return s.CreateAccountFn(ctx, username, email, password, roles)
	}
	return &model.User{ID: 1, Username: username, Email: email, Roles: model.RoleSetFromStrings(roles)}, nil
}

// DeleteAccount removes the account.
func (s AdminFacadeStub) DeleteAccount(ctx context.Context, username string) error {
	if s.DeleteAccountFn != nil {
		return s.DeleteAccountFn(ctx, username)
	}
	return nil
}

// AssignRole grants or revokes the role.
func (s AdminFacadeStub) AssignRole(ctx context.Context, username, role string, grant bool) (*model.User, error) {
	if s.AssignRoleFn != nil {
		return s.AssignRoleFn(ctx, username, role, grant)
	}
	return &model.User{ID: 1, Username: username}, nil
}

// ResetCount zeroes the counter.
func (s AdminFacadeStub) ResetCount(ctx context.Context, username string) (*model.User, error) {
	if s.ResetCountFn != nil {
		return s.ResetCountFn(ctx, username)
	}
	return &model.User{ID: 1, Username: username}, nil
}

// RemoveOne decrements the counter.
func (s AdminFacadeStub) RemoveOne(ctx context.Context, username string) (*model.User, error) {
	if s.RemoveOneFn != nil {
		return s.RemoveOneFn(ctx, username)
	}
	return &model.User{ID: 1, Username: username}, nil
}

// Stats reports card usage totals.
func (s AdminFacadeStub) Stats(ctx context.Context) (*model.CardStats, error) {
	if s.StatsFn != nil {
		return s.StatsFn(ctx)
	}
	return &model.CardStats{}, nil
}

// CardFacadeStub aggregates facade dependencies for HTTP layer tests.
type CardFacadeStub struct {
	AccountFacadeStub
	LoyaltyFacadeStub
	AdminFacadeStub
}
