package handlers

import (
	"context"

	"github.com/bobscoffee/loyalty/internal/domain/model"
)

// AccountFacade describes account capabilities required by handlers.
type AccountFacade interface {
	Register(ctx context.Context, username, email, password string) (*model.User, error)
	Authenticate(ctx context.Context, username, password string) (*model.User, string, error)
	ParseToken(token string) (int64, error)
	UserByID(ctx context.Context, id int64) (*model.User, error)
	UserByUsername(ctx context.Context, username string) (*model.User, error)
	QRCode(ctx context.Context, username string) ([]byte, error)
}

// LoyaltyFacade provides scan and history operations exposed via HTTP.
type LoyaltyFacade interface {
	RecordScan(ctx context.Context, username string, amount int, performedBy *int64) (*model.ScanResult, error)
	History(ctx context.Context, userID int64) ([]model.LoyaltyTransaction, error)
}

// AdminFacade provides account administration and loyalty corrections.
type AdminFacade interface {
	CreateAccount(ctx context.Context, username, email, password string, roles []string) (*model.User, error)
	DeleteAccount(ctx context.Context, username string) error
	AssignRole(ctx context.Context, username, role string, grant bool) (*model.User, error)
	ResetCount(ctx context.Context, username string) (*model.User, error)
	RemoveOne(ctx context.Context, username string) (*model.User, error)
	Stats(ctx context.Context) (*model.CardStats, error)
}

// CardFacade aggregates the full set of operations used across handlers.
type CardFacade interface {
	AccountFacade
	LoyaltyFacade
	AdminFacade
}
