package usecase

import (
	"go.uber.org/fx"

	"github.com/bobscoffee/loyalty/internal/config"
	"github.com/bobscoffee/loyalty/internal/domain/repository"
	pkgAuth "github.com/bobscoffee/loyalty/internal/pkg/auth"
	"github.com/bobscoffee/loyalty/internal/pkg/qr"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	newAccountUseCase,
	NewLoyaltyUseCase,
)

type accountParams struct {
	fx.In

	Users  repository.UserRepository
	Hasher pkgAuth.PasswordHasher
	Tokens pkgAuth.Strategy
	Issuer qr.Issuer
	Config *config.Config
}

func newAccountUseCase(p accountParams) *AccountUseCase {
	return NewAccountUseCase(p.Users, p.Hasher, p.Tokens, p.Issuer, p.Config.QRCodeDir)
}
