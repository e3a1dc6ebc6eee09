package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/bobscoffee/loyalty/internal/app"
	"github.com/bobscoffee/loyalty/internal/config"
	"github.com/bobscoffee/loyalty/internal/domain/repository"
	"github.com/bobscoffee/loyalty/internal/storage/postgres"
	"github.com/bobscoffee/loyalty/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:      ":0",
		DatabaseURI:     "postgres://stub",
		JWTSecret:       "secret",
		TokenTTL:        time.Minute,
		QRCodeDir:       t.TempDir(),
		ShutdownTimeout: time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	userRepo := test.NewUserRepositoryStub()
	loyaltyRepo := &test.LoyaltyRepositoryStub{Users: userRepo}
	txRepo := &test.TransactionRepositoryStub{}

	var facade *app.CardFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.UserRepository(userRepo)),
			fx.Replace(repository.LoyaltyRepository(loyaltyRepo)),
			fx.Replace(repository.TransactionRepository(txRepo)),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected card facade instance")
	}
}
