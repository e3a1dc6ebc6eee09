package di

import (
	"go.uber.org/fx"

	"github.com/bobscoffee/loyalty/internal/app"
	"github.com/bobscoffee/loyalty/internal/config"
	"github.com/bobscoffee/loyalty/internal/logger"
	"github.com/bobscoffee/loyalty/internal/pkg/auth"
	"github.com/bobscoffee/loyalty/internal/pkg/qr"
	"github.com/bobscoffee/loyalty/internal/server/http/router"
	"github.com/bobscoffee/loyalty/internal/storage/postgres"
	"github.com/bobscoffee/loyalty/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		qr.Module,
		postgres.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
