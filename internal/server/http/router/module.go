package router

import (
	"go.uber.org/fx"

	"github.com/bobscoffee/loyalty/internal/app"
	"github.com/bobscoffee/loyalty/internal/server/http/handlers"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Options(
	fx.Provide(func(f *app.CardFacade) handlers.CardFacade { return f }),
	fx.Provide(Setup),
)
