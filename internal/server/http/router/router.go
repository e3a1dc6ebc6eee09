package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/bobscoffee/loyalty/internal/domain/model"
	"github.com/bobscoffee/loyalty/internal/server/http/handlers"
	"github.com/bobscoffee/loyalty/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.CardFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	loyaltyHandler := handlers.NewLoyaltyHandler(facade, facade)
	adminHandler := handlers.NewAdminHandler(facade, facade)

	authRequired := middleware.AuthRequired(facade)
	staffOnly := middleware.RequireRole(facade, model.RoleBarista, model.RoleAdmin)
	adminOnly := middleware.RequireRole(facade, model.RoleAdmin)

	api := engine.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/qr/:username", authHandler.QRCode)
	auth.POST("/scan/:username", authRequired, staffOnly, loyaltyHandler.Scan)

	user := api.Group("/user")
	user.Use(authRequired)
	user.GET("/me", loyaltyHandler.Me)
	user.GET("/transactions", loyaltyHandler.History)

	admin := api.Group("/admin")
	admin.Use(authRequired, adminOnly)
	admin.POST("/accounts", adminHandler.CreateAccount)
	admin.DELETE("/accounts/:username", adminHandler.DeleteAccount)
	admin.POST("/roles", adminHandler.AssignRole)
	admin.POST("/scan/:username", adminHandler.Scan)
	admin.POST("/reset/:username", adminHandler.Reset)
	admin.POST("/decrement/:username", adminHandler.Decrement)
	admin.GET("/stats", adminHandler.Stats)

	return engine
}
