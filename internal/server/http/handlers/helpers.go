package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/bobscoffee/loyalty/internal/domain/model"
	"github.com/bobscoffee/loyalty/internal/server/http/dto"
	"github.com/bobscoffee/loyalty/internal/server/http/middleware"
)

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

func qrCodeURL(username string) string {
	return "/api/auth/qr/" + username
}

func toAuthResponse(user *model.User, withRoles bool) dto.AuthResponse {
	resp := dto.AuthResponse{
		Username:    user.Username,
		Email:       user.Email,
		CoffeeCount: user.CoffeeCount,
		QRCodeURL:   qrCodeURL(user.Username),
	}
	if withRoles {
		resp.Roles = user.Roles.Strings()
	}
	return resp
}

func toUserResponse(user *model.User) dto.UserResponse {
	return dto.UserResponse{
		Username:    user.Username,
		Email:       user.Email,
		Roles:       user.Roles.Strings(),
		CoffeeCount: user.CoffeeCount,
	}
}
