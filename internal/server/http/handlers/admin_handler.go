package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/bobscoffee/loyalty/internal/domain/errors"
	"github.com/bobscoffee/loyalty/internal/domain/model"
	"github.com/bobscoffee/loyalty/internal/server/http/dto"
)

type correctionFunc func(ctx context.Context, username string) (*model.User, error)

// AdminHandler manages account administration endpoints.
type AdminHandler struct {
	admin   AdminFacade
	loyalty LoyaltyFacade
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(admin AdminFacade, loyalty LoyaltyFacade) *AdminHandler {
	return &AdminHandler{admin: admin, loyalty: loyalty}
}

// CreateAccount handles POST /api/admin/accounts.
func (h *AdminHandler) CreateAccount(c *gin.Context) {
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	user, err := h.admin.CreateAccount(c.Request.Context(), req.Username, req.Email, req.Password, req.Roles)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrValidation), errors.Is(err, domainErrors.ErrInvalidRole):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, toUserResponse(user))
}

// DeleteAccount handles DELETE /api/admin/accounts/:username.
func (h *AdminHandler) DeleteAccount(c *gin.Context) {
	err := h.admin.DeleteAccount(c.Request.Context(), c.Param("username"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusNoContent)
}

// AssignRole handles POST /api/admin/roles.
func (h *AdminHandler) AssignRole(c *gin.Context) {
	var req dto.RoleAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	user, err := h.admin.AssignRole(c.Request.Context(), req.Username, req.Role, req.Grant)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidRole):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

// Scan handles POST /api/admin/scan/:username with an explicit amount.
func (h *AdminHandler) Scan(c *gin.Context) {
	var req dto.AdminScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	performedBy := CurrentUserID(c)
	result, err := h.loyalty.RecordScan(c.Request.Context(), c.Param("username"), req.Amount, &performedBy)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidAmount):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, dto.ScanResponse{
		Username:     result.Username,
		CoffeeCount:  result.CoffeeCount,
		IsFreeCoffee: result.FreeCoffee,
	})
}

// Reset handles POST /api/admin/reset/:username.
func (h *AdminHandler) Reset(c *gin.Context) {
	h.correction(c, h.admin.ResetCount)
}

// Decrement handles POST /api/admin/decrement/:username.
func (h *AdminHandler) Decrement(c *gin.Context) {
	h.correction(c, h.admin.RemoveOne)
}

func (h *AdminHandler) correction(c *gin.Context, apply correctionFunc) {
	user, err := apply(c.Request.Context(), c.Param("username"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

// Stats handles GET /api/admin/stats.
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.admin.Stats(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.StatsResponse{UsedCards: stats.UsedCards})
}
