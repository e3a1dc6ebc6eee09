package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/bobscoffee/loyalty/internal/domain/errors"
	"github.com/bobscoffee/loyalty/internal/server/http/dto"
)

// LoyaltyHandler manages scan and card endpoints.
type LoyaltyHandler struct {
	accounts AccountFacade
	loyalty  LoyaltyFacade
}

// NewLoyaltyHandler constructs LoyaltyHandler.
func NewLoyaltyHandler(accounts AccountFacade, loyalty LoyaltyFacade) *LoyaltyHandler {
	return &LoyaltyHandler{accounts: accounts, loyalty: loyalty}
}

// Scan handles POST /api/auth/scan/:username.
func (h *LoyaltyHandler) Scan(c *gin.Context) {
	username := c.Param("username")
	performedBy := CurrentUserID(c)

	result, err := h.loyalty.RecordScan(c.Request.Context(), username, 1, &performedBy)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.ScanResponse{
		Username:     result.Username,
		CoffeeCount:  result.CoffeeCount,
		IsFreeCoffee: result.FreeCoffee,
	})
}

// Me handles GET /api/user/me.
func (h *LoyaltyHandler) Me(c *gin.Context) {
	user, err := h.accounts.UserByID(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, toAuthResponse(user, true))
}

// History handles GET /api/user/transactions.
func (h *LoyaltyHandler) History(c *gin.Context) {
	transactions, err := h.loyalty.History(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if len(transactions) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	resp := make([]dto.TransactionResponse, 0, len(transactions))
	for _, tr := range transactions {
		resp = append(resp, dto.TransactionResponse{
			Amount:      tr.Amount,
			FreeCoffee:  tr.FreeCoffee,
			PerformedBy: tr.PerformedBy,
			CreatedAt:   tr.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, resp)
}
