package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/naijamart/storefront/internal/server/http/dto"
)

// LedgerHandler manages cashback balance endpoints.
type LedgerHandler struct {
	facade LedgerFacade
}

// NewLedgerHandler constructs LedgerHandler.
func NewLedgerHandler(facade LedgerFacade) *LedgerHandler {
	return &LedgerHandler{facade: facade}
}

// Summary handles GET /api/user/balance.
func (h *LedgerHandler) Summary(c *gin.Context) {
	summary, err := h.facade.Balance(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{
		Current:       summary.Current,
		TotalOrders:   summary.TotalOrders,
		TotalSpending: summary.TotalSpending,
	})
}

// History handles GET /api/user/balance/history.
func (h *LedgerHandler) History(c *gin.Context) {
	entries, err := h.facade.LedgerHistory(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	if len(entries) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	resp := make([]dto.LedgerEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, dto.ToLedgerEntryResponse(e))
	}
	c.JSON(http.StatusOK, resp)
}
