package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/naijamart/storefront/internal/domain/model"
	"github.com/naijamart/storefront/internal/server/http/dto"
)

// AdminHandler manages staff-only workflow and back-office endpoints.
type AdminHandler struct {
	facade StorefrontFacade
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(facade StorefrontFacade) *AdminHandler {
	return &AdminHandler{facade: facade}
}

// Orders handles GET /api/admin/orders.
func (h *AdminHandler) Orders(c *gin.Context) {
	orders, err := h.facade.AllOrders(c.Request.Context())
	if err != nil {
		c.Status(statusFromError(err))
		return
	}

	resp := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, dto.ToOrderResponse(o))
	}
	c.JSON(http.StatusOK, resp)
}

// Users handles GET /api/admin/users.
func (h *AdminHandler) Users(c *gin.Context) {
	users, err := h.facade.Users(c.Request.Context())
	if err != nil {
		c.Status(statusFromError(err))
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(&u))
	}
	c.JSON(http.StatusOK, resp)
}

// Approve handles POST /api/admin/orders/:id/approve.
func (h *AdminHandler) Approve(c *gin.Context) {
	h.transition(c, h.facade.ApprovePayment)
}

// Reject handles POST /api/admin/orders/:id/reject.
func (h *AdminHandler) Reject(c *gin.Context) {
	var req dto.RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.RejectOrder(c.Request.Context(), CurrentActor(c), c.Param("id"), req.Reason)
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderResponse(*order))
}

// Ship handles POST /api/admin/orders/:id/ship.
func (h *AdminHandler) Ship(c *gin.Context) {
	h.transition(c, h.facade.ShipOrder)
}

// Delay handles POST /api/admin/orders/:id/delay.
func (h *AdminHandler) Delay(c *gin.Context) {
	h.transition(c, h.facade.DelayShipment)
}

// Deliver handles POST /api/admin/orders/:id/deliver.
func (h *AdminHandler) Deliver(c *gin.Context) {
	h.transition(c, h.facade.DeliverOrder)
}

func (h *AdminHandler) transition(c *gin.Context, fn func(context.Context, model.Actor, string) (*model.Order, error)) {
	order, err := fn(c.Request.Context(), CurrentActor(c), c.Param("id"))
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderResponse(*order))
}

// ReconcileBalance handles PUT /api/admin/users/:id/balance.
func (h *AdminHandler) ReconcileBalance(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.ReconcileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	entry, err := h.facade.ReconcileBalance(c.Request.Context(), CurrentActor(c), userID, req.Balance, req.Note)
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	if entry == nil {
		// Balance already matched; nothing was written.
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, dto.ToLedgerEntryResponse(*entry))
}

// CreateProduct handles POST /api/admin/products.
func (h *AdminHandler) CreateProduct(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	product, err := h.facade.CreateProduct(c.Request.Context(), CurrentActor(c), req.ToProduct(""))
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.JSON(http.StatusCreated, dto.ToProductResponse(*product))
}

// UpdateProduct handles PUT /api/admin/products/:id.
func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.UpdateProduct(c.Request.Context(), CurrentActor(c), req.ToProduct(c.Param("id"))); err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.Status(http.StatusOK)
}

// DeleteProduct handles DELETE /api/admin/products/:id.
func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	if err := h.facade.DeleteProduct(c.Request.Context(), CurrentActor(c), c.Param("id")); err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
