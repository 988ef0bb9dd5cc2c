package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/naijamart/storefront/internal/domain/model"
	"github.com/naijamart/storefront/internal/server/http/dto"
)

// OrderHandler manages checkout and customer order endpoints.
type OrderHandler struct {
	facade StorefrontFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade StorefrontFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Place handles POST /api/user/orders.
func (h *OrderHandler) Place(c *gin.Context) {
	var req dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	items := make([]model.CartItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, model.CartItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	details := model.ShipmentDetails{
		Email:    req.Shipment.Email,
		AltEmail: req.Shipment.AltEmail,
		Phone:    req.Shipment.Phone,
		AltPhone: req.Shipment.AltPhone,
		State:    req.Shipment.State,
		Address:  req.Shipment.Address,
	}

	order, err := h.facade.PlaceOrder(c.Request.Context(), CurrentUserID(c), items, model.PaymentMethod(req.PaymentMethod), details)
	if err != nil {
		c.Status(statusFromError(err))
		return
	}

	c.JSON(http.StatusCreated, dto.ToOrderResponse(*order))
}

// List handles GET /api/user/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	if len(orders) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	resp := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, dto.ToOrderResponse(o))
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/user/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.facade.Order(c.Request.Context(), CurrentActor(c), c.Param("id"))
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderResponse(*order))
}

// SubmitProof handles POST /api/user/orders/:id/proof. The payload is a
// multipart form with a sender_name field and an optional image file.
func (h *OrderHandler) SubmitProof(c *gin.Context) {
	proof := model.PaymentProof{SenderName: c.PostForm("sender_name")}

	// The screenshot is uploaded to the external host first; a host outage
	// must not block the settlement flow, so the proof is accepted without
	// an image on upload failure.
	if file, err := c.FormFile("image"); err == nil && file != nil {
		if content, openErr := file.Open(); openErr == nil {
			url, uploadErr := h.facade.UploadProofImage(c.Request.Context(), file.Filename, content)
			content.Close()
			if uploadErr == nil {
				proof.ImageURL = url
			}
		}
	}

	order, err := h.facade.SubmitProof(c.Request.Context(), CurrentActor(c), c.Param("id"), proof)
	if err != nil {
		c.Status(statusFromError(err))
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(*order))
}
