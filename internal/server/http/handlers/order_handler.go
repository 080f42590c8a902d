package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/canteen/internal/domain/model"
	"github.com/polkiloo/canteen/internal/server/http/dto"
)

// OrderHandler manages checkout and order workflow endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /orders/create.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	lines := make([]model.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, model.OrderLine{ItemID: item.ItemID, Quantity: item.Quantity})
	}

	receipt, err := h.facade.PlaceOrder(c.Request.Context(), model.OrderRequest{
		Lines:         lines,
		TotalAmount:   req.TotalAmount,
		PaymentMethod: model.PaymentMethod(req.PaymentMethod),
	})
	if err != nil {
		writeError(c, err, http.StatusConflict)
		return
	}

	c.JSON(http.StatusOK, dto.CreateOrderResponse{
		Success:     true,
		OrderToken:  receipt.Token,
		PaymentID:   receipt.PaymentID,
		TotalAmount: receipt.TotalAmount,
		Message:     "order placed successfully",
	})
}

// Get handles GET /orders/:token.
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.facade.OrderByToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		writeError(c, err, http.StatusConflict)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// List handles GET /orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context())
	if err != nil {
		writeError(c, err, http.StatusConflict)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, response)
}

// UpdateStatus handles PUT /orders/:token/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req dto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.facade.UpdateOrderStatus(c.Request.Context(), c.Param("token"), model.OrderStatus(req.Status))
	if err != nil {
		writeError(c, err, http.StatusConflict)
		return
	}

	audit(c, "order status changed", slog.String("token", order.Token), slog.String("status", string(order.Status)))
	c.JSON(http.StatusOK, dto.OrderMessage{Message: "order status updated", Order: toOrderResponse(*order)})
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	lines := make([]dto.OrderLineResponse, 0, len(order.Lines))
	for _, l := range order.Lines {
		lines = append(lines, dto.OrderLineResponse{ItemID: l.ItemID, Quantity: l.Quantity, Price: l.Price})
	}
	return dto.OrderResponse{
		ID:            order.ID,
		OrderToken:    order.Token,
		PaymentID:     order.PaymentID,
		Items:         lines,
		TotalAmount:   order.TotalAmount,
		Status:        string(order.Status),
		PaymentMethod: string(order.PaymentMethod),
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}
}
