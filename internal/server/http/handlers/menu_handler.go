package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/canteen/internal/domain/model"
	"github.com/polkiloo/canteen/internal/server/http/dto"
)

// MenuHandler serves the catalog and inventory endpoints.
type MenuHandler struct {
	facade MenuFacade
}

// NewMenuHandler constructs MenuHandler.
func NewMenuHandler(facade MenuFacade) *MenuHandler {
	return &MenuHandler{facade: facade}
}

// List handles GET /menu.
func (h *MenuHandler) List(c *gin.Context) {
	items, err := h.facade.MenuItems(c.Request.Context())
	if err != nil {
		writeError(c, err, http.StatusBadRequest)
		return
	}

	response := make([]dto.MenuItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toMenuItemResponse(item))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /menu/:id.
func (h *MenuHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := h.facade.MenuItem(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, toMenuItemResponse(*item))
}

// Categories handles GET /menu/categories.
func (h *MenuHandler) Categories(c *gin.Context) {
	categories, err := h.facade.MenuCategories(c.Request.Context())
	if err != nil {
		writeError(c, err, http.StatusBadRequest)
		return
	}

	response := make([]dto.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		response = append(response, dto.CategoryResponse{Name: category.Name, Count: category.Count})
	}
	c.JSON(http.StatusOK, response)
}

// Add handles POST /menu/add.
func (h *MenuHandler) Add(c *gin.Context) {
	var req dto.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.facade.AddMenuItem(c.Request.Context(), model.MenuItem{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Quantity: req.Quantity,
	})
	if err != nil {
		writeError(c, err, http.StatusBadRequest)
		return
	}

	audit(c, "menu item added", slog.Int64("item_id", item.ID), slog.String("name", item.Name), slog.Int("quantity", item.Quantity))
	c.JSON(http.StatusCreated, dto.MenuItemMessage{Message: "menu item added", Item: toMenuItemResponse(*item)})
}

// Update handles PUT /menu/update/:id.
func (h *MenuHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.MenuItemUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	update, msg := toMenuItemUpdate(req)
	if update == nil {
		abortWithError(c, http.StatusBadRequest, msg)
		return
	}

	item, err := h.facade.UpdateMenuItem(c.Request.Context(), id, update)
	if err != nil {
		writeError(c, err, http.StatusBadRequest)
		return
	}

	audit(c, "menu item updated", slog.Int64("item_id", item.ID), slog.String("update", updateKind(update)), slog.Int("quantity", item.Quantity))
	c.JSON(http.StatusOK, dto.MenuItemMessage{Message: "menu item updated", Item: toMenuItemResponse(*item)})
}

// Delete handles DELETE /menu/delete/:id.
func (h *MenuHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := h.facade.DeleteMenuItem(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, http.StatusBadRequest)
		return
	}

	audit(c, "menu item deleted", slog.Int64("item_id", item.ID), slog.String("name", item.Name))
	c.JSON(http.StatusOK, dto.MenuItemMessage{Message: "menu item deleted", Item: toMenuItemResponse(*item)})
}

// Buy handles PUT /menu/buy/:id.
func (h *MenuHandler) Buy(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := h.facade.BuyMenuItem(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, http.StatusBadRequest)
		return
	}

	c.JSON(http.StatusOK, dto.MenuItemMessage{Message: "purchase successful", Item: toMenuItemResponse(*item)})
}

// toMenuItemUpdate picks the update variant. A nil result comes with the reason.
func toMenuItemUpdate(req dto.MenuItemUpdateRequest) (model.MenuItemUpdate, string) {
	fields := model.ReplaceFields{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Quantity: req.Quantity,
	}
	if req.Inc == nil {
		return fields, ""
	}
	if !fields.Empty() {
		return nil, "$inc cannot be combined with field updates"
	}
	if req.Inc.Quantity == nil {
		return nil, "$inc requires quantity"
	}
	return model.AdjustQuantity{Delta: *req.Inc.Quantity}, ""
}

func toMenuItemResponse(item model.MenuItem) dto.MenuItemResponse {
	return dto.MenuItemResponse{
		ID:        item.ID,
		Name:      item.Name,
		Category:  item.Category,
		Price:     item.Price,
		Quantity:  item.Quantity,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

func updateKind(update model.MenuItemUpdate) string {
	if _, ok := update.(model.AdjustQuantity); ok {
		return "adjust"
	}
	return "replace"
}
