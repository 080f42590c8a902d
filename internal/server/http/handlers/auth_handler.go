package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/canteen/internal/server/http/dto"
	"github.com/polkiloo/canteen/internal/server/http/middleware"
)

// AuthHandler processes admin login.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Login handles POST /admin/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.facade.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, err, http.StatusBadRequest)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.LoginResponse{Message: "login successful", Token: token})
}
