package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/urbanmobility/taxi-backend-go/internal/repository"
	"github.com/urbanmobility/taxi-backend-go/internal/service"
	"github.com/urbanmobility/taxi-backend-go/pkg/response"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service *service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

type credentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "", "username and password are required")
		return
	}

	token, id, err := h.service.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			response.ValidationError(c, "", err.Error())
		case errors.Is(err, repository.ErrUsernameTaken):
			response.Conflict(c, "username already taken")
		default:
			respondStoreError(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token":    token,
		"user_id":  id,
		"username": req.Username,
	})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "", "username and password are required")
		return
	}

	token, id, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Unauthorized(c, "invalid username or password")
			return
		}
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"user_id":  id,
		"username": req.Username,
	})
}
