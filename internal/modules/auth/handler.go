package auth

import (
	"errors"
	"net/http"

	"marketingsite/internal/middleware"
	"marketingsite/internal/pkg/response"
	"marketingsite/internal/pkg/validation"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc) {
	rg.POST("/register", h.Register)
	rg.POST("/login", h.Login)
	rg.GET("/me", auth, h.Me)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusUnprocessableEntity, validation.Detail(err))
		return
	}

	user, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			response.Detail(c, http.StatusConflict, "Email already registered")
			return
		}
		response.Detail(c, http.StatusInternalServerError, "Registration failed")
		return
	}

	c.JSON(http.StatusCreated, NewUserResponse(user))
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusUnprocessableEntity, validation.Detail(err))
		return
	}

	token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Detail(c, http.StatusUnauthorized, "Incorrect email or password")
			return
		}
		response.Detail(c, http.StatusInternalServerError, "Login failed")
		return
	}

	c.JSON(http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (h *Handler) Me(c *gin.Context) {
	user, err := h.service.CurrentUser(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Detail(c, http.StatusNotFound, "User not found")
			return
		}
		response.Detail(c, http.StatusInternalServerError, "Failed to load user")
		return
	}
	c.JSON(http.StatusOK, NewUserResponse(user))
}
