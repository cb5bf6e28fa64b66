package image

import (
	"errors"
	"net/http"
	"strconv"

	"marketingsite/internal/domain"
	"marketingsite/internal/middleware"
	"marketingsite/internal/pkg/response"
	"marketingsite/internal/repository"
	"marketingsite/internal/storage"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
	users   *repository.UserRepository
	baseURL string
}

func NewHandler(service *Service, users *repository.UserRepository, baseURL string) *Handler {
	return &Handler{service: service, users: users, baseURL: baseURL}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc) {
	rg.POST("/", auth, h.Create)
	rg.GET("/", h.List)
	rg.GET("/id/:id", h.Get)
	rg.POST("/delete/:id", auth, h.Delete)
	rg.GET("/user/:user_id", auth, h.ListByUser)
}

func (h *Handler) Create(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		response.Detail(c, http.StatusUnprocessableEntity, "image file is required")
		return
	}

	img, err := h.service.Create(c.Request.Context(), middleware.CurrentUserID(c), fh)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, h.shape(c, img))
}

func (h *Handler) List(c *gin.Context) {
	skip, limit := pagination(c, 10)

	images, err := h.service.List(c.Request.Context(), skip, limit)
	if err != nil {
		response.Detail(c, http.StatusInternalServerError, "Failed to list images")
		return
	}

	c.JSON(http.StatusOK, h.shapeAll(c, images))
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Detail(c, http.StatusBadRequest, "Invalid image id")
		return
	}

	img, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.shape(c, img))
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Detail(c, http.StatusBadRequest, "Invalid image id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), middleware.CurrentUserID(c), id); err != nil {
		if errors.Is(err, ErrForbidden) {
			response.Detail(c, http.StatusForbidden, "Not authorized to delete this Image.")
			return
		}
		h.respondError(c, err)
		return
	}

	response.Detail(c, http.StatusOK, "Image deleted successfully.")
}

func (h *Handler) ListByUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		response.Detail(c, http.StatusBadRequest, "Invalid user id")
		return
	}
	if userID != middleware.CurrentUserID(c) {
		response.Detail(c, http.StatusForbidden, "Not authorized to view these Images.")
		return
	}

	images, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		response.Detail(c, http.StatusInternalServerError, "Failed to list images")
		return
	}

	c.JSON(http.StatusOK, h.shapeAll(c, images))
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Detail(c, http.StatusNotFound, "Image not found")
	case errors.Is(err, storage.ErrUnsupportedType), errors.Is(err, storage.ErrEmptyFile):
		response.Detail(c, http.StatusBadRequest, "Invalid image format. Allowed: jpg, png, gif, webp")
	default:
		response.Detail(c, http.StatusInternalServerError, "Internal server error")
	}
}

func (h *Handler) shape(c *gin.Context, img *domain.Image) ImageResponse {
	var authorEmail *string
	if email, err := h.users.EmailByID(c.Request.Context(), img.UserID); err == nil && email != "" {
		authorEmail = &email
	}
	return NewImageResponse(img, authorEmail, h.baseURL)
}

func (h *Handler) shapeAll(c *gin.Context, images []domain.Image) []ImageResponse {
	out := make([]ImageResponse, 0, len(images))
	for i := range images {
		out = append(out, h.shape(c, &images[i]))
	}
	return out
}

func pagination(c *gin.Context, defaultLimit int) (skip, limit int) {
	skip = 0
	limit = defaultLimit
	if v := c.Query("skip"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			skip = n
		}
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			limit = n
		}
	}
	return skip, limit
}
