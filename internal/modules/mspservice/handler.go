package mspservice

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"marketingsite/internal/domain"
	"marketingsite/internal/middleware"
	"marketingsite/internal/pkg/response"
	"marketingsite/internal/pkg/validation"
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
	rg.GET("/:id", h.Get)
	rg.PATCH("/:id", auth, h.Update)
	rg.DELETE("/:id", auth, h.Delete)
	rg.GET("/user/:user_id", auth, h.ListByUser)
}

func (h *Handler) Create(c *gin.Context) {
	var form CreateServiceForm
	if err := c.ShouldBind(&form); err != nil {
		response.Detail(c, http.StatusUnprocessableEntity, validation.Detail(err))
		return
	}

	svc, err := h.service.Create(c.Request.Context(), middleware.CurrentUserID(c), form, formImage(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, h.shape(c, svc))
}

func (h *Handler) List(c *gin.Context) {
	skip, limit := pagination(c, 10)

	services, err := h.service.List(c.Request.Context(), skip, limit)
	if err != nil {
		response.Detail(c, http.StatusInternalServerError, "Failed to list services")
		return
	}

	c.JSON(http.StatusOK, h.shapeAll(c, services))
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Detail(c, http.StatusBadRequest, "Invalid service id")
		return
	}

	svc, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.shape(c, svc))
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Detail(c, http.StatusBadRequest, "Invalid service id")
		return
	}

	var form UpdateServiceForm
	if err := c.ShouldBind(&form); err != nil {
		response.Detail(c, http.StatusUnprocessableEntity, validation.Detail(err))
		return
	}

	svc, err := h.service.Update(c.Request.Context(), middleware.CurrentUserID(c), id, form, formImage(c))
	if err != nil {
		if errors.Is(err, ErrForbidden) {
			response.Detail(c, http.StatusForbidden, "Not authorized.")
			return
		}
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.shape(c, svc))
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Detail(c, http.StatusBadRequest, "Invalid service id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), middleware.CurrentUserID(c), id); err != nil {
		if errors.Is(err, ErrForbidden) {
			response.Detail(c, http.StatusForbidden, "Not authorized.")
			return
		}
		h.respondError(c, err)
		return
	}

	response.Detail(c, http.StatusOK, "Service deleted successfully")
}

func (h *Handler) ListByUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		response.Detail(c, http.StatusBadRequest, "Invalid user id")
		return
	}
	if userID != middleware.CurrentUserID(c) {
		response.Detail(c, http.StatusForbidden, "Not authorized.")
		return
	}

	services, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		response.Detail(c, http.StatusInternalServerError, "Failed to list services")
		return
	}

	c.JSON(http.StatusOK, h.shapeAll(c, services))
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Detail(c, http.StatusNotFound, "Service not found")
	case errors.Is(err, storage.ErrUnsupportedType), errors.Is(err, storage.ErrEmptyFile):
		response.Detail(c, http.StatusBadRequest, "Invalid image format.")
	case errors.Is(err, storage.ErrInvalidPath):
		response.Detail(c, http.StatusUnprocessableEntity, "image_path must reference a stored upload path")
	default:
		response.Detail(c, http.StatusInternalServerError, "Internal server error")
	}
}

func (h *Handler) shape(c *gin.Context, svc *domain.MSPService) ServiceResponse {
	var authorEmail *string
	if email, err := h.users.EmailByID(c.Request.Context(), svc.UserID); err == nil && email != "" {
		authorEmail = &email
	}
	return NewServiceResponse(svc, authorEmail, h.baseURL)
}

func (h *Handler) shapeAll(c *gin.Context, services []domain.MSPService) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for i := range services {
		out = append(out, h.shape(c, &services[i]))
	}
	return out
}

func formImage(c *gin.Context) *multipart.FileHeader {
	fh, err := c.FormFile("image")
	if err != nil {
		return nil
	}
	return fh
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
