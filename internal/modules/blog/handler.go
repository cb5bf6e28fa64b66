package blog

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
	rg.GET("/:idOrSlug", h.Get)
	rg.GET("/type/:type", h.ListByType)
	rg.GET("/user/:user_id", auth, h.ListByUser)
	rg.PATCH("/:idOrSlug", auth, h.Update)
	rg.DELETE("/:idOrSlug", auth, h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	var form CreateBlogForm
	if err := c.ShouldBind(&form); err != nil {
		response.Detail(c, http.StatusUnprocessableEntity, validation.Detail(err))
		return
	}

	b, err := h.service.Create(c.Request.Context(), middleware.CurrentUserID(c), form, formImage(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, h.shape(c, b))
}

func (h *Handler) List(c *gin.Context) {
	skip, limit := pagination(c, 10)

	blogs, err := h.service.List(c.Request.Context(), skip, limit)
	if err != nil {
		response.Detail(c, http.StatusInternalServerError, "Failed to list blogs")
		return
	}

	c.JSON(http.StatusOK, h.shapeAll(c, blogs))
}

// Get serves both GET /blog/{id} and GET /blog/{slug}: a numeric parameter
// is treated as an id, anything else as a slug.
func (h *Handler) Get(c *gin.Context) {
	param := c.Param("idOrSlug")

	var (
		b   *domain.Blog
		err error
	)
	if id, convErr := strconv.ParseInt(param, 10, 64); convErr == nil {
		b, err = h.service.Get(c.Request.Context(), id)
	} else {
		b, err = h.service.GetBySlug(c.Request.Context(), param)
	}
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.shape(c, b))
}

func (h *Handler) ListByType(c *gin.Context) {
	blogs, err := h.service.ListByType(c.Request.Context(), c.Param("type"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Detail(c, http.StatusNotFound, "No blogs found for this type")
			return
		}
		response.Detail(c, http.StatusInternalServerError, "Failed to list blogs")
		return
	}

	c.JSON(http.StatusOK, h.shapeAll(c, blogs))
}

func (h *Handler) ListByUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		response.Detail(c, http.StatusBadRequest, "Invalid user id")
		return
	}
	if userID != middleware.CurrentUserID(c) {
		response.Detail(c, http.StatusForbidden, "Not authorized to view these blogs.")
		return
	}

	blogs, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		response.Detail(c, http.StatusInternalServerError, "Failed to list blogs")
		return
	}

	c.JSON(http.StatusOK, h.shapeAll(c, blogs))
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("idOrSlug"), 10, 64)
	if err != nil {
		response.Detail(c, http.StatusBadRequest, "Invalid blog id")
		return
	}

	var form UpdateBlogForm
	if err := c.ShouldBind(&form); err != nil {
		response.Detail(c, http.StatusUnprocessableEntity, validation.Detail(err))
		return
	}

	b, err := h.service.Update(c.Request.Context(), middleware.CurrentUserID(c), id, form, formImage(c))
	if err != nil {
		if errors.Is(err, ErrForbidden) {
			response.Detail(c, http.StatusForbidden, "Not authorized to update this blog.")
			return
		}
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.shape(c, b))
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("idOrSlug"), 10, 64)
	if err != nil {
		response.Detail(c, http.StatusBadRequest, "Invalid blog id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), middleware.CurrentUserID(c), id); err != nil {
		if errors.Is(err, ErrForbidden) {
			response.Detail(c, http.StatusForbidden, "Not authorized to delete this blog.")
			return
		}
		h.respondError(c, err)
		return
	}

	response.Detail(c, http.StatusOK, "Blog deleted successfully.")
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Detail(c, http.StatusNotFound, "Blog not found")
	case errors.Is(err, storage.ErrUnsupportedType), errors.Is(err, storage.ErrEmptyFile):
		response.Detail(c, http.StatusBadRequest, "Invalid image format. Allowed: jpg, png, gif, webp")
	case errors.Is(err, storage.ErrInvalidPath):
		response.Detail(c, http.StatusUnprocessableEntity, "image_path must reference a stored upload path")
	case errors.Is(err, ErrSlugConflict), errors.Is(err, ErrSlugGeneration):
		response.Detail(c, http.StatusConflict, "Could not allocate a unique slug, please retry")
	default:
		response.Detail(c, http.StatusInternalServerError, "Internal server error")
	}
}

func (h *Handler) shape(c *gin.Context, b *domain.Blog) BlogResponse {
	return NewBlogResponse(b, h.authorEmail(c, b.UserID), h.baseURL)
}

func (h *Handler) shapeAll(c *gin.Context, blogs []domain.Blog) []BlogResponse {
	out := make([]BlogResponse, 0, len(blogs))
	for i := range blogs {
		out = append(out, h.shape(c, &blogs[i]))
	}
	return out
}

// authorEmail is best-effort: a missing or failed lookup yields null in the
// response, never an error.
func (h *Handler) authorEmail(c *gin.Context, userID int64) *string {
	email, err := h.users.EmailByID(c.Request.Context(), userID)
	if err != nil || email == "" {
		return nil
	}
	return &email
}

// formImage returns the optional "image" form file; absence is not an error.
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
