package casestudy

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"marketingsite/internal/middleware"
	"marketingsite/internal/pkg/response"
	"marketingsite/internal/pkg/validation"
	"marketingsite/internal/storage"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
	baseURL string
}

func NewHandler(service *Service, baseURL string) *Handler {
	return &Handler{service: service, baseURL: baseURL}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc) {
	rg.POST("/", auth, h.Create)
	rg.GET("/", h.List)
	rg.GET("/:id", h.Get)
	rg.PATCH("/:id", auth, h.Update)
	rg.DELETE("/:id", auth, h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	var form CreateCaseStudyForm
	if err := c.ShouldBind(&form); err != nil {
		response.Detail(c, http.StatusUnprocessableEntity, validation.Detail(err))
		return
	}

	cs, err := h.service.Create(c.Request.Context(), middleware.CurrentUserID(c), form, formImage(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewCaseStudyResponse(cs, h.baseURL))
}

func (h *Handler) List(c *gin.Context) {
	skip, limit := pagination(c, 10)

	studies, err := h.service.List(c.Request.Context(), skip, limit)
	if err != nil {
		response.Detail(c, http.StatusInternalServerError, "Failed to list case studies")
		return
	}

	out := make([]CaseStudyResponse, 0, len(studies))
	for i := range studies {
		out = append(out, NewCaseStudyResponse(&studies[i], h.baseURL))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Detail(c, http.StatusBadRequest, "Invalid case study id")
		return
	}

	cs, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewCaseStudyResponse(cs, h.baseURL))
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Detail(c, http.StatusBadRequest, "Invalid case study id")
		return
	}

	var form UpdateCaseStudyForm
	if err := c.ShouldBind(&form); err != nil {
		response.Detail(c, http.StatusUnprocessableEntity, validation.Detail(err))
		return
	}

	cs, err := h.service.Update(c.Request.Context(), middleware.CurrentUserID(c), id, form, formImage(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewCaseStudyResponse(cs, h.baseURL))
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Detail(c, http.StatusBadRequest, "Invalid case study id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	response.Detail(c, http.StatusOK, "Case study deleted successfully.")
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Detail(c, http.StatusNotFound, "Case study not found")
	case errors.Is(err, storage.ErrUnsupportedType), errors.Is(err, storage.ErrEmptyFile):
		response.Detail(c, http.StatusBadRequest, "Invalid image format. Allowed: jpg, png, gif, webp")
	case errors.Is(err, storage.ErrInvalidPath):
		response.Detail(c, http.StatusUnprocessableEntity, "image_path must reference a stored upload path")
	default:
		response.Detail(c, http.StatusInternalServerError, "Internal server error")
	}
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
