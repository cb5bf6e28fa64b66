package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketingsite/internal/database"
	"marketingsite/internal/domain"
	"marketingsite/internal/middleware"
	"marketingsite/internal/modules/auth"
	"marketingsite/internal/modules/blog"
	"marketingsite/internal/modules/casestudy"
	"marketingsite/internal/modules/contact"
	"marketingsite/internal/modules/image"
	"marketingsite/internal/modules/info"
	"marketingsite/internal/modules/mspservice"
	jwtsvc "marketingsite/internal/pkg/jwt"
	"marketingsite/internal/repository"
	"marketingsite/internal/storage"
)

type suite struct {
	router *gin.Engine
}

func setupSuite(t *testing.T) *suite {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:e2e_%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn)
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Blog{},
		&domain.CaseStudy{},
		&domain.Image{},
		&domain.MSPService{},
		&domain.Info{},
		&domain.ContactSubmission{},
	))

	userRepo := repository.NewUserRepository(db)
	j := jwtsvc.New("test_secret_key_32_characters_min", 24*time.Hour)
	store := storage.NewStore(t.TempDir(), "/static/uploads")
	hub := contact.NewHub()
	t.Cleanup(hub.Close)

	const baseURL = "http://localhost:8080"

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	blogHandler := blog.NewHandler(blog.NewService(repository.NewBlogRepository(db), store), userRepo, baseURL)
	caseStudyHandler := casestudy.NewHandler(casestudy.NewService(repository.NewCaseStudyRepository(db), store), baseURL)
	imageHandler := image.NewHandler(image.NewService(repository.NewImageRepository(db), store), userRepo, baseURL)
	mspHandler := mspservice.NewHandler(mspservice.NewService(repository.NewMSPServiceRepository(db), store), userRepo, baseURL)
	infoHandler := info.NewHandler(info.NewService(repository.NewInfoRepository(db), store), userRepo, baseURL)
	contactService := contact.NewService(repository.NewContactSubmissionRepository(db), hub)
	contactHandler := contact.NewHandler(contactService, hub, j)

	r := gin.New()
	r.Use(gin.Recovery())

	authMW := middleware.Auth(j)
	authHandler.RegisterRoutes(r.Group("/auth"), authMW)
	blogHandler.RegisterRoutes(r.Group("/blog"), authMW)
	caseStudyHandler.RegisterRoutes(r.Group("/case-studies"), authMW)
	imageHandler.RegisterRoutes(r.Group("/img"), authMW)
	mspHandler.RegisterRoutes(r.Group("/msp-services"), authMW)
	infoHandler.RegisterRoutes(r.Group("/info"), authMW)
	contactHandler.RegisterRoutes(r.Group("/contact"), authMW)

	return &suite{router: r}
}

func (s *suite) postJSON(t *testing.T, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *suite) postForm(t *testing.T, path, token string, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *suite) get(t *testing.T, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *suite) registerAndLogin(t *testing.T, email string) string {
	t.Helper()

	rec := s.postJSON(t, "/auth/register", "", map[string]string{
		"name":     "Test User",
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.postJSON(t, "/auth/login", "", map[string]string{
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var token struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &token))
	require.NotEmpty(t, token.AccessToken)
	return token.AccessToken
}

func TestFullBlogLifecycle(t *testing.T) {
	s := setupSuite(t)
	token := s.registerAndLogin(t, "author@example.com")

	rec := s.postForm(t, "/blog/", token, map[string]string{
		"heading":           "Launching Our New Helpdesk",
		"short_description": "What changes for customers.",
		"content":           "Long form announcement.",
		"type":              "announcement",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		ID   int64  `json:"id"`
		Slug string `json:"slug"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "launching-our-new-helpdesk", created.Slug)

	// Readable publicly by slug and by id.
	assert.Equal(t, http.StatusOK, s.get(t, "/blog/"+created.Slug, "").Code)
	assert.Equal(t, http.StatusOK, s.get(t, fmt.Sprintf("/blog/%d", created.ID), "").Code)
	assert.Equal(t, http.StatusOK, s.get(t, "/blog/type/announcement", "").Code)

	// A different user may read but not delete.
	intruder := s.registerAndLogin(t, "intruder@example.com")
	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/blog/%d", created.ID), nil)
	req.Header.Set("Authorization", "Bearer "+intruder)
	del := httptest.NewRecorder()
	s.router.ServeHTTP(del, req)
	require.Equal(t, http.StatusForbidden, del.Code)

	req = httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/blog/%d", created.ID), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	del = httptest.NewRecorder()
	s.router.ServeHTTP(del, req)
	require.Equal(t, http.StatusOK, del.Code)

	assert.Equal(t, http.StatusNotFound, s.get(t, fmt.Sprintf("/blog/%d", created.ID), "").Code)
}

func TestContentEndpointsRequireAuthForWrites(t *testing.T) {
	s := setupSuite(t)

	paths := map[string]map[string]string{
		"/blog/": {
			"heading": "x", "short_description": "x", "content": "x", "type": "article",
		},
		"/case-studies/": {
			"heading": "x", "short_description": "x", "content": "x",
		},
		"/msp-services/": {"name": "x", "content": "x"},
		"/info/":         {"name": "x", "content": "x"},
	}
	for path, fields := range paths {
		rec := s.postForm(t, path, "", fields)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}

	// Reads stay public.
	for _, path := range []string{"/blog/", "/case-studies/", "/msp-services/", "/info/"} {
		assert.Equal(t, http.StatusOK, s.get(t, path, "").Code, path)
	}
}

func TestContactFlow(t *testing.T) {
	s := setupSuite(t)

	rec := s.postJSON(t, "/contact/submit", "", map[string]string{
		"first_name":      "Jane",
		"last_name":       "Doe",
		"business_email":  "jane@acme.example",
		"message":         "Need a quote.",
		"services_needed": "backup",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// Reading leads requires a login.
	assert.Equal(t, http.StatusUnauthorized, s.get(t, "/contact/submissions", "").Code)

	token := s.registerAndLogin(t, "sales@example.com")
	rec = s.get(t, "/contact/submissions", token)
	require.Equal(t, http.StatusOK, rec.Code)

	var subs []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &subs))
	require.Len(t, subs, 1)
	assert.Equal(t, "jane@acme.example", subs[0]["business_email"])
}

func TestServiceCardLifecycle(t *testing.T) {
	s := setupSuite(t)
	token := s.registerAndLogin(t, "ops@example.com")

	rec := s.postForm(t, "/msp-services/", token, map[string]string{
		"name":    "Managed Backup",
		"content": "Nightly offsite copies.",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	assert.Equal(t, http.StatusOK, s.get(t, fmt.Sprintf("/msp-services/%d", created.ID), "").Code)

	// Partial rename keeps the content.
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	require.NoError(t, w.WriteField("name", "Managed Backup & DR"))
	require.NoError(t, w.Close())
	req := httptest.NewRequest(http.MethodPatch, fmt.Sprintf("/msp-services/%d", created.ID), &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	patch := httptest.NewRecorder()
	s.router.ServeHTTP(patch, req)
	require.Equal(t, http.StatusOK, patch.Code, patch.Body.String())

	var updated struct {
		Name    string `json:"name"`
		Content string `json:"content"`
	}
	require.NoError(t, json.Unmarshal(patch.Body.Bytes(), &updated))
	assert.Equal(t, "Managed Backup & DR", updated.Name)
	assert.Equal(t, "Nightly offsite copies.", updated.Content)
}
