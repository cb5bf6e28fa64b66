package auth

import (
	"bytes"
	"encoding/json"
	"fmt"
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
	jwtsvc "marketingsite/internal/pkg/jwt"
	"marketingsite/internal/repository"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:auth_test_%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}))

	j := jwtsvc.New("test-secret", time.Hour)
	service := NewService(repository.NewUserRepository(db), j)
	handler := NewHandler(service)

	router := gin.New()
	handler.RegisterRoutes(router.Group("/auth"), middleware.Auth(j))
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRegisterLoginMe(t *testing.T) {
	router := setupRouter(t)

	rec := postJSON(t, router, "/auth/register", RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var user UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, "alice@example.com", user.Email)

	rec = postJSON(t, router, "/auth/login", LoginRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var token TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &token))
	assert.Equal(t, "bearer", token.TokenType)
	require.NotEmpty(t, token.AccessToken)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	meRec := httptest.NewRecorder()
	router.ServeHTTP(meRec, req)
	require.Equal(t, http.StatusOK, meRec.Code)

	var me UserResponse
	require.NoError(t, json.Unmarshal(meRec.Body.Bytes(), &me))
	assert.Equal(t, user.ID, me.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	router := setupRouter(t)

	req := RegisterRequest{Name: "Bob", Email: "bob@example.com", Password: "secret123"}
	rec := postJSON(t, router, "/auth/register", req)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, router, "/auth/register", req)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"detail": "Email already registered"}`, rec.Body.String())
}

func TestLoginWrongPassword(t *testing.T) {
	router := setupRouter(t)

	rec := postJSON(t, router, "/auth/register", RegisterRequest{
		Name:     "Carol",
		Email:    "carol@example.com",
		Password: "secret123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, router, "/auth/login", LoginRequest{
		Email:    "carol@example.com",
		Password: "wrong-password",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"detail": "Incorrect email or password"}`, rec.Body.String())

	// Unknown email reports the same message as a wrong password.
	rec = postJSON(t, router, "/auth/login", LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"detail": "Incorrect email or password"}`, rec.Body.String())
}

func TestMeRequiresAuth(t *testing.T) {
	router := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"detail": "Not authenticated"}`, rec.Body.String())
}
