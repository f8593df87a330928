package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spotlighthub/spotlight-api/internal/auth"
	"github.com/spotlighthub/spotlight-api/internal/middleware"
	"github.com/spotlighthub/spotlight-api/internal/models"
	"github.com/spotlighthub/spotlight-api/internal/repository"
	"github.com/spotlighthub/spotlight-api/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type authTestEnv struct {
	db     *gorm.DB
	router *gin.Engine
	tokens *auth.TokenService
}

func setupAuthTestEnv(t *testing.T) authTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	tokens, err := auth.NewTokenService("test-secret-at-least-16-chars", 15*time.Minute, 720*time.Hour)
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(db)
	handler := NewAuthHandler(services.NewAuthService(userRepo), tokens)

	r := gin.New()
	r.POST("/api/auth/register", handler.Register)
	r.POST("/api/auth/login", handler.Login)
	r.POST("/api/auth/refresh", middleware.RequireRefreshToken(tokens), handler.Refresh)
	r.GET("/api/auth/profile", middleware.RequireAuth(tokens), handler.GetCurrentUser)

	return authTestEnv{db: db, router: r, tokens: tokens}
}

func (env authTestEnv) postJSON(t *testing.T, path string, payload any, bearer string) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

type tokenPairResponse struct {
	User         json.RawMessage `json:"user"`
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
}

func TestAuthHandler_Register(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := env.postJSON(t, "/api/auth/register", map[string]string{
		"email":    "artist@example.com",
		"username": "artist123",
		"password": "securepass1",
	}, "")

	require.Equal(t, http.StatusCreated, w.Code)

	var response tokenPairResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotEmpty(t, response.AccessToken)
	require.NotEmpty(t, response.RefreshToken)

	// The access token authenticates follow-up requests.
	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer "+response.AccessToken)
	me := httptest.NewRecorder()
	env.router.ServeHTTP(me, req)
	require.Equal(t, http.StatusOK, me.Code)
	require.Contains(t, me.Body.String(), "artist123")
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	env := setupAuthTestEnv(t)

	payload := map[string]string{
		"email":    "artist@example.com",
		"username": "artist123",
		"password": "securepass1",
	}
	require.Equal(t, http.StatusCreated, env.postJSON(t, "/api/auth/register", payload, "").Code)

	payload["username"] = "artist456"
	require.Equal(t, http.StatusConflict, env.postJSON(t, "/api/auth/register", payload, "").Code)
}

func TestAuthHandler_Register_InvalidUsername(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := env.postJSON(t, "/api/auth/register", map[string]string{
		"email":    "artist@example.com",
		"username": "no spaces allowed",
		"password": "securepass1",
	}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	env := setupAuthTestEnv(t)

	env.postJSON(t, "/api/auth/register", map[string]string{
		"email":    "artist@example.com",
		"username": "artist123",
		"password": "securepass1",
	}, "")

	w := env.postJSON(t, "/api/auth/login", map[string]string{
		"email":    "artist@example.com",
		"password": "securepass1",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var response tokenPairResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotEmpty(t, response.AccessToken)

	w = env.postJSON(t, "/api/auth/login", map[string]string{
		"email":    "artist@example.com",
		"password": "wrongpassword",
	}, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Refresh(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := env.postJSON(t, "/api/auth/register", map[string]string{
		"email":    "artist@example.com",
		"username": "artist123",
		"password": "securepass1",
	}, "")

	var registered tokenPairResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &registered))

	w = env.postJSON(t, "/api/auth/refresh", nil, registered.RefreshToken)
	require.Equal(t, http.StatusOK, w.Code)

	var refreshed struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &refreshed))
	require.NotEmpty(t, refreshed.AccessToken)
}

func TestAuthHandler_Refresh_RejectsAccessToken(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := env.postJSON(t, "/api/auth/register", map[string]string{
		"email":    "artist@example.com",
		"username": "artist123",
		"password": "securepass1",
	}, "")

	var registered tokenPairResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &registered))

	// An access token is not accepted by the refresh endpoint and a
	// refresh token is not accepted by protected endpoints.
	w = env.postJSON(t, "/api/auth/refresh", nil, registered.AccessToken)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer "+registered.RefreshToken)
	me := httptest.NewRecorder()
	env.router.ServeHTTP(me, req)
	require.Equal(t, http.StatusUnauthorized, me.Code)
}

func TestAuthHandler_Profile_RequiresToken(t *testing.T) {
	env := setupAuthTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
