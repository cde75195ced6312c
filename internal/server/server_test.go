package server_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/config"
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/database"
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/server"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func newApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := database.NewInMemory()
	require.NoError(t, err)
	app := server.New(config.Config{JWTSecret: "test_jwt_secret", JWTTTL: time.Hour}, server.Deps{DB: db})
	return app, db
}

func getJSON(t *testing.T, app *fiber.App, path string) (int, map[string]interface{}) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestHealth(t *testing.T) {
	app, db := newApp(t)

	status, body := getJSON(t, app, "/health")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, false, body["events"])

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	status, body = getJSON(t, app, "/health")
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, "degraded", body["status"])
}

func TestErrorHandler(t *testing.T) {
	app, _ := newApp(t)
	app.Get("/boom", func(c *fiber.Ctx) error {
		panic("unexpected")
	})

	status, body := getJSON(t, app, "/boom")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Server error", body["msg"])

	status, body = getJSON(t, app, "/api/unknown")
	assert.Equal(t, http.StatusNotFound, status)
	assert.NotEmpty(t, body["msg"])

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
}

func TestAuthRateLimit(t *testing.T) {
	db, err := database.NewInMemory()
	require.NoError(t, err)
	app := server.New(config.Config{
		JWTSecret:     "test_jwt_secret",
		JWTTTL:        time.Hour,
		AuthRateLimit: 0.001,
		AuthRateBurst: 1,
	}, server.Deps{DB: db})

	login := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		return resp.StatusCode
	}
	assert.Equal(t, http.StatusBadRequest, login())
	assert.Equal(t, http.StatusTooManyRequests, login())

	// Public reads are not limited
	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/shelters", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}
}
