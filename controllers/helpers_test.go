package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/FT-Key/Ravello-web-sub001/config"
	"github.com/FT-Key/Ravello-web-sub001/database"
	"github.com/FT-Key/Ravello-web-sub001/models"
	"github.com/FT-Key/Ravello-web-sub001/routes"
	"github.com/FT-Key/Ravello-web-sub001/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "test-secret")
	os.Exit(m.Run())
}

// setupRouter builds the full router against a fresh in-memory sqlite
// database. Redis stays nil, so blacklist and login limits are off.
func setupRouter(t *testing.T, cfg *config.Config) (*gin.Engine, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, database.Migrate(db))

	utils.SetDB(db)
	utils.SetRedis(nil)

	if cfg == nil {
		cfg = &config.Config{JWTSecret: "test-secret"}
	}
	return routes.SetupRouter(cfg), db
}

// newUser persists a user with the given role and returns it with a valid
// bearer token.
func newUser(t *testing.T, db *gorm.DB, email, role string) (models.User, string) {
	t.Helper()
	hash, err := utils.HashPassword("secret123")
	assert.NoError(t, err)

	user := models.User{Name: "Test User", Email: email, Password: hash, Role: role}
	assert.NoError(t, db.Create(&user).Error)

	token, err := utils.GenerateJWT(user.ID, user.Role, "test-secret")
	assert.NoError(t, err)
	return user, token
}

// doJSON fires one request at the router and records the response.
func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		assert.NoError(t, err)
		reqBody = bytes.NewBuffer(jsonBody)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, reqBody)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
