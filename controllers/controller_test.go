package controllers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"TaskerGo/config"
	"TaskerGo/models"
	"TaskerGo/routes"
	"TaskerGo/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupRouter builds the real route table over an in-memory database.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	config.Logger = zap.NewNop().Sugar()
	config.RedisClient = nil
	utils.InitJWT("test-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Task{}))
	config.DB = db

	r := gin.New()
	r.LoadHTMLGlob("../templates/*.html")
	routes.RegisterRoutes(r)
	return r
}

func createUser(t *testing.T, username, password string) *models.User {
	t.Helper()

	hash, err := utils.HashPassword(password)
	require.NoError(t, err)

	user := &models.User{
		ID:           utils.GenerateID(),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hash,
		Gender:       models.GenderOther,
		CreatedAt:    time.Now(),
	}
	require.NoError(t, config.DB.Create(user).Error)
	return user
}

func createTask(t *testing.T, userID, title string, due time.Time, status string) *models.Task {
	t.Helper()

	task := &models.Task{
		ID:        utils.GenerateID(),
		UserID:    userID,
		Title:     title,
		DueDate:   due,
		Status:    status,
		CreatedAt: time.Now(),
	}
	require.NoError(t, config.DB.Create(task).Error)
	return task
}

func sessionCookie(t *testing.T, userID string) *http.Cookie {
	t.Helper()

	token, err := utils.GenerateToken(userID)
	require.NoError(t, err)
	return &http.Cookie{Name: "session", Value: token}
}

func doRequest(r http.Handler, method, target string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doRequestWithHeader(r http.Handler, method, target, header, value string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set(header, value)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// today matches the date normalization the handlers use.
func today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
