package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goldDdev/api-dhj-sub000/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testKey = "kunci-rahasia-uji"

func setupAuthDB(t *testing.T) models.Employee {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(
		&models.Employee{},
		&models.Project{},
		&models.ProjectWorker{},
	))
	models.DB = db

	employee := models.Employee{Name: "budi", Role: models.RoleWorker, Email: "budi@contoh.id"}
	assert.NoError(t, db.Create(&employee).Error)
	return employee
}

func setupAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", AuthMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testKey))
	assert.NoError(t, err)
	return signed
}

func doAuthed(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	t.Setenv("JWT_KEY", testKey)
	employee := setupAuthDB(t)
	r := setupAuthRouter()

	token := signToken(t, jwt.MapClaims{
		"employee_id": employee.Id,
		"exp":         time.Now().Add(time.Hour).Unix(),
	})
	w := doAuthed(r, token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddlewareMissingEmployeeClaim(t *testing.T) {
	t.Setenv("JWT_KEY", testKey)
	setupAuthDB(t)
	r := setupAuthRouter()

	token := signToken(t, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	w := doAuthed(r, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareMistypedEmployeeClaim(t *testing.T) {
	t.Setenv("JWT_KEY", testKey)
	setupAuthDB(t)
	r := setupAuthRouter()

	token := signToken(t, jwt.MapClaims{
		"employee_id": "bukan-angka",
		"exp":         time.Now().Add(time.Hour).Unix(),
	})
	w := doAuthed(r, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsBadSignature(t *testing.T) {
	t.Setenv("JWT_KEY", testKey)
	employee := setupAuthDB(t)
	r := setupAuthRouter()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"employee_id": employee.Id,
	})
	signed, err := token.SignedString([]byte("kunci-lain"))
	assert.NoError(t, err)

	w := doAuthed(r, signed)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
