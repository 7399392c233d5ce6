package tracking

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goldDdev/api-dhj-sub000/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)

	err = db.AutoMigrate(
		&models.Employee{},
		&models.Project{},
		&models.ProjectAbsent{},
		&models.DailyPlan{},
		&models.RequestOvertime{},
		&models.AdditionalHour{},
		&models.Tracking{},
		&models.CenterLocation{},
		&models.Setting{},
	)
	assert.NoError(t, err)

	models.DB = db
}

func setupRouter(employee models.Employee) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("currentUser", employee)
		c.Next()
	})
	r.POST("/tracking", PingHandler)
	return r
}

func postPing(t *testing.T, r *gin.Engine, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	assert.NoError(t, err)

	req := httptest.NewRequest("POST", "/tracking", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPingStampsDailyPlanInsideRadius(t *testing.T) {
	setupDB(t)

	worker := models.Employee{Name: "budi", Role: models.RoleWorker}
	assert.NoError(t, models.DB.Create(&worker).Error)

	project := models.Project{Name: "Tower A", Latitude: -6.2, Longitude: 106.8}
	assert.NoError(t, models.DB.Create(&project).Error)

	today := time.Now().Format("2006-01-02")
	plan := models.DailyPlan{ProjectId: project.Id, EmployeeId: worker.Id, PlanAt: today}
	assert.NoError(t, models.DB.Create(&plan).Error)

	// ping tepat di koordinat proyek, tanpa project_id
	w := postPing(t, setupRouter(worker), map[string]interface{}{
		"latitude":  -6.2,
		"longitude": 106.8,
	})
	assert.Equal(t, http.StatusNoContent, w.Code)

	var stamped models.DailyPlan
	assert.NoError(t, models.DB.First(&stamped, plan.Id).Error)
	assert.NotNil(t, stamped.LocationAt)
	assert.Equal(t, -6.2, *stamped.Latitude)
	assert.Equal(t, 106.8, *stamped.Longitude)

	var ping models.Tracking
	assert.NoError(t, models.DB.First(&ping).Error)
	assert.Equal(t, project.Id, *ping.ProjectId)
}

func TestPingWithoutMatchOnlyRecordsTracking(t *testing.T) {
	setupDB(t)

	worker := models.Employee{Name: "budi", Role: models.RoleWorker}
	assert.NoError(t, models.DB.Create(&worker).Error)

	project := models.Project{Name: "Tower A", Latitude: -6.2, Longitude: 106.8}
	assert.NoError(t, models.DB.Create(&project).Error)

	today := time.Now().Format("2006-01-02")
	plan := models.DailyPlan{ProjectId: project.Id, EmployeeId: worker.Id, PlanAt: today}
	assert.NoError(t, models.DB.Create(&plan).Error)

	// jauh dari semua target
	w := postPing(t, setupRouter(worker), map[string]interface{}{
		"latitude":  -7.8,
		"longitude": 110.4,
	})
	assert.Equal(t, http.StatusNoContent, w.Code)

	var untouched models.DailyPlan
	assert.NoError(t, models.DB.First(&untouched, plan.Id).Error)
	assert.Nil(t, untouched.LocationAt)

	var ping models.Tracking
	assert.NoError(t, models.DB.First(&ping).Error)
	assert.Nil(t, ping.ProjectId)
	assert.Nil(t, ping.CenterLocationId)
}

func TestPingMatchesCenterLocationFallback(t *testing.T) {
	setupDB(t)

	worker := models.Employee{Name: "budi", Role: models.RoleWorker}
	assert.NoError(t, models.DB.Create(&worker).Error)

	center := models.CenterLocation{Name: "Kantor Pusat", Latitude: -6.3, Longitude: 106.9}
	assert.NoError(t, models.DB.Create(&center).Error)

	w := postPing(t, setupRouter(worker), map[string]interface{}{
		"latitude":  -6.3,
		"longitude": 106.9,
	})
	assert.Equal(t, http.StatusNoContent, w.Code)

	var ping models.Tracking
	assert.NoError(t, models.DB.First(&ping).Error)
	assert.Nil(t, ping.ProjectId)
	assert.Equal(t, center.Id, *ping.CenterLocationId)
}

func TestPingWithProjectAlwaysAppends(t *testing.T) {
	setupDB(t)

	worker := models.Employee{Name: "budi", Role: models.RoleWorker}
	assert.NoError(t, models.DB.Create(&worker).Error)

	project := models.Project{Name: "Tower A", Latitude: -6.2, Longitude: 106.8}
	assert.NoError(t, models.DB.Create(&project).Error)

	w := postPing(t, setupRouter(worker), map[string]interface{}{
		"project_id": project.Id,
		"latitude":   -6.2,
		"longitude":  106.8,
	})
	assert.Equal(t, http.StatusNoContent, w.Code)

	var count int64
	models.DB.Model(&models.Tracking{}).Count(&count)
	assert.Equal(t, int64(1), count)
}
