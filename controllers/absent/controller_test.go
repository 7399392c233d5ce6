package absent

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
		&models.ProjectWorker{},
		&models.ProjectAbsent{},
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
	r.POST("/absent", BatchCreateHandler)
	r.PUT("/absent/come", AddComeHandler)
	r.PUT("/absent/close", AddCloseHandler)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	assert.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedTeam(t *testing.T) (models.Employee, []models.Employee) {
	mandor := models.Employee{Name: "joko", Role: models.RoleMandor}
	assert.NoError(t, models.DB.Create(&mandor).Error)

	var members []models.Employee
	for _, name := range []string{"budi", "tono"} {
		member := models.Employee{Name: name, Role: models.RoleWorker}
		assert.NoError(t, models.DB.Create(&member).Error)
		members = append(members, member)
		assert.NoError(t, models.DB.Create(&models.ProjectWorker{
			ProjectId:  1,
			EmployeeId: member.Id,
			ParentId:   &mandor.Id,
			Status:     "ACTIVE",
		}).Error)
	}
	assert.NoError(t, models.DB.Create(&models.ProjectWorker{
		ProjectId:  1,
		EmployeeId: mandor.Id,
		Status:     "ACTIVE",
	}).Error)
	return mandor, members
}

func TestBatchCreateOpensRowsForTeam(t *testing.T) {
	setupDB(t)
	mandor, _ := seedTeam(t)
	r := setupRouter(mandor)

	w := doJSON(t, r, "POST", "/absent", map[string]interface{}{
		"project_id": 1,
		"absent_at":  "2026-08-28",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var count int64
	models.DB.Model(&models.ProjectAbsent{}).Where("absent_at = ?", "2026-08-28").Count(&count)
	// dua anggota plus mandornya sendiri
	assert.Equal(t, int64(3), count)
}

func TestBatchCreateRejectsDuplicateDate(t *testing.T) {
	setupDB(t)
	mandor, _ := seedTeam(t)
	r := setupRouter(mandor)

	w := doJSON(t, r, "POST", "/absent", map[string]interface{}{
		"project_id": 1,
		"absent_at":  "2026-08-28",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, "POST", "/absent", map[string]interface{}{
		"project_id": 1,
		"absent_at":  "2026-08-28",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAbsentUniquenessConstraint(t *testing.T) {
	setupDB(t)

	row := models.ProjectAbsent{ProjectId: 1, EmployeeId: 2, AbsentAt: "2026-08-28", Absent: models.AbsentAbsent}
	assert.NoError(t, models.DB.Create(&row).Error)

	dup := models.ProjectAbsent{ProjectId: 1, EmployeeId: 2, AbsentAt: "2026-08-28", Absent: models.AbsentPresent}
	assert.Error(t, models.DB.Create(&dup).Error)
}

func TestComeThenClose(t *testing.T) {
	setupDB(t)
	mandor, members := seedTeam(t)
	r := setupRouter(mandor)

	today := time.Now().Format(dateLayout)
	w := doJSON(t, r, "POST", "/absent", map[string]interface{}{"project_id": 1})
	assert.Equal(t, http.StatusCreated, w.Code)

	worker := members[0]
	rw := setupRouter(worker)

	w = doJSON(t, rw, "PUT", "/absent/come", map[string]interface{}{"project_id": 1})
	assert.Equal(t, http.StatusOK, w.Code)

	var row models.ProjectAbsent
	assert.NoError(t, models.DB.
		Where("project_id = ? AND employee_id = ? AND absent_at = ?", 1, worker.Id, today).
		First(&row).Error)
	assert.Equal(t, models.AbsentPresent, row.Absent)
	assert.NotNil(t, row.ComeAt)

	// check-in kedua ditolak
	w = doJSON(t, rw, "PUT", "/absent/come", map[string]interface{}{"project_id": 1})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, rw, "PUT", "/absent/close", map[string]interface{}{"project_id": 1})
	assert.Equal(t, http.StatusOK, w.Code)

	assert.NoError(t, models.DB.
		Where("project_id = ? AND employee_id = ? AND absent_at = ?", 1, worker.Id, today).
		First(&row).Error)
	assert.NotNil(t, row.CloseAt)
	assert.GreaterOrEqual(t, row.Duration, 0)
}

func TestCloseWithoutComeRejected(t *testing.T) {
	setupDB(t)
	mandor, members := seedTeam(t)

	w := doJSON(t, setupRouter(mandor), "POST", "/absent", map[string]interface{}{"project_id": 1})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, setupRouter(members[0]), "PUT", "/absent/close", map[string]interface{}{"project_id": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
