package dailyplan

import (
	"net/http"
	"time"

	"github.com/goldDdev/api-dhj-sub000/models"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

type planRequest struct {
	ProjectId  int64  `json:"project_id" binding:"required"`
	EmployeeId int64  `json:"employee_id" binding:"required"`
	PlanAt     string `json:"plan_at" binding:"required"`
	Note       string `json:"note"`
}

// POST /v1/web/daily-plan
func CreateHandler(c *gin.Context) {
	userData, _ := c.Get("currentUser")
	currentUser := userData.(models.Employee)

	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing int64
	models.DB.Model(&models.DailyPlan{}).
		Where("project_id = ? AND employee_id = ? AND plan_at = ?", req.ProjectId, req.EmployeeId, req.PlanAt).
		Count(&existing)
	if existing > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Rencana Harian Sudah Ada Untuk Tanggal Tersebut"})
		return
	}

	plan := models.DailyPlan{
		ProjectId:  req.ProjectId,
		EmployeeId: req.EmployeeId,
		PlanAt:     req.PlanAt,
		Note:       req.Note,
		CreatedBy:  currentUser.Id,
	}
	if err := models.DB.Create(&plan).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Gagal Menyimpan Rencana Harian"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Rencana Harian Dibuat", "plan": plan})
}

// GET /v1/web/daily-plan
func ListHandler(c *gin.Context) {
	query := models.DB.Preload("Project").Order("plan_at desc")

	if projectID := c.Query("project_id"); projectID != "" {
		query = query.Where("project_id = ?", projectID)
	}
	if planAt := c.Query("plan_at"); planAt != "" {
		query = query.Where("plan_at = ?", planAt)
	}

	var plans []models.DailyPlan
	if err := query.Limit(100).Find(&plans).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

// GET /v1/mobile/daily-plan — rencana pekerja untuk hari ini.
func TodayHandler(c *gin.Context) {
	userData, _ := c.Get("currentUser")
	currentUser := userData.(models.Employee)

	var plans []models.DailyPlan
	err := models.DB.Preload("Project").
		Where("employee_id = ? AND plan_at = ?", currentUser.Id, time.Now().Format(dateLayout)).
		Find(&plans).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

// DELETE /v1/web/daily-plan/:id
func DestroyHandler(c *gin.Context) {
	var plan models.DailyPlan
	if err := models.DB.First(&plan, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Rencana Harian Tidak Ditemukan"})
		return
	}

	if err := models.DB.Delete(&plan).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rencana Harian Dihapus"})
}
