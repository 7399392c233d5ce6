package overtime

import (
	"net/http"
	"time"

	"github.com/goldDdev/api-dhj-sub000/helper"
	"github.com/goldDdev/api-dhj-sub000/models"

	"github.com/gin-gonic/gin"
)

type additionalHourRequest struct {
	ProjectId int64  `json:"project_id" binding:"required"`
	Duration  int    `json:"duration" binding:"required"`
	AbsentAt  string `json:"absent_at"`
	ComeAt    string `json:"come_at"`
	Note      string `json:"note"`
}

// POST /v1/mobile/additional-hour
func CreateHandler(c *gin.Context) {
	userData, exists := c.Get("currentUser")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sesi pengguna tidak valid"})
		return
	}
	currentUser := userData.(models.Employee)

	var req additionalHourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg := helper.LoadSettings()
	request, err := CreateRequest(currentUser, CreateInput{
		ProjectId: req.ProjectId,
		AbsentAt:  req.AbsentAt,
		Duration:  req.Duration,
		ComeAt:    req.ComeAt,
		Note:      req.Note,
	}, cfg, time.Now())
	if err != nil {
		c.JSON(helper.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Pengajuan Lembur Berhasil Dibuat",
		"request": request,
	})
}

// GET /v1/mobile/additional-hour
func HistoryHandler(c *gin.Context) {
	userData, _ := c.Get("currentUser")
	currentUser := userData.(models.Employee)

	var requests []models.RequestOvertime
	err := models.DB.Preload("Project").
		Where("employee_id = ?", currentUser.Id).
		Order("absent_at desc").Limit(30).
		Find(&requests).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// DELETE /v1/mobile/additional-hour/:id — hanya selama masih PENDING.
func DestroyHandler(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID Tidak Valid"})
		return
	}

	if err := Destroy(id); err != nil {
		c.JSON(helper.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pengajuan Lembur Dihapus"})
}
