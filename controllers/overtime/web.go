package overtime

import (
	"net/http"
	"strconv"

	"github.com/goldDdev/api-dhj-sub000/helper"
	"github.com/goldDdev/api-dhj-sub000/models"

	"github.com/gin-gonic/gin"
)

type statusRequest struct {
	Id     int64  `json:"id" binding:"required"`
	Status string `json:"status" binding:"required"`
}

// PUT /v1/web/project-overtime/status
func UpdateStatusHandler(c *gin.Context) {
	userData, exists := c.Get("currentUser")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sesi pengguna tidak valid"})
		return
	}
	currentUser := userData.(models.Employee)

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, err := UpdateStatus(req.Id, req.Status, currentUser)
	if err != nil {
		c.JSON(helper.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Status Pengajuan Lembur Diperbarui",
		"request": request,
	})
}

// GET /v1/web/project-overtime
func ListHandler(c *gin.Context) {
	query := models.DB.Preload("Employee").Preload("Project").Order("absent_at desc")

	if projectID := c.Query("project_id"); projectID != "" {
		query = query.Where("project_id = ?", projectID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var requests []models.RequestOvertime
	if err := query.Limit(100).Find(&requests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// DELETE /v1/web/project-overtime/:id
func WebDestroyHandler(c *gin.Context) {
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

func paramID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
