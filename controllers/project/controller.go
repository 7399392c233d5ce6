package projectcontroller

import (
	"net/http"

	"github.com/goldDdev/api-dhj-sub000/models"

	"github.com/gin-gonic/gin"
)

type projectRequest struct {
	Name      string  `json:"name" binding:"required"`
	Company   string  `json:"company"`
	Location  string  `json:"location"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	StartAt   string  `json:"start_at"`
	FinishAt  string  `json:"finish_at"`
}

func CreateHandler(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project := models.Project{
		Name:      req.Name,
		Company:   req.Company,
		Location:  req.Location,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		StartAt:   req.StartAt,
		FinishAt:  req.FinishAt,
	}
	if err := models.DB.Create(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"project": project})
}

func ListHandler(c *gin.Context) {
	var projects []models.Project
	if err := models.DB.Where("is_deleted = 0").Order("id desc").Find(&projects).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

func DetailHandler(c *gin.Context) {
	var project models.Project
	if err := models.DB.First(&project, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Proyek Tidak Ditemukan"})
		return
	}

	var workers []models.ProjectWorker
	models.DB.Preload("Employee").Where("project_id = ?", project.Id).Find(&workers)

	c.JSON(http.StatusOK, gin.H{"project": project, "workers": workers})
}

func UpdateHandler(c *gin.Context) {
	var project models.Project
	if err := models.DB.First(&project, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Proyek Tidak Ditemukan"})
		return
	}

	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project.Name = req.Name
	project.Company = req.Company
	project.Location = req.Location
	project.Latitude = req.Latitude
	project.Longitude = req.Longitude
	project.StartAt = req.StartAt
	project.FinishAt = req.FinishAt

	if err := models.DB.Save(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"project": project})
}

func DestroyHandler(c *gin.Context) {
	var project models.Project
	if err := models.DB.First(&project, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Proyek Tidak Ditemukan"})
		return
	}

	project.IsDeleted = 1
	if err := models.DB.Save(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Proyek Dihapus"})
}

type workerRequest struct {
	EmployeeId int64  `json:"employee_id" binding:"required"`
	ParentId   *int64 `json:"parent_id"`
	Role       string `json:"role"`
	JoinAt     string `json:"join_at"`
}

// POST /v1/web/project/:id/worker — menempatkan pekerja ke proyek,
// parent_id membentuk rantai mandor.
func AddWorkerHandler(c *gin.Context) {
	var project models.Project
	if err := models.DB.First(&project, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Proyek Tidak Ditemukan"})
		return
	}

	var req workerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	worker := models.ProjectWorker{
		ProjectId:  project.Id,
		EmployeeId: req.EmployeeId,
		ParentId:   req.ParentId,
		Role:       req.Role,
		JoinAt:     req.JoinAt,
	}
	if err := models.DB.Create(&worker).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Pekerja Sudah Terdaftar di Proyek Ini"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"worker": worker})
}
