package settingcontroller

import (
	"net/http"

	"github.com/goldDdev/api-dhj-sub000/models"

	"github.com/gin-gonic/gin"
)

func ListHandler(c *gin.Context) {
	var settings []models.Setting
	if err := models.DB.Order("code asc").Find(&settings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

type settingRequest struct {
	Code        string `json:"code" binding:"required"`
	Value       string `json:"value" binding:"required"`
	Description string `json:"description"`
}

// PUT /v1/web/setting — upsert per kode.
func UpsertHandler(c *gin.Context) {
	userData, _ := c.Get("currentUser")
	currentUser := userData.(models.Employee)

	var req settingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var setting models.Setting
	err := models.DB.Where("code = ?", req.Code).First(&setting).Error
	if err != nil {
		setting = models.Setting{Code: req.Code}
	}

	setting.Value = req.Value
	if req.Description != "" {
		setting.Description = req.Description
	}
	setting.UpdatedBy = currentUser.Id

	if err := models.DB.Save(&setting).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"setting": setting})
}
