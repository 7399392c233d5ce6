package boqcontroller

import (
	"net/http"

	"github.com/goldDdev/api-dhj-sub000/models"

	"github.com/gin-gonic/gin"
)

type boqRequest struct {
	Code  string  `json:"code" binding:"required"`
	Name  string  `json:"name" binding:"required"`
	Unit  string  `json:"unit"`
	Price float64 `json:"price"`
}

func CreateHandler(c *gin.Context) {
	var req boqRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	boq := models.Boq{Code: req.Code, Name: req.Name, Unit: req.Unit, Price: req.Price}
	if err := models.DB.Create(&boq).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"boq": boq})
}

func ListHandler(c *gin.Context) {
	var boqs []models.Boq
	if err := models.DB.Where("is_deleted = 0").Order("code asc").Find(&boqs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"boqs": boqs})
}

func UpdateHandler(c *gin.Context) {
	var boq models.Boq
	if err := models.DB.First(&boq, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "BOQ Tidak Ditemukan"})
		return
	}

	var req boqRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	boq.Code = req.Code
	boq.Name = req.Name
	boq.Unit = req.Unit
	boq.Price = req.Price

	if err := models.DB.Save(&boq).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"boq": boq})
}

func DestroyHandler(c *gin.Context) {
	var boq models.Boq
	if err := models.DB.First(&boq, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "BOQ Tidak Ditemukan"})
		return
	}

	boq.IsDeleted = 1
	if err := models.DB.Save(&boq).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "BOQ Dihapus"})
}
