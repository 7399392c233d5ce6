package employeecontroller

import (
	"net/http"

	"github.com/goldDdev/api-dhj-sub000/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type employeeRequest struct {
	Name        string  `json:"name" binding:"required"`
	CardID      string  `json:"card_id"`
	Phone       string  `json:"phone"`
	Email       string  `json:"email"`
	Role        string  `json:"role" binding:"required"`
	ParentId    *int64  `json:"parent_id"`
	HourlyPrice float64 `json:"hourly_price"`
	Username    string  `json:"username"`
	Password    string  `json:"password"`
}

// POST /v1/web/employee — karyawan plus akun login dibuat dalam satu
// transaksi, keduanya tersimpan atau keduanya batal.
func CreateHandler(c *gin.Context) {
	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	employee := models.Employee{
		Name:        req.Name,
		CardID:      req.CardID,
		Phone:       req.Phone,
		Email:       req.Email,
		Role:        req.Role,
		ParentId:    req.ParentId,
		HourlyPrice: req.HourlyPrice,
	}

	err := models.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&employee).Error; err != nil {
			return err
		}

		if req.Username == "" {
			return nil
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		user := models.User{
			Username:   req.Username,
			Email:      req.Email,
			Password:   string(hashed),
			Role:       req.Role,
			EmployeeId: employee.Id,
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"employee": employee})
}

func ListHandler(c *gin.Context) {
	query := models.DB.Where("is_deleted = 0").Order("name asc")

	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}

	var employees []models.Employee
	if err := query.Find(&employees).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"employees": employees})
}

func DetailHandler(c *gin.Context) {
	var employee models.Employee
	if err := models.DB.First(&employee, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Karyawan Tidak Ditemukan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"employee": employee})
}

func UpdateHandler(c *gin.Context) {
	var employee models.Employee
	if err := models.DB.First(&employee, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Karyawan Tidak Ditemukan"})
		return
	}

	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	employee.Name = req.Name
	employee.CardID = req.CardID
	employee.Phone = req.Phone
	employee.Email = req.Email
	employee.Role = req.Role
	employee.ParentId = req.ParentId
	employee.HourlyPrice = req.HourlyPrice

	if err := models.DB.Save(&employee).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"employee": employee})
}

func DestroyHandler(c *gin.Context) {
	var employee models.Employee
	if err := models.DB.First(&employee, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Karyawan Tidak Ditemukan"})
		return
	}

	employee.IsDeleted = 1
	if err := models.DB.Save(&employee).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Karyawan Dihapus"})
}
