package authcontroller

import (
	"net/http"
	"time"

	"github.com/goldDdev/api-dhj-sub000/config"
	"github.com/goldDdev/api-dhj-sub000/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func LoginHandler(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"Message": err.Error()})
		return
	}

	var user models.User
	if err := models.DB.Preload("Employee").Where("username = ? AND is_deleted = 0", req.Username).First(&user).Error; err != nil {
		switch err {
		case gorm.ErrRecordNotFound:
			c.JSON(http.StatusUnauthorized, gin.H{"Message": "Username atau Password Tidak Sesuai"})
			return
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"Message": err.Error()})
			return
		}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"Message": "Username atau Password Tidak Sesuai"})
		return
	}

	expTime := time.Now().Add(24 * time.Hour)
	claims := &config.JWTClaims{
		Username:   user.Username,
		EmployeeId: user.EmployeeId,
		Role:       user.Employee.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "api-dhj",
			ExpiresAt: jwt.NewNumericDate(expTime),
		},
	}

	tokenDeklarasi := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err := tokenDeklarasi.SignedString(config.JWT_KEY)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"Message": "Login Berhasil!", "Token": token})
}

func Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"Message": "Logout Berhasil!"})
}
