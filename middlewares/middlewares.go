package middlewares

import (
	"net/http"
	"os"
	"strings"

	"github.com/goldDdev/api-dhj-sub000/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"Peringatan": "Silahkan Login Terlebih Dahulu!"})
			return
		}
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"Peringatan": "Silahkan Login Terlebih Dahulu!"})
			return
		}

		tokenString := parts[1]
		secretKey := os.Getenv("JWT_KEY")
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.NewValidationError("Metode Signing Tidak Valid", jwt.ValidationErrorSignatureInvalid)
			}
			return []byte(secretKey), nil
		})

		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"Error": "Token Tidak Valid atau Sudah Kedaluwarsa!"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"Error": "Gagal Memproses Token!"})
			return
		}

		rawID, ok := claims["employee_id"].(float64)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"Error": "Gagal Memproses Token!"})
			return
		}
		employeeID := int64(rawID)
		var employee models.Employee
		if err := models.DB.First(&employee, employeeID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"Error": "Pengguna Tidak Ditemukan!"})
			return
		}

		// Penugasan proyek aktif, boleh kosong untuk karyawan kantor.
		var worker models.ProjectWorker
		err = models.DB.Preload("Project").
			Where("employee_id = ? AND status = ?", employee.Id, "ACTIVE").
			Order("id desc").First(&worker).Error
		if err == nil {
			c.Set("currentWorker", worker)
		}

		c.Set("currentUser", employee)
		c.Next()
	}
}

// RoleMiddleware membatasi grup rute untuk peran tertentu.
func RoleMiddleware(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userData, exists := c.Get("currentUser")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"Error": "Sesi pengguna tidak valid"})
			return
		}
		currentUser := userData.(models.Employee)

		for _, role := range roles {
			if currentUser.Role == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"Error": "Anda Tidak Memiliki Akses!"})
	}
}
