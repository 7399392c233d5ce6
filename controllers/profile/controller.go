package profilecontroller

import (
	"net/http"

	"github.com/goldDdev/api-dhj-sub000/models"

	"github.com/gin-gonic/gin"
)

func GetUserProfile(c *gin.Context) {
	userData, exists := c.Get("currentUser")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sesi pengguna tidak valid"})
		return
	}
	currentUser := userData.(models.Employee)

	response := models.Profile{
		Name:   currentUser.Name,
		CardID: currentUser.CardID,
		Role:   currentUser.Role,
		Phone:  currentUser.Phone,
		Email:  currentUser.Email,
	}

	if workerData, ok := c.Get("currentWorker"); ok {
		if worker, ok := workerData.(models.ProjectWorker); ok {
			response.ProjectName = worker.Project.Name
		}
	}

	c.JSON(http.StatusOK, gin.H{"profile": response})
}
