package tracking

import (
	"log"
	"net/http"
	"time"

	"github.com/goldDdev/api-dhj-sub000/controllers/overtime"
	"github.com/goldDdev/api-dhj-sub000/helper"
	"github.com/goldDdev/api-dhj-sub000/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type pingRequest struct {
	ProjectId *int64   `json:"project_id"`
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
}

// POST /v1/mobile/tracking
//
// Setiap ping selalu dicatat ke trackings. Tanpa project_id, ping dicocokkan
// ke target geofence terdekat (proyek dulu, lalu center location, urut id
// terkecil) dan daily plan hari itu distempel bila cocok. Dengan project_id,
// ping mandor di luar radius ikut memicu penutupan lembur berjalan.
func PingHandler(c *gin.Context) {
	userData, exists := c.Get("currentUser")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sesi pengguna tidak valid"})
		return
	}
	currentUser := userData.(models.Employee)

	var req pingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	cfg := helper.LoadSettings()
	lat, lon := *req.Latitude, *req.Longitude

	ping := models.Tracking{
		EmployeeId: currentUser.Id,
		Latitude:   lat,
		Longitude:  lon,
	}

	if req.ProjectId != nil {
		ping.ProjectId = req.ProjectId

		if err := models.DB.Create(&ping).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal Menyimpan Tracking"})
			return
		}

		// Penutupan lembur tidak boleh menggagalkan pencatatan ping.
		if currentUser.IsMandor() {
			var project models.Project
			err := models.DB.First(&project, *req.ProjectId).Error
			if err == nil && !helper.WithinRadius(lat, lon, project.Latitude, project.Longitude, cfg.Radius) {
				if err := overtime.CloseOnExit(currentUser, project.Id, now); err != nil {
					log.Printf("Gagal menutup lembur employee %d: %v", currentUser.Id, err)
				}
			}
		}

		c.Status(http.StatusNoContent)
		return
	}

	projectID, centerID := resolveTarget(lat, lon, cfg.Radius)
	ping.ProjectId = projectID
	ping.CenterLocationId = centerID

	if projectID != nil {
		stampDailyPlan(currentUser.Id, *projectID, lat, lon, now)
	}

	if err := models.DB.Create(&ping).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal Menyimpan Tracking"})
		return
	}

	c.Status(http.StatusNoContent)
}

// resolveTarget mencari target geofence pertama yang memuat koordinat,
// urut id terkecil supaya hasilnya deterministik.
func resolveTarget(lat, lon, radius float64) (*int64, *int64) {
	var projects []models.Project
	models.DB.Where("is_deleted = 0").Order("id asc").Find(&projects)
	for _, p := range projects {
		if helper.WithinRadius(lat, lon, p.Latitude, p.Longitude, radius) {
			id := p.Id
			return &id, nil
		}
	}

	var centers []models.CenterLocation
	models.DB.Where("is_deleted = 0").Order("id asc").Find(&centers)
	for _, cl := range centers {
		if helper.WithinRadius(lat, lon, cl.Latitude, cl.Longitude, radius) {
			id := cl.Id
			return nil, &id
		}
	}

	return nil, nil
}

func stampDailyPlan(employeeID, projectID int64, lat, lon float64, now time.Time) {
	var plan models.DailyPlan
	err := models.DB.
		Where("employee_id = ? AND project_id = ? AND plan_at = ?",
			employeeID, projectID, now.Format(dateLayout)).
		First(&plan).Error
	if err == gorm.ErrRecordNotFound {
		return
	}
	if err != nil {
		log.Printf("Gagal membaca daily plan employee %d: %v", employeeID, err)
		return
	}

	plan.LocationAt = &now
	plan.Latitude = &lat
	plan.Longitude = &lon
	if err := models.DB.Save(&plan).Error; err != nil {
		log.Printf("Gagal menstempel daily plan %d: %v", plan.Id, err)
	}
}

// GET /v1/web/tracking — histori ping untuk monitoring.
func ListHandler(c *gin.Context) {
	query := models.DB.Order("created_at desc")

	if employeeID := c.Query("employee_id"); employeeID != "" {
		query = query.Where("employee_id = ?", employeeID)
	}
	if projectID := c.Query("project_id"); projectID != "" {
		query = query.Where("project_id = ?", projectID)
	}

	var pings []models.Tracking
	if err := query.Limit(100).Find(&pings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"trackings": pings})
}
