package absent

import (
	"net/http"
	"time"

	"github.com/goldDdev/api-dhj-sub000/helper"
	"github.com/goldDdev/api-dhj-sub000/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"
const timeLayout = "15:04:05"

type batchRequest struct {
	ProjectId int64  `json:"project_id" binding:"required"`
	AbsentAt  string `json:"absent_at"`
}

// POST /v1/mobile/absent — mandor membuka absensi harian untuk seluruh
// anggota timnya. Baris dibuat berstatus A sampai masing-masing check-in.
func BatchCreateHandler(c *gin.Context) {
	userData, exists := c.Get("currentUser")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sesi pengguna tidak valid"})
		return
	}
	currentUser := userData.(models.Employee)

	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	absentAt := req.AbsentAt
	if absentAt == "" {
		absentAt = time.Now().Format(dateLayout)
	}

	memberIDs, err := helper.TeamMemberIDs(models.DB, req.ProjectId, currentUser.Id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(memberIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tidak Ada Anggota Tim Pada Proyek Ini"})
		return
	}

	var existing int64
	models.DB.Model(&models.ProjectAbsent{}).
		Where("project_id = ? AND absent_at = ? AND employee_id IN ?", req.ProjectId, absentAt, memberIDs).
		Count(&existing)
	if existing > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Absensi Tanggal Tersebut Sudah Dibuka"})
		return
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		for _, employeeID := range memberIDs {
			row := models.ProjectAbsent{
				ProjectId:  req.ProjectId,
				EmployeeId: employeeID,
				AbsentAt:   absentAt,
				Absent:     models.AbsentAbsent,
				CreatedBy:  currentUser.Id,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Gagal Membuka Absensi, Data Sudah Ada"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Absensi Berhasil Dibuka",
		"total":   len(memberIDs),
	})
}

type comeRequest struct {
	ProjectId          int64  `json:"project_id" binding:"required"`
	EmployeeId         *int64 `json:"employee_id"`
	AbsentAt           string `json:"absent_at"`
	ReplacedEmployeeId *int64 `json:"replaced_employee_id"`
	Note               string `json:"note"`
}

// PUT /v1/mobile/absent/come — check-in. Keterlambatan dihitung terhadap
// START_TIME ditambah toleransi LATE_TRESHOLD.
func AddComeHandler(c *gin.Context) {
	userData, _ := c.Get("currentUser")
	currentUser := userData.(models.Employee)

	var req comeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	employeeID := currentUser.Id
	if req.EmployeeId != nil {
		employeeID = *req.EmployeeId
	}

	now := time.Now()
	absentAt := req.AbsentAt
	if absentAt == "" {
		absentAt = now.Format(dateLayout)
	}

	var row models.ProjectAbsent
	err := models.DB.
		Where("project_id = ? AND employee_id = ? AND absent_at = ?", req.ProjectId, employeeID, absentAt).
		First(&row).Error
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Absensi Belum Dibuka Untuk Tanggal Tersebut"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if row.ComeAt != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Sudah Melakukan Check-In Hari Ini"})
		return
	}

	cfg := helper.LoadSettings()
	comeAt := now.Format(timeLayout)
	row.Absent = models.AbsentPresent
	row.ComeAt = &comeAt
	row.ReplacedEmployeeId = req.ReplacedEmployeeId
	if req.Note != "" {
		row.Note = req.Note
	}

	nowMinutes := now.Hour()*60 + now.Minute()
	startMinutes := helper.TimeToMinutes(cfg.StartTime)
	if nowMinutes > startMinutes+cfg.LateTreshold {
		row.LateDuration = nowMinutes - startMinutes
		row.LatePrice = float64(row.LateDuration) * cfg.LatePricePerMinute
	}

	if err := models.DB.Save(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Check-In Berhasil", "absent": row})
}

type closeRequest struct {
	ProjectId  int64  `json:"project_id" binding:"required"`
	EmployeeId *int64 `json:"employee_id"`
	AbsentAt   string `json:"absent_at"`
}

// PUT /v1/mobile/absent/close — check-out, durasi kerja dalam menit.
func AddCloseHandler(c *gin.Context) {
	userData, _ := c.Get("currentUser")
	currentUser := userData.(models.Employee)

	var req closeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	employeeID := currentUser.Id
	if req.EmployeeId != nil {
		employeeID = *req.EmployeeId
	}

	now := time.Now()
	absentAt := req.AbsentAt
	if absentAt == "" {
		absentAt = now.Format(dateLayout)
	}

	var row models.ProjectAbsent
	err := models.DB.
		Where("project_id = ? AND employee_id = ? AND absent_at = ?", req.ProjectId, employeeID, absentAt).
		First(&row).Error
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Absensi Tidak Ditemukan"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if row.ComeAt == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Belum Melakukan Check-In"})
		return
	}

	closeAt := now.Format(timeLayout)
	row.CloseAt = &closeAt
	row.Duration = helper.TimeToMinutes(closeAt) - helper.TimeToMinutes(*row.ComeAt)
	if row.Duration < 0 {
		row.Duration += 24 * 60
	}

	if err := models.DB.Save(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Check-Out Berhasil", "absent": row})
}

// GET /v1/mobile/absent — absensi tim hari ini.
func TodayHandler(c *gin.Context) {
	userData, _ := c.Get("currentUser")
	currentUser := userData.(models.Employee)

	today := time.Now().Format(dateLayout)
	query := models.DB.Preload("Employee").Where("absent_at = ?", today)

	if currentUser.IsMandor() {
		memberIDs, err := helper.TeamMemberIDs(models.DB, queryProjectID(c), currentUser.Id)
		if err == nil && len(memberIDs) > 0 {
			query = query.Where("employee_id IN ?", memberIDs)
		} else {
			query = query.Where("employee_id = ?", currentUser.Id)
		}
	} else {
		query = query.Where("employee_id = ?", currentUser.Id)
	}

	var rows []models.ProjectAbsent
	if err := query.Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"absents": rows})
}

// GET /v1/mobile/absent/predict-close — perkiraan jam pulang dari histori.
func PredictCloseHandler(c *gin.Context) {
	userData, _ := c.Get("currentUser")
	currentUser := userData.(models.Employee)

	comeAt := c.Query("come_at")
	if comeAt == "" {
		comeAt = time.Now().Format("15:04")
	}

	history, err := helper.GetTrainingDataForEmployee(currentUser.Id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	predicted, err := helper.PredictCloseTime(history, comeAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Histori Belum Cukup Untuk Prediksi"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"predicted_close": predicted})
}

func queryProjectID(c *gin.Context) int64 {
	userData, _ := c.Get("currentWorker")
	if worker, ok := userData.(models.ProjectWorker); ok {
		return worker.ProjectId
	}
	return 0
}
