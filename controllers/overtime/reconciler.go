package overtime

import (
	"math"
	"time"

	"github.com/goldDdev/api-dhj-sub000/helper"
	"github.com/goldDdev/api-dhj-sub000/models"

	"gorm.io/gorm"
)

// CloseOnExit menutup lembur berjalan saat pekerja terdeteksi keluar radius
// proyek. Ping kedua dengan kondisi sama jadi no-op karena actual_close
// sudah terisi.
func CloseOnExit(employee models.Employee, projectID int64, now time.Time) error {
	today := now.Format(dateLayout)

	var request models.RequestOvertime
	err := models.DB.
		Where("employee_id = ? AND project_id = ? AND absent_at = ? AND status = ? AND confirm_status = ?",
			employee.Id, projectID, today, models.OvertimeConfirm, models.OvertimeConfirm).
		First(&request).Error
	if err == gorm.ErrRecordNotFound {
		return nil
	}
	if err != nil {
		return err
	}

	nowMinutes := now.Hour()*60 + now.Minute()
	comeMinutes := helper.TimeToMinutes(request.ComeAt)
	closeMinutes := helper.TimeToMinutes(request.CloseAt)
	if nowMinutes < comeMinutes || nowMinutes > closeMinutes {
		return nil
	}

	var ledger models.AdditionalHour
	err = models.DB.
		Where("employee_id = ? AND project_id = ? AND absent_at = ? AND actual_close IS NULL",
			employee.Id, projectID, today).
		First(&ledger).Error
	if err == gorm.ErrRecordNotFound {
		return nil
	}
	if err != nil {
		return err
	}

	scheduledClose := time.Date(now.Year(), now.Month(), now.Day(),
		closeMinutes/60, closeMinutes%60, 0, 0, now.Location())
	actualDuration := int(math.Round(math.Abs(now.Sub(scheduledClose).Minutes())))
	totalEarn := math.Round(ledger.OvertimePrice/60) * float64(actualDuration)

	// Predikat actual_close IS NULL diulang di UPDATE supaya ping yang
	// balapan tidak menimpa penutupan pertama.
	return models.DB.Model(&models.AdditionalHour{}).
		Where("id = ? AND actual_close IS NULL", ledger.Id).
		Updates(map[string]interface{}{
			"actual_close":    now,
			"actual_duration": actualDuration,
			"total_earn":      totalEarn,
		}).Error
}
