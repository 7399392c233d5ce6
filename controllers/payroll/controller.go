package payrollcontroller

import (
	"fmt"
	"net/http"

	"github.com/goldDdev/api-dhj-sub000/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// Rekap gaji per karyawan dalam satu bulan: kehadiran dan denda telat dari
// project_absents, upah lembur dari additional_hours.
func buildRecap(projectID, month string) ([]models.PayrollRecap, error) {
	var absents []models.ProjectAbsent
	query := models.DB.Preload("Employee").Where("absent_at LIKE ?", month+"%")
	if projectID != "" {
		query = query.Where("project_id = ?", projectID)
	}
	if err := query.Find(&absents).Error; err != nil {
		return nil, err
	}

	recapByEmployee := map[int64]*models.PayrollRecap{}
	order := []int64{}

	for _, absent := range absents {
		recap, ok := recapByEmployee[absent.EmployeeId]
		if !ok {
			recap = &models.PayrollRecap{
				EmployeeId:   absent.EmployeeId,
				EmployeeName: absent.Employee.Name,
				Role:         absent.Employee.Role,
			}
			recapByEmployee[absent.EmployeeId] = recap
			order = append(order, absent.EmployeeId)
		}

		if absent.Absent == models.AbsentPresent {
			recap.DaysPresent++
		} else {
			recap.DaysAbsent++
		}
		recap.WorkMinutes += absent.Duration
		recap.LateMinutes += absent.LateDuration
		recap.LatePrice += absent.LatePrice
	}

	var hours []models.AdditionalHour
	hourQuery := models.DB.Where("absent_at LIKE ?", month+"%")
	if projectID != "" {
		hourQuery = hourQuery.Where("project_id = ?", projectID)
	}
	if err := hourQuery.Find(&hours).Error; err != nil {
		return nil, err
	}

	for _, hour := range hours {
		if recap, ok := recapByEmployee[hour.EmployeeId]; ok {
			recap.OvertimeEarn += hour.TotalEarn
		}
	}

	recaps := make([]models.PayrollRecap, 0, len(order))
	for _, id := range order {
		recaps = append(recaps, *recapByEmployee[id])
	}
	return recaps, nil
}

// GET /v1/web/payroll?project_id=&month=2026-08
func RecapHandler(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parameter month Wajib Diisi (YYYY-MM)"})
		return
	}

	recaps, err := buildRecap(c.Query("project_id"), month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"month": month, "recaps": recaps})
}

// GET /v1/web/payroll/export — rekap yang sama dalam bentuk XLSX.
func ExportHandler(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parameter month Wajib Diisi (YYYY-MM)"})
		return
	}

	recaps, err := buildRecap(c.Query("project_id"), month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	file := excelize.NewFile()
	sheet := file.GetSheetName(0)

	headers := []string{"Nama", "Peran", "Hadir", "Absen", "Menit Kerja", "Menit Telat", "Denda Telat", "Upah Lembur"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		file.SetCellValue(sheet, cell, header)
	}

	for rowIdx, recap := range recaps {
		values := []interface{}{
			recap.EmployeeName, recap.Role, recap.DaysPresent, recap.DaysAbsent,
			recap.WorkMinutes, recap.LateMinutes, recap.LatePrice, recap.OvertimeEarn,
		}
		for colIdx, value := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			file.SetCellValue(sheet, cell, value)
		}
	}

	filename := fmt.Sprintf("payroll-%s.xlsx", month)
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := file.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal Menulis File Excel"})
	}
}
