package overtime

import (
	"testing"
	"time"

	"github.com/goldDdev/api-dhj-sub000/models"

	"github.com/stretchr/testify/assert"
)

func seedConfirmedOvertime(t *testing.T, employee models.Employee) models.AdditionalHour {
	t.Helper()
	request := models.RequestOvertime{
		EmployeeId:       employee.Id,
		ProjectId:        1,
		AbsentAt:         "2026-08-28",
		ComeAt:           "17:00",
		CloseAt:          "19:00",
		Type:             models.OvertimeTeam,
		Status:           models.OvertimeConfirm,
		ConfirmStatus:    models.OvertimeConfirm,
		OvertimePrice:    60000,
		OvertimeDuration: 120,
		TotalEarn:        120000,
		RequestedBy:      employee.Id,
	}
	assert.NoError(t, models.DB.Create(&request).Error)

	ledger := ledgerFromRequest(request, employee.Id)
	assert.NoError(t, models.DB.Create(&ledger).Error)
	return ledger
}

func TestCloseOnExitIdempotent(t *testing.T) {
	setupDB(t)
	mandor := seedEmployee(t, "joko", models.RoleMandor)
	ledger := seedConfirmedOvertime(t, mandor)

	now := time.Date(2026, 8, 28, 18, 30, 0, 0, time.Local)
	assert.NoError(t, CloseOnExit(mandor, 1, now))

	var closed models.AdditionalHour
	assert.NoError(t, models.DB.First(&closed, ledger.Id).Error)
	assert.NotNil(t, closed.ActualClose)
	assert.Equal(t, 30, *closed.ActualDuration)
	// round(60000/60) * 30
	assert.Equal(t, 30000.0, closed.TotalEarn)

	firstClose := *closed.ActualClose

	// ping kedua pada kondisi yang sama harus jadi no-op
	later := now.Add(10 * time.Minute)
	assert.NoError(t, CloseOnExit(mandor, 1, later))

	var again models.AdditionalHour
	assert.NoError(t, models.DB.First(&again, ledger.Id).Error)
	assert.Equal(t, firstClose.Unix(), again.ActualClose.Unix())
	assert.Equal(t, 30, *again.ActualDuration)
	assert.Equal(t, 30000.0, again.TotalEarn)
}

func TestCloseOnExitOutsideWindow(t *testing.T) {
	setupDB(t)
	mandor := seedEmployee(t, "joko", models.RoleMandor)
	ledger := seedConfirmedOvertime(t, mandor)

	before := time.Date(2026, 8, 28, 16, 0, 0, 0, time.Local)
	assert.NoError(t, CloseOnExit(mandor, 1, before))

	var row models.AdditionalHour
	assert.NoError(t, models.DB.First(&row, ledger.Id).Error)
	assert.Nil(t, row.ActualClose)
}

func TestCloseOnExitWithoutConfirmedRequest(t *testing.T) {
	setupDB(t)
	mandor := seedEmployee(t, "joko", models.RoleMandor)

	now := time.Date(2026, 8, 28, 18, 0, 0, 0, time.Local)
	assert.NoError(t, CloseOnExit(mandor, 1, now))

	var count int64
	models.DB.Model(&models.AdditionalHour{}).Count(&count)
	assert.Equal(t, int64(0), count)
}
