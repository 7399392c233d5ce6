package overtime

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/goldDdev/api-dhj-sub000/helper"
	"github.com/goldDdev/api-dhj-sub000/models"

	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// Satu-satunya tempat aturan lembur dievaluasi. Handler mobile dan web
// sama-sama memanggil fungsi di file ini.

type CreateInput struct {
	ProjectId int64
	AbsentAt  string
	Duration  int
	ComeAt    string
	Note      string
}

func CreateRequest(actor models.Employee, in CreateInput, cfg helper.Settings, now time.Time) (*models.RequestOvertime, error) {
	if in.Duration <= 0 {
		return nil, helper.ErrValidation("Durasi lembur harus lebih dari 0 menit")
	}
	if in.ProjectId == 0 {
		return nil, helper.ErrValidation("Proyek wajib diisi")
	}

	absentAt := in.AbsentAt
	if absentAt == "" {
		absentAt = now.Format(dateLayout)
	}

	var existing models.RequestOvertime
	err := models.DB.
		Where("employee_id = ? AND project_id = ? AND absent_at = ? AND status = ?",
			actor.Id, in.ProjectId, absentAt, models.OvertimePending).
		First(&existing).Error
	if err == nil {
		return nil, helper.ErrConflict("Masih Ada Pengajuan Lembur Yang Belum Diproses!")
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	var absent models.ProjectAbsent
	err = models.DB.
		Where("employee_id = ? AND project_id = ? AND absent_at = ? AND absent = ?",
			actor.Id, in.ProjectId, absentAt, models.AbsentPresent).
		First(&absent).Error
	if err == gorm.ErrRecordNotFound {
		return nil, helper.ErrValidation("Belum Tercatat Hadir Pada Tanggal Tersebut!")
	}
	if err != nil {
		return nil, err
	}

	var existingLedger int64
	if err := models.DB.Model(&models.AdditionalHour{}).
		Where("employee_id = ? AND absent_at = ?", actor.Id, absentAt).
		Count(&existingLedger).Error; err != nil {
		return nil, err
	}
	if existingLedger > 0 {
		return nil, helper.ErrConflict("Sudah Ada Lembur Tercatat Pada Tanggal Tersebut!")
	}

	comeAt := in.ComeAt
	if comeAt == "" {
		comeAt = cfg.CloseTime
	}
	closeMinutes := helper.TimeToMinutes(comeAt) + in.Duration
	if closeMinutes >= 24*60 {
		return nil, helper.ErrValidation("Jadwal Lembur Tidak Boleh Melewati Tengah Malam")
	}
	closeAt := helper.MinutesToTime(closeMinutes)

	price := cfg.OvertimePricePerHour
	totalEarn := math.Round(price/60) * float64(in.Duration)

	request := models.RequestOvertime{
		EmployeeId:       actor.Id,
		ProjectId:        in.ProjectId,
		AbsentAt:         absentAt,
		ComeAt:           comeAt,
		CloseAt:          closeAt,
		OvertimePrice:    price,
		OvertimeDuration: in.Duration,
		TotalEarn:        totalEarn,
		Note:             in.Note,
		RequestedBy:      actor.Id,
	}

	// Mandor mengajukan lembur tim dan menunggu persetujuan,
	// pekerja biasa langsung CONFIRM untuk dirinya sendiri.
	if actor.IsMandor() {
		request.Type = models.OvertimeTeam
		request.Status = models.OvertimePending
		request.ConfirmStatus = models.OvertimePending

		if err := models.DB.Create(&request).Error; err != nil {
			return nil, err
		}
		return &request, nil
	}

	request.Type = models.OvertimePersonal
	request.Status = models.OvertimeConfirm
	request.ConfirmStatus = models.OvertimeConfirm
	request.ActionedBy = &actor.Id

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&request).Error; err != nil {
			return err
		}
		ledger := ledgerFromRequest(request, actor.Id)
		return tx.Create(&ledger).Error
	})
	if err != nil {
		// pengajuan yang balapan bisa lolos dari pengecekan awal,
		// indeks unik (employee_id, absent_at) yang menahannya
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, helper.ErrConflict("Sudah Ada Lembur Tercatat Pada Tanggal Tersebut!")
		}
		return nil, err
	}

	return &request, nil
}

func UpdateStatus(requestID int64, newStatus string, actor models.Employee) (*models.RequestOvertime, error) {
	if newStatus != models.OvertimeConfirm && newStatus != models.OvertimeReject {
		return nil, helper.ErrValidation("Status Tidak Dikenal!")
	}

	var request models.RequestOvertime
	if err := models.DB.First(&request, requestID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, helper.ErrNotFound("Pengajuan Lembur Tidak Ditemukan!")
		}
		return nil, err
	}
	if request.IsResolved() {
		return nil, helper.ErrState("Pengajuan Lembur Sudah Diproses!")
	}

	err := models.DB.Transaction(func(tx *gorm.DB) error {
		request.Status = newStatus
		request.ConfirmStatus = newStatus
		request.ActionedBy = &actor.Id
		if err := tx.Save(&request).Error; err != nil {
			return err
		}

		if newStatus != models.OvertimeConfirm || request.Type != models.OvertimeTeam {
			return nil
		}

		memberIDs, err := helper.TeamMemberIDs(tx, request.ProjectId, request.EmployeeId)
		if err != nil {
			return err
		}
		if len(memberIDs) == 0 {
			return nil
		}

		var presents []models.ProjectAbsent
		err = tx.Where("project_id = ? AND absent_at = ? AND absent = ? AND employee_id IN ?",
			request.ProjectId, request.AbsentAt, models.AbsentPresent, memberIDs).
			Find(&presents).Error
		if err != nil {
			return err
		}

		for _, present := range presents {
			// anggota yang sudah punya lembur personal tanggal itu dilewati,
			// satu baris ledger per (karyawan, tanggal)
			var existing int64
			err := tx.Model(&models.AdditionalHour{}).
				Where("employee_id = ? AND absent_at = ?", present.EmployeeId, request.AbsentAt).
				Count(&existing).Error
			if err != nil {
				return err
			}
			if existing > 0 {
				continue
			}

			ledger := ledgerFromRequest(request, actor.Id)
			ledger.EmployeeId = present.EmployeeId
			if err := tx.Create(&ledger).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	notifyRequester(request, newStatus)

	return &request, nil
}

func Destroy(requestID int64) error {
	var request models.RequestOvertime
	if err := models.DB.First(&request, requestID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.ErrNotFound("Pengajuan Lembur Tidak Ditemukan!")
		}
		return err
	}
	if request.IsResolved() {
		return helper.ErrState("Pengajuan Lembur Sudah Diproses!")
	}

	return models.DB.Delete(&request).Error
}

func ledgerFromRequest(request models.RequestOvertime, actionBy int64) models.AdditionalHour {
	return models.AdditionalHour{
		EmployeeId:       request.EmployeeId,
		ProjectId:        request.ProjectId,
		AbsentAt:         request.AbsentAt,
		ComeAt:           request.ComeAt,
		CloseAt:          request.CloseAt,
		OvertimePrice:    request.OvertimePrice,
		OvertimeDuration: request.OvertimeDuration,
		TotalEarn:        request.TotalEarn,
		RequestId:        &request.Id,
		ActionBy:         &actionBy,
	}
}

func notifyRequester(request models.RequestOvertime, newStatus string) {
	var employee models.Employee
	if err := models.DB.First(&employee, request.EmployeeId).Error; err != nil {
		return
	}

	subject := "Pengajuan Lembur " + request.AbsentAt
	body := fmt.Sprintf("Pengajuan lembur Anda tanggal %s (%s - %s) telah %s.",
		request.AbsentAt, request.ComeAt, request.CloseAt, newStatus)
	helper.SendMail(employee.Email, subject, body)
}
