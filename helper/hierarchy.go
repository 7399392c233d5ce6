package helper

import (
	"gorm.io/gorm"

	"github.com/goldDdev/api-dhj-sub000/models"
)

// TeamMemberIDs mengembalikan id anggota tim seorang mandor di satu proyek:
// pekerja ber-parent_id mandor tersebut, termasuk mandornya sendiri.
// db boleh berupa koneksi biasa atau transaksi yang sedang berjalan.
func TeamMemberIDs(db *gorm.DB, projectID, leadEmployeeID int64) ([]int64, error) {
	var workers []models.ProjectWorker
	err := db.
		Where("project_id = ? AND status = ?", projectID, "ACTIVE").
		Where("parent_id = ? OR employee_id = ?", leadEmployeeID, leadEmployeeID).
		Find(&workers).Error
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(workers))
	for _, w := range workers {
		ids = append(ids, w.EmployeeId)
	}
	return ids, nil
}
