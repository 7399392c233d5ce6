package helper

import (
	"testing"

	"github.com/goldDdev/api-dhj-sub000/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupHierarchyDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.ProjectWorker{}))
	models.DB = db
	return db
}

func TestTeamMemberIDs(t *testing.T) {
	db := setupHierarchyDB(t)

	var mandorID int64 = 10
	rows := []models.ProjectWorker{
		{ProjectId: 1, EmployeeId: mandorID, Status: "ACTIVE"},
		{ProjectId: 1, EmployeeId: 11, ParentId: &mandorID, Status: "ACTIVE"},
		{ProjectId: 1, EmployeeId: 12, ParentId: &mandorID, Status: "ACTIVE"},
		{ProjectId: 1, EmployeeId: 13, ParentId: &mandorID, Status: "INACTIVE"},
		{ProjectId: 2, EmployeeId: 14, ParentId: &mandorID, Status: "ACTIVE"},
	}
	for i := range rows {
		assert.NoError(t, db.Create(&rows[i]).Error)
	}

	ids, err := TeamMemberIDs(db, 1, mandorID)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []int64{10, 11, 12}, ids)
}

func TestTeamMemberIDsInsideTransaction(t *testing.T) {
	db := setupHierarchyDB(t)

	var mandorID int64 = 10
	assert.NoError(t, db.Create(&models.ProjectWorker{
		ProjectId: 1, EmployeeId: 11, ParentId: &mandorID, Status: "ACTIVE",
	}).Error)

	err := db.Transaction(func(tx *gorm.DB) error {
		ids, err := TeamMemberIDs(tx, 1, mandorID)
		assert.NoError(t, err)
		assert.Equal(t, []int64{11}, ids)
		return nil
	})
	assert.NoError(t, err)
}
