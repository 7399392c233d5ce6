package models

import "time"

type ProjectWorker struct {
	Id         int64     `gorm:"primaryKey" json:"id"`
	ProjectId  int64     `gorm:"type:bigint;uniqueIndex:uniq_project_worker" json:"project_id"`
	EmployeeId int64     `gorm:"type:bigint;uniqueIndex:uniq_project_worker" json:"employee_id"`
	ParentId   *int64    `gorm:"type:bigint" json:"parent_id"`
	Role       string    `gorm:"type:varchar(20)" json:"role"`
	Status     string    `gorm:"type:varchar(20);default:ACTIVE" json:"status"`
	JoinAt     string    `gorm:"type:date" json:"join_at"`
	CreatedAt  time.Time `gorm:"type:timestamp" json:"created_at"`
	UpdatedAt  time.Time `gorm:"type:timestamp" json:"updated_at"`

	Project  Project  `gorm:"foreignKey:ProjectId"`
	Employee Employee `gorm:"foreignKey:EmployeeId"`
}

func (ProjectWorker) TableName() string {
	return "project_workers"
}
