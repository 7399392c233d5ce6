package models

import "time"

const (
	AbsentPresent = "P"
	AbsentAbsent  = "A"
	AbsentOther   = "O"
)

type ProjectAbsent struct {
	Id                 int64     `gorm:"primaryKey" json:"id"`
	ProjectId          int64     `gorm:"type:bigint;uniqueIndex:uniq_project_absent" json:"project_id"`
	EmployeeId         int64     `gorm:"type:bigint;uniqueIndex:uniq_project_absent" json:"employee_id"`
	AbsentAt           string    `gorm:"type:date;uniqueIndex:uniq_project_absent" json:"absent_at"`
	Absent             string    `gorm:"type:varchar(2)" json:"absent"`
	ComeAt             *string   `gorm:"type:time" json:"come_at"`
	CloseAt            *string   `gorm:"type:time" json:"close_at"`
	LateDuration       int       `gorm:"type:int" json:"late_duration"`
	LatePrice          float64   `gorm:"type:decimal(12,2)" json:"late_price"`
	Duration           int       `gorm:"type:int" json:"duration"`
	ReplacedEmployeeId *int64    `gorm:"type:bigint" json:"replaced_employee_id"`
	Note               string    `gorm:"type:varchar(255)" json:"note"`
	CreatedBy          int64     `gorm:"type:bigint" json:"created_by"`
	CreatedAt          time.Time `gorm:"type:timestamp" json:"created_at"`
	UpdatedAt          time.Time `gorm:"type:timestamp" json:"updated_at"`

	Employee Employee `gorm:"foreignKey:EmployeeId"`
}

func (ProjectAbsent) TableName() string {
	return "project_absents"
}
