package models

import "time"

type AdditionalHour struct {
	Id               int64      `gorm:"primaryKey" json:"id"`
	EmployeeId       int64      `gorm:"type:bigint;uniqueIndex:uniq_additional_hour" json:"employee_id"`
	ProjectId        int64      `gorm:"type:bigint" json:"project_id"`
	AbsentAt         string     `gorm:"type:date;uniqueIndex:uniq_additional_hour" json:"absent_at"`
	ComeAt           string     `gorm:"type:varchar(5)" json:"come_at"`
	CloseAt          string     `gorm:"type:varchar(5)" json:"close_at"`
	ActualClose      *time.Time `gorm:"type:timestamp" json:"actual_close"`
	ActualDuration   *int       `gorm:"type:int" json:"actual_duration"`
	OvertimePrice    float64    `gorm:"type:decimal(12,2)" json:"overtime_price"`
	OvertimeDuration int        `gorm:"type:int" json:"overtime_duration"`
	TotalEarn        float64    `gorm:"type:decimal(12,2)" json:"total_earn"`
	RequestId        *int64     `gorm:"type:bigint" json:"request_id"`
	ActionBy         *int64     `gorm:"type:bigint" json:"action_by"`
	CreatedAt        time.Time  `gorm:"type:timestamp" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"type:timestamp" json:"updated_at"`

	Employee Employee `gorm:"foreignKey:EmployeeId"`
}

func (AdditionalHour) TableName() string {
	return "additional_hours"
}
