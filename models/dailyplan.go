package models

import "time"

type DailyPlan struct {
	Id         int64      `gorm:"primaryKey" json:"id"`
	ProjectId  int64      `gorm:"type:bigint;uniqueIndex:uniq_daily_plan" json:"project_id"`
	EmployeeId int64      `gorm:"type:bigint;uniqueIndex:uniq_daily_plan" json:"employee_id"`
	PlanAt     string     `gorm:"type:date;uniqueIndex:uniq_daily_plan" json:"plan_at"`
	Note       string     `gorm:"type:varchar(255)" json:"note"`
	LocationAt *time.Time `gorm:"type:timestamp" json:"location_at"`
	Latitude   *float64   `gorm:"type:double" json:"latitude"`
	Longitude  *float64   `gorm:"type:double" json:"longitude"`
	CreatedBy  int64      `gorm:"type:bigint" json:"created_by"`
	CreatedAt  time.Time  `gorm:"type:timestamp" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"type:timestamp" json:"updated_at"`

	Project Project `gorm:"foreignKey:ProjectId"`
}

func (DailyPlan) TableName() string {
	return "daily_plans"
}
