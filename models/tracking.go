package models

import "time"

// Tracking adalah log ping lokasi, append-only.
type Tracking struct {
	Id               int64     `gorm:"primaryKey" json:"id"`
	EmployeeId       int64     `gorm:"type:bigint" json:"employee_id"`
	ProjectId        *int64    `gorm:"type:bigint" json:"project_id"`
	CenterLocationId *int64    `gorm:"type:bigint" json:"center_location_id"`
	Latitude         float64   `gorm:"type:double" json:"latitude"`
	Longitude        float64   `gorm:"type:double" json:"longitude"`
	CreatedAt        time.Time `gorm:"type:timestamp" json:"created_at"`
}

func (Tracking) TableName() string {
	return "trackings"
}
