package models

import "time"

type Project struct {
	Id        int64     `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255)" json:"name"`
	Company   string    `gorm:"type:varchar(255)" json:"company"`
	Location  string    `gorm:"type:varchar(255)" json:"location"`
	Latitude  float64   `gorm:"type:double" json:"latitude"`
	Longitude float64   `gorm:"type:double" json:"longitude"`
	Status    string    `gorm:"type:varchar(20);default:PROGRESS" json:"status"`
	StartAt   string    `gorm:"type:date" json:"start_at"`
	FinishAt  string    `gorm:"type:date" json:"finish_at"`
	IsDeleted int8      `gorm:"type:tinyint" json:"is_deleted"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp" json:"updated_at"`
}

func (Project) TableName() string {
	return "projects"
}
