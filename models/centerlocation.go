package models

type CenterLocation struct {
	Id          int64   `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"type:varchar(255)" json:"name"`
	Description string  `gorm:"type:varchar(255)" json:"description"`
	Latitude    float64 `gorm:"type:double" json:"latitude"`
	Longitude   float64 `gorm:"type:double" json:"longitude"`
	IsDeleted   int8    `gorm:"type:tinyint" json:"is_deleted"`
	CreatedAt   string  `gorm:"type:timestamp" json:"created_at"`
	UpdatedAt   string  `gorm:"type:timestamp" json:"updated_at"`
}

func (CenterLocation) TableName() string {
	return "center_locations"
}
