package models

const (
	SettingRadius               = "RADIUS"
	SettingStartTime            = "START_TIME"
	SettingCloseTime            = "CLOSE_TIME"
	SettingOvertimePricePerHour = "OVERTIME_PRICE_PER_HOUR"
	SettingLatePricePerMinute   = "LATETIME_PRICE_PER_MINUTE"
	SettingLateTreshold         = "LATE_TRESHOLD"
)

type Setting struct {
	Id          int64  `gorm:"primaryKey" json:"id"`
	Code        string `gorm:"type:varchar(100);uniqueIndex" json:"code"`
	Value       string `gorm:"type:varchar(255)" json:"value"`
	Description string `gorm:"type:varchar(255)" json:"description"`
	UpdatedBy   int64  `gorm:"type:bigint" json:"updated_by"`
	CreatedAt   string `gorm:"type:timestamp" json:"created_at"`
	UpdatedAt   string `gorm:"type:timestamp" json:"updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}
