package models

type Boq struct {
	Id        int64   `gorm:"primaryKey" json:"id"`
	Code      string  `gorm:"type:varchar(100)" json:"code"`
	Name      string  `gorm:"type:varchar(255)" json:"name"`
	Unit      string  `gorm:"type:varchar(50)" json:"unit"`
	Price     float64 `gorm:"type:decimal(14,2)" json:"price"`
	IsDeleted int8    `gorm:"type:tinyint" json:"is_deleted"`
	CreatedAt string  `gorm:"type:timestamp" json:"created_at"`
	UpdatedAt string  `gorm:"type:timestamp" json:"updated_at"`
}

func (Boq) TableName() string {
	return "boqs"
}
