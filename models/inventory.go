package models

import "time"

type Inventory struct {
	Id        int64  `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"type:varchar(255)" json:"name"`
	Unit      string `gorm:"type:varchar(50)" json:"unit"`
	Type      string `gorm:"type:varchar(20)" json:"type"`
	IsDeleted int8   `gorm:"type:tinyint" json:"is_deleted"`
	CreatedAt string `gorm:"type:timestamp" json:"created_at"`
	UpdatedAt string `gorm:"type:timestamp" json:"updated_at"`
}

func (Inventory) TableName() string {
	return "inventories"
}

type InventoryRequest struct {
	Id          int64     `gorm:"primaryKey" json:"id"`
	Number      string    `gorm:"type:varchar(50);uniqueIndex" json:"number"`
	ProjectId   int64     `gorm:"type:bigint" json:"project_id"`
	InventoryId int64     `gorm:"type:bigint" json:"inventory_id"`
	Qty         float64   `gorm:"type:decimal(12,2)" json:"qty"`
	Status      string    `gorm:"type:varchar(10);default:PENDING" json:"status"`
	Note        string    `gorm:"type:varchar(255)" json:"note"`
	RequestedBy int64     `gorm:"type:bigint" json:"requested_by"`
	ActionedBy  *int64    `gorm:"type:bigint" json:"actioned_by"`
	CreatedAt   time.Time `gorm:"type:timestamp" json:"created_at"`
	UpdatedAt   time.Time `gorm:"type:timestamp" json:"updated_at"`

	Inventory Inventory `gorm:"foreignKey:InventoryId"`
	Project   Project   `gorm:"foreignKey:ProjectId"`
}

func (InventoryRequest) TableName() string {
	return "inventory_requests"
}
