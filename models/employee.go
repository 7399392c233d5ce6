package models

import "time"

const (
	RolePM     = "PM"
	RolePCC    = "PCC"
	RolePC     = "PC"
	RoleQS     = "QS"
	RoleQCC    = "QCC"
	RoleQC     = "QC"
	RoleSUP    = "SUP"
	RoleSPV    = "SPV"
	RoleMandor = "MANDOR"
	RoleStaff  = "STAFF"
	RoleWorker = "WORKER"
	RoleAdmin  = "ADMIN"
	RoleOwner  = "OWNER"
)

type Employee struct {
	Id          int64     `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255)" json:"name"`
	CardID      string    `gorm:"type:varchar(100)" json:"card_id"`
	Phone       string    `gorm:"type:varchar(30)" json:"phone"`
	Email       string    `gorm:"type:varchar(255)" json:"email"`
	Role        string    `gorm:"type:varchar(20)" json:"role"`
	ParentId    *int64    `gorm:"type:bigint" json:"parent_id"`
	HourlyPrice float64   `gorm:"type:decimal(12,2)" json:"hourly_price"`
	Status      string    `gorm:"type:varchar(20);default:ACTIVE" json:"status"`
	IsDeleted   int8      `gorm:"type:tinyint" json:"is_deleted"`
	CreatedAt   time.Time `gorm:"type:timestamp" json:"created_at"`
	UpdatedAt   time.Time `gorm:"type:timestamp" json:"updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}

// IsMandor menandakan karyawan pemimpin tim yang butuh persetujuan lembur.
func (e Employee) IsMandor() bool {
	return e.Role == RoleMandor
}
