package models

import "time"

const (
	OvertimePending = "PENDING"
	OvertimeConfirm = "CONFIRM"
	OvertimeReject  = "REJECT"

	OvertimePersonal = "PERSONAL"
	OvertimeTeam     = "TEAM"
)

type RequestOvertime struct {
	Id               int64     `gorm:"primaryKey" json:"id"`
	EmployeeId       int64     `gorm:"type:bigint" json:"employee_id"`
	ProjectId        int64     `gorm:"type:bigint" json:"project_id"`
	AbsentAt         string    `gorm:"type:date" json:"absent_at"`
	ComeAt           string    `gorm:"type:varchar(5)" json:"come_at"`
	CloseAt          string    `gorm:"type:varchar(5)" json:"close_at"`
	Type             string    `gorm:"type:varchar(10)" json:"type"`
	Status           string    `gorm:"type:varchar(10);default:PENDING" json:"status"`
	ConfirmStatus    string    `gorm:"type:varchar(10);default:PENDING" json:"confirm_status"`
	OvertimePrice    float64   `gorm:"type:decimal(12,2)" json:"overtime_price"`
	OvertimeDuration int       `gorm:"type:int" json:"overtime_duration"`
	TotalEarn        float64   `gorm:"type:decimal(12,2)" json:"total_earn"`
	Note             string    `gorm:"type:varchar(255)" json:"note"`
	RequestedBy      int64     `gorm:"type:bigint" json:"requested_by"`
	ActionedBy       *int64    `gorm:"type:bigint" json:"actioned_by"`
	CreatedAt        time.Time `gorm:"type:timestamp" json:"created_at"`
	UpdatedAt        time.Time `gorm:"type:timestamp" json:"updated_at"`

	Employee Employee `gorm:"foreignKey:EmployeeId"`
	Project  Project  `gorm:"foreignKey:ProjectId"`
}

func (RequestOvertime) TableName() string {
	return "request_overtimes"
}

// IsResolved berarti status sudah final, tidak boleh diubah lagi.
func (r RequestOvertime) IsResolved() bool {
	return r.Status != OvertimePending
}
