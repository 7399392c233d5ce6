package models

type User struct {
	Id         int64  `gorm:"primaryKey" json:"id"`
	Username   string `gorm:"type:varchar(255);uniqueIndex" json:"username"`
	Email      string `gorm:"type:varchar(255)" json:"email"`
	Password   string `gorm:"type:varchar(255)" json:"-"`
	Role       string `gorm:"type:varchar(20)" json:"role"`
	EmployeeId int64  `gorm:"type:bigint" json:"employee_id"`
	IsDeleted  int8   `gorm:"type:tinyint" json:"is_deleted"`
	CreatedAt  string `gorm:"type:timestamp" json:"created_at"`
	UpdatedAt  string `gorm:"type:timestamp" json:"updated_at"`

	Employee Employee `gorm:"foreignKey:EmployeeId"`
}

func (User) TableName() string {
	return "users"
}
