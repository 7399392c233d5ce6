package models

type Profile struct {
	Name        string `json:"name"`
	CardID      string `json:"card_id"`
	Role        string `json:"role"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	ProjectName string `json:"project_name"`
}

type PayrollRecap struct {
	EmployeeId   int64   `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Role         string  `json:"role"`
	DaysPresent  int     `json:"days_present"`
	DaysAbsent   int     `json:"days_absent"`
	WorkMinutes  int     `json:"work_minutes"`
	LateMinutes  int     `json:"late_minutes"`
	LatePrice    float64 `json:"late_price"`
	OvertimeEarn float64 `json:"overtime_earn"`
}
