package domain

import "time"

// OffDay marca a folga de uma colaboradora em um dia
type OffDay struct {
	ID         string    `json:"id"`
	StoreID    string    `json:"store_id"`
	EmployeeID string    `json:"employee_id"`
	Date       time.Time `json:"date"`
	CreatedAt  time.Time `json:"created_at"`
}

type ScheduleOffDayRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"` // Formato YYYY-MM-DD
}
