package attendance

import "time"

type CheckInRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
}

type ListAttendanceQuery struct {
	EmployeeID string
	Limit      int64
}

type AttendanceResponse struct {
	ID         string     `json:"_id"`
	EmployeeID string     `json:"employee_id"`
	Date       string     `json:"date"`
	CheckIn    time.Time  `json:"check_in"`
	CheckOut   *time.Time `json:"check_out,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
