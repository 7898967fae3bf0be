package leave

import "time"

type CreateLeaveRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	StartDate  string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate    string `json:"end_date" binding:"required,datetime=2006-01-02"`
	LeaveType  string `json:"leave_type" binding:"omitempty,oneof=annual sick unpaid other"`
	Reason     string `json:"reason"`
	Status     string `json:"status" binding:"omitempty,oneof=pending approved rejected"`
}

type LeaveActionRequest struct {
	Action string `json:"action" binding:"required"`
}

type ListLeavesQuery struct {
	EmployeeID string
	Status     string
	Limit      int64
}

type LeaveResponse struct {
	ID         string     `json:"_id"`
	EmployeeID string     `json:"employee_id"`
	StartDate  string     `json:"start_date"`
	EndDate    string     `json:"end_date"`
	LeaveType  string     `json:"leave_type"`
	Reason     string     `json:"reason,omitempty"`
	Status     string     `json:"status"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}
