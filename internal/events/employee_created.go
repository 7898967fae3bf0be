package events

import "time"

const EmployeeCreatedTopic = "hr.employee.lifecycle.v1"

type EmployeeCreatedEvent struct {
	EventType    string    `json:"event_type"`
	EmployeeID   string    `json:"employee_id"`
	Email        string    `json:"email"`
	DepartmentID string    `json:"department_id,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}
