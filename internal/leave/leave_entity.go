package leave

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const Collection = "leaverequest"

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"

	TypeAnnual = "annual"
)

type LeaveRequest struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	EmployeeID string             `bson:"employee_id"`
	StartDate  string             `bson:"start_date"`
	EndDate    string             `bson:"end_date"`
	LeaveType  string             `bson:"leave_type"`
	Reason     string             `bson:"reason,omitempty"`
	Status     string             `bson:"status"`
	UpdatedAt  *time.Time         `bson:"updated_at,omitempty"`
}
