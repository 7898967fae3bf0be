package attendance

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const Collection = "attendance"

type Attendance struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	EmployeeID string             `bson:"employee_id"`
	Date       string             `bson:"date"`
	CheckIn    time.Time          `bson:"check_in"`
	CheckOut   *time.Time         `bson:"check_out,omitempty"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}
