package employee

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const Collection = "employee"

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Employee struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	FirstName    string             `bson:"first_name"`
	LastName     string             `bson:"last_name"`
	Email        string             `bson:"email"`
	DepartmentID string             `bson:"department_id,omitempty"`
	Role         string             `bson:"role,omitempty"`
	HireDate     string             `bson:"hire_date,omitempty"`
	Salary       *float64           `bson:"salary,omitempty"`
	Status       string             `bson:"status"`
}
