package department

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const Collection = "department"

type Department struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
}
