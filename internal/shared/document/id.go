package document

import (
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"hrms-portal/internal/shared/apperror"
)

// ID adalah identifier dokumen. Bentuk native-nya ObjectID milik store,
// bentuk transport-nya string hex. Konversi dua arah hanya lewat tipe ini.
type ID struct {
	oid primitive.ObjectID
}

var ErrInvalidID = apperror.New(
	apperror.CodeInvalidInput,
	"Invalid id format",
	http.StatusBadRequest,
)

// ParseID memvalidasi representasi string dari identifier.
func ParseID(s string) (ID, error) {
	oid, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return ID{}, ErrInvalidID
	}
	return ID{oid: oid}, nil
}

func NewID() ID {
	return ID{oid: primitive.NewObjectID()}
}

func FromObjectID(oid primitive.ObjectID) ID {
	return ID{oid: oid}
}

// Hex mengembalikan bentuk string untuk transport.
func (id ID) Hex() string {
	return id.oid.Hex()
}

// ObjectID mengembalikan bentuk native untuk filter store.
func (id ID) ObjectID() primitive.ObjectID {
	return id.oid
}

func (id ID) IsZero() bool {
	return id.oid.IsZero()
}
