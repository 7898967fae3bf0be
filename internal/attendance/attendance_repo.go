package attendance

import (
	"context"
	"time"

	"hrms-portal/internal/shared/document"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, a *Attendance) (document.ID, error)
	FindAll(ctx context.Context, filter document.Filter, limit int64) ([]Attendance, error)

	// FindByEmployeeAndDate mengembalikan document.ErrNoDocuments
	// jika belum ada record untuk pasangan tersebut.
	FindByEmployeeAndDate(ctx context.Context, employeeID, date string) (*Attendance, error)

	// SetCheckOut mengisi check_out hanya jika belum pernah terisi.
	// Mengembalikan jumlah dokumen yang match (0 jika id tidak ada
	// atau sudah check-out).
	SetCheckOut(ctx context.Context, id document.ID, checkOut time.Time) (int64, error)
}

type repository struct {
	store document.Store
}

func NewRepository(store document.Store) Repository {
	return &repository{store: store}
}

func (r *repository) Create(ctx context.Context, a *Attendance) (document.ID, error) {
	return r.store.Insert(ctx, Collection, a)
}

func (r *repository) FindAll(ctx context.Context, filter document.Filter, limit int64) ([]Attendance, error) {
	var rows []Attendance
	err := r.store.Find(ctx, Collection, filter, limit, &rows)
	return rows, err
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, employeeID, date string) (*Attendance, error) {
	var a Attendance
	err := r.store.FindOne(ctx, Collection, document.Filter{
		"employee_id": employeeID,
		"date":        date,
	}, &a)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) SetCheckOut(ctx context.Context, id document.ID, checkOut time.Time) (int64, error) {
	return r.store.UpdateOne(
		ctx,
		Collection,
		document.Filter{
			"_id":       id.ObjectID(),
			"check_out": document.Filter{"$exists": false},
		},
		document.Filter{"check_out": checkOut, "updated_at": checkOut},
	)
}
