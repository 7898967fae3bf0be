package leave

import (
	"context"
	"time"

	"hrms-portal/internal/shared/document"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, lr *LeaveRequest) (document.ID, error)
	FindAll(ctx context.Context, filter document.Filter, limit int64) ([]LeaveRequest, error)

	// UpdateStatus mengubah status satu pengajuan cuti secara atomik.
	// Mengembalikan jumlah dokumen yang match (0 jika id tidak ada).
	UpdateStatus(ctx context.Context, id document.ID, status string, updatedAt time.Time) (int64, error)
}

type repository struct {
	store document.Store
}

func NewRepository(store document.Store) Repository {
	return &repository{store: store}
}

func (r *repository) Create(ctx context.Context, lr *LeaveRequest) (document.ID, error) {
	return r.store.Insert(ctx, Collection, lr)
}

func (r *repository) FindAll(ctx context.Context, filter document.Filter, limit int64) ([]LeaveRequest, error) {
	var leaves []LeaveRequest
	err := r.store.Find(ctx, Collection, filter, limit, &leaves)
	return leaves, err
}

func (r *repository) UpdateStatus(ctx context.Context, id document.ID, status string, updatedAt time.Time) (int64, error) {
	return r.store.UpdateOne(
		ctx,
		Collection,
		document.Filter{"_id": id.ObjectID()},
		document.Filter{"status": status, "updated_at": updatedAt},
	)
}
