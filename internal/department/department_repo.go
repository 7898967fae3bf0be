package department

import (
	"context"

	"hrms-portal/internal/shared/document"
)

//go:generate mockgen -source=department_repo.go -destination=mock/department_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, dept *Department) (document.ID, error)
	FindAll(ctx context.Context, filter document.Filter, limit int64) ([]Department, error)
}

type repository struct {
	store document.Store
}

func NewRepository(store document.Store) Repository {
	return &repository{store: store}
}

func (r *repository) Create(ctx context.Context, dept *Department) (document.ID, error) {
	return r.store.Insert(ctx, Collection, dept)
}

func (r *repository) FindAll(ctx context.Context, filter document.Filter, limit int64) ([]Department, error) {
	var depts []Department
	err := r.store.Find(ctx, Collection, filter, limit, &depts)
	return depts, err
}
