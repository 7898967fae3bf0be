package employee

import (
	"context"

	"hrms-portal/internal/shared/document"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, emp *Employee) (document.ID, error)
	FindAll(ctx context.Context, filter document.Filter, limit int64) ([]Employee, error)
}

type repository struct {
	store document.Store
}

func NewRepository(store document.Store) Repository {
	return &repository{store: store}
}

func (r *repository) Create(ctx context.Context, emp *Employee) (document.ID, error) {
	return r.store.Insert(ctx, Collection, emp)
}

func (r *repository) FindAll(ctx context.Context, filter document.Filter, limit int64) ([]Employee, error) {
	var emps []Employee
	err := r.store.Find(ctx, Collection, filter, limit, &emps)
	return emps, err
}
