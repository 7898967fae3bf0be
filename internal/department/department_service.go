package department

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"hrms-portal/internal/shared/document"
)

const (
	cacheKey = "departments:all"
	cacheTTL = 30 * time.Minute
)

//go:generate mockgen -source=department_service.go -destination=mock/department_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateDepartmentRequest) (string, error)
	GetAll(ctx context.Context, limit int64) ([]DepartmentResponse, error)
}

type service struct {
	repo Repository
	rdb  *redis.Client
}

// NewService menerima rdb nil jika cache dimatikan.
func NewService(repo Repository, rdb *redis.Client) Service {
	return &service{repo: repo, rdb: rdb}
}

func (s *service) Create(ctx context.Context, req CreateDepartmentRequest) (string, error) {
	dept := &Department{
		Name:        req.Name,
		Description: req.Description,
	}

	id, err := s.repo.Create(ctx, dept)
	if err != nil {
		return "", err
	}

	s.invalidateCache(ctx)

	return id.Hex(), nil
}

func (s *service) GetAll(ctx context.Context, limit int64) ([]DepartmentResponse, error) {
	// Cache hanya untuk query default tanpa filter
	cacheable := s.rdb != nil && limit == DefaultListLimit

	if cacheable {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []DepartmentResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	depts, err := s.repo.FindAll(ctx, document.Filter{}, limit)
	if err != nil {
		return nil, err
	}

	resp := mapToListResponse(depts)

	if cacheable {
		if payload, err := json.Marshal(resp); err == nil {
			if err := s.rdb.Set(ctx, cacheKey, payload, cacheTTL).Err(); err != nil {
				zap.L().Warn("department cache set failed", zap.Error(err))
			}
		}
	}

	return resp, nil
}

func (s *service) invalidateCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		zap.L().Warn("department cache invalidation failed", zap.Error(err))
	}
}

func mapToResponse(dept Department) DepartmentResponse {
	return DepartmentResponse{
		ID:          document.FromObjectID(dept.ID).Hex(),
		Name:        dept.Name,
		Description: dept.Description,
	}
}

func mapToListResponse(depts []Department) []DepartmentResponse {
	res := make([]DepartmentResponse, len(depts))
	for i, d := range depts {
		res[i] = mapToResponse(d)
	}
	return res
}
