package department_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"

	"hrms-portal/internal/department"
	departmentMock "hrms-portal/internal/department/mock"
	"hrms-portal/internal/shared/document"
)

type serviceDeps struct {
	service   department.Service
	repo      *departmentMock.MockRepository
	redisMock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	dbRedis, redisMock := redismock.NewClientMock()
	repo := departmentMock.NewMockRepository(ctrl)

	svc := department.NewService(repo, dbRedis)

	return &serviceDeps{
		service:   svc,
		repo:      repo,
		redisMock: redisMock,
	}
}

func TestDepartmentService_Create(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	t.Run("success - mengembalikan id string dan invalidasi cache", func(t *testing.T) {
		oid := primitive.NewObjectID()

		deps.repo.EXPECT().
			Create(ctx, &department.Department{Name: "HR", Description: "People ops"}).
			Return(document.FromObjectID(oid), nil).
			Times(1)

		deps.redisMock.ExpectDel("departments:all").SetVal(1)

		id, err := deps.service.Create(ctx, department.CreateDepartmentRequest{
			Name:        "HR",
			Description: "People ops",
		})

		assert.NoError(t, err)
		assert.Equal(t, oid.Hex(), id)
	})

	t.Run("repo error diteruskan tanpa invalidasi", func(t *testing.T) {
		deps.repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(document.ID{}, errors.New("insert failed")).
			Times(1)

		_, err := deps.service.Create(ctx, department.CreateDepartmentRequest{Name: "IT"})

		assert.Error(t, err)
	})
}

func TestDepartmentService_GetAll(t *testing.T) {
	ctx := context.Background()
	cacheKey := "departments:all"

	t.Run("cache hit - repo tidak dipanggil", func(t *testing.T) {
		deps := setupServiceTest(t)

		expected := []department.DepartmentResponse{
			{ID: primitive.NewObjectID().Hex(), Name: "HR"},
			{ID: primitive.NewObjectID().Hex(), Name: "IT"},
		}
		payload, _ := json.Marshal(expected)

		deps.redisMock.ExpectGet(cacheKey).SetVal(string(payload))

		resp, err := deps.service.GetAll(ctx, department.DefaultListLimit)

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, "HR", resp[0].Name)
	})

	t.Run("cache miss - ambil dari store dan simpan ke cache", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.redisMock.ExpectGet(cacheKey).RedisNil()

		oid := primitive.NewObjectID()
		deps.repo.EXPECT().
			FindAll(ctx, document.Filter{}, int64(department.DefaultListLimit)).
			Return([]department.Department{{ID: oid, Name: "Finance"}}, nil).
			Times(1)

		cachedPayload, _ := json.Marshal([]department.DepartmentResponse{
			{ID: oid.Hex(), Name: "Finance"},
		})
		deps.redisMock.ExpectSet(cacheKey, cachedPayload, 30*time.Minute).SetVal("OK")

		resp, err := deps.service.GetAll(ctx, department.DefaultListLimit)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Finance", resp[0].Name)
		assert.Equal(t, oid.Hex(), resp[0].ID)
	})

	t.Run("limit non-default - cache dilewati", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			FindAll(ctx, document.Filter{}, int64(5)).
			Return([]department.Department{}, nil).
			Times(1)

		resp, err := deps.service.GetAll(ctx, 5)

		assert.NoError(t, err)
		assert.Len(t, resp, 0)
	})

	t.Run("tanpa redis - service tetap jalan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := departmentMock.NewMockRepository(ctrl)
		svc := department.NewService(repo, nil)

		repo.EXPECT().
			FindAll(ctx, document.Filter{}, int64(department.DefaultListLimit)).
			Return([]department.Department{{Name: "Legal"}}, nil).
			Times(1)

		resp, err := svc.GetAll(ctx, department.DefaultListLimit)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
	})

	t.Run("store error diteruskan", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.redisMock.ExpectGet(cacheKey).RedisNil()
		deps.repo.EXPECT().
			FindAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("find failed")).
			Times(1)

		_, err := deps.service.GetAll(ctx, department.DefaultListLimit)

		assert.Error(t, err)
	})
}
