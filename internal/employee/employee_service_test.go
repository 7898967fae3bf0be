package employee_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"

	"hrms-portal/internal/employee"
	employeeMock "hrms-portal/internal/employee/mock"
	"hrms-portal/internal/shared/document"
)

type serviceDeps struct {
	service   employee.Service
	repo      *employeeMock.MockRepository
	publisher *employeeMock.MockEventPublisher
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	repo := employeeMock.NewMockRepository(ctrl)
	publisher := employeeMock.NewMockEventPublisher(ctrl)
	svc := employee.NewService(repo, publisher)

	return &serviceDeps{
		service:   svc,
		repo:      repo,
		publisher: publisher,
	}
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("status kosong di-default ke active", func(t *testing.T) {
		deps := setupServiceTest(t)
		oid := primitive.NewObjectID()

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, emp *employee.Employee) (document.ID, error) {
				assert.Equal(t, employee.StatusActive, emp.Status)
				assert.Equal(t, "A", emp.FirstName)
				return document.FromObjectID(oid), nil
			}).
			Times(1)

		deps.publisher.EXPECT().
			PublishEmployeeCreated(ctx, gomock.Any()).
			Return(nil).
			Times(1)

		id, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			FirstName: "A",
			LastName:  "B",
			Email:     "a@b.com",
		})

		assert.NoError(t, err)
		assert.Equal(t, oid.Hex(), id)
	})

	t.Run("status eksplisit dipertahankan", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, emp *employee.Employee) (document.ID, error) {
				assert.Equal(t, employee.StatusInactive, emp.Status)
				return document.NewID(), nil
			}).
			Times(1)

		deps.publisher.EXPECT().
			PublishEmployeeCreated(gomock.Any(), gomock.Any()).
			Return(nil).
			Times(1)

		_, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			FirstName: "A",
			LastName:  "B",
			Email:     "a@b.com",
			Status:    employee.StatusInactive,
		})

		assert.NoError(t, err)
	})

	t.Run("publisher gagal tidak menggagalkan create", func(t *testing.T) {
		deps := setupServiceTest(t)
		oid := primitive.NewObjectID()

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(document.FromObjectID(oid), nil).
			Times(1)

		deps.publisher.EXPECT().
			PublishEmployeeCreated(gomock.Any(), gomock.Any()).
			Return(errors.New("broker down")).
			Times(1)

		id, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			FirstName: "A",
			LastName:  "B",
			Email:     "a@b.com",
		})

		assert.NoError(t, err)
		assert.Equal(t, oid.Hex(), id)
	})

	t.Run("repo error diteruskan tanpa publish", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(document.ID{}, errors.New("insert failed")).
			Times(1)

		_, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			FirstName: "A",
			LastName:  "B",
			Email:     "a@b.com",
		})

		assert.Error(t, err)
	})
}

func TestEmployeeService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("filter department_id dan status masuk ke query", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			FindAll(ctx, document.Filter{
				"department_id": "dep-1",
				"status":        "active",
			}, int64(50)).
			Return([]employee.Employee{}, nil).
			Times(1)

		_, err := deps.service.GetAll(ctx, employee.ListEmployeesQuery{
			DepartmentID: "dep-1",
			Status:       "active",
			Limit:        50,
		})

		assert.NoError(t, err)
	})

	t.Run("tanpa filter - map kosong", func(t *testing.T) {
		deps := setupServiceTest(t)
		oid := primitive.NewObjectID()

		deps.repo.EXPECT().
			FindAll(ctx, document.Filter{}, int64(100)).
			Return([]employee.Employee{{
				ID:        oid,
				FirstName: "A",
				LastName:  "B",
				Email:     "a@b.com",
				Status:    employee.StatusActive,
			}}, nil).
			Times(1)

		resp, err := deps.service.GetAll(ctx, employee.ListEmployeesQuery{Limit: 100})

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, oid.Hex(), resp[0].ID)
		assert.Equal(t, employee.StatusActive, resp[0].Status)
	})
}
