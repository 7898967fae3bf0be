package department_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"hrms-portal/internal/department"
	"hrms-portal/internal/shared/apperror"
)

type fakeDepartmentService struct {
	CreateFn func(ctx context.Context, req department.CreateDepartmentRequest) (string, error)
	GetAllFn func(ctx context.Context, limit int64) ([]department.DepartmentResponse, error)
}

func (f *fakeDepartmentService) Create(ctx context.Context, req department.CreateDepartmentRequest) (string, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeDepartmentService) GetAll(ctx context.Context, limit int64) ([]department.DepartmentResponse, error) {
	return f.GetAllFn(ctx, limit)
}

func init() {
	gin.SetMode(gin.TestMode)
	apperror.Init()
}

func TestDepartmentHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		newID := primitive.NewObjectID().Hex()
		svc := &fakeDepartmentService{
			CreateFn: func(ctx context.Context, req department.CreateDepartmentRequest) (string, error) {
				assert.Equal(t, "HR", req.Name)
				return newID, nil
			},
		}

		h := department.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"name":"HR"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/departments", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp map[string]string
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, newID, resp["_id"])
	})

	t.Run("validation error - name kosong", func(t *testing.T) {
		h := department.NewHandler(&fakeDepartmentService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/departments", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "detail")
	})

	t.Run("service error", func(t *testing.T) {
		svc := &fakeDepartmentService{
			CreateFn: func(ctx context.Context, req department.CreateDepartmentRequest) (string, error) {
				return "", errors.New("failed")
			},
		}

		h := department.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"name":"HR"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/departments", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestDepartmentHandler_GetAll(t *testing.T) {
	t.Run("success - array polos dengan _id string", func(t *testing.T) {
		id := primitive.NewObjectID().Hex()
		svc := &fakeDepartmentService{
			GetAllFn: func(ctx context.Context, limit int64) ([]department.DepartmentResponse, error) {
				assert.Equal(t, int64(100), limit)
				return []department.DepartmentResponse{{ID: id, Name: "HR"}}, nil
			},
		}

		h := department.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/departments", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp []map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp, 1)
		assert.Equal(t, id, resp[0]["_id"])
	})

	t.Run("limit dari query diteruskan", func(t *testing.T) {
		svc := &fakeDepartmentService{
			GetAllFn: func(ctx context.Context, limit int64) ([]department.DepartmentResponse, error) {
				assert.Equal(t, int64(7), limit)
				return nil, nil
			},
		}

		h := department.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/departments?limit=7", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("limit tidak valid jatuh ke default", func(t *testing.T) {
		svc := &fakeDepartmentService{
			GetAllFn: func(ctx context.Context, limit int64) ([]department.DepartmentResponse, error) {
				assert.Equal(t, int64(100), limit)
				return nil, nil
			},
		}

		h := department.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/departments?limit=abc", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
