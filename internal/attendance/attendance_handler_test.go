package attendance_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"hrms-portal/internal/attendance"
	attendanceerrors "hrms-portal/internal/attendance/errors"
	"hrms-portal/internal/shared/apperror"
)

type fakeAttendanceService struct {
	GetAllFn   func(ctx context.Context, q attendance.ListAttendanceQuery) ([]attendance.AttendanceResponse, error)
	CheckInFn  func(ctx context.Context, req attendance.CheckInRequest) (string, error)
	CheckOutFn func(ctx context.Context, attendanceID string) error
}

func (f *fakeAttendanceService) GetAll(ctx context.Context, q attendance.ListAttendanceQuery) ([]attendance.AttendanceResponse, error) {
	return f.GetAllFn(ctx, q)
}
func (f *fakeAttendanceService) CheckIn(ctx context.Context, req attendance.CheckInRequest) (string, error) {
	return f.CheckInFn(ctx, req)
}
func (f *fakeAttendanceService) CheckOut(ctx context.Context, attendanceID string) error {
	return f.CheckOutFn(ctx, attendanceID)
}

func init() {
	gin.SetMode(gin.TestMode)
	apperror.Init()
}

func TestAttendanceHandler_CheckIn(t *testing.T) {
	t.Run("success - 201 dengan _id", func(t *testing.T) {
		newID := primitive.NewObjectID().Hex()
		svc := &fakeAttendanceService{
			CheckInFn: func(ctx context.Context, req attendance.CheckInRequest) (string, error) {
				assert.Equal(t, "E1", req.EmployeeID)
				return newID, nil
			},
		}

		h := attendance.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"employee_id":"E1"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/attendance/checkin", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.CheckIn(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp map[string]string
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, newID, resp["_id"])
	})

	t.Run("sudah check-in - 400 Already checked in today", func(t *testing.T) {
		svc := &fakeAttendanceService{
			CheckInFn: func(ctx context.Context, req attendance.CheckInRequest) (string, error) {
				return "", attendanceerrors.ErrAlreadyCheckedIn
			},
		}

		h := attendance.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"employee_id":"E1"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/attendance/checkin", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.CheckIn(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Already checked in today")
	})

	t.Run("employee_id hilang - 400", func(t *testing.T) {
		h := attendance.NewHandler(&fakeAttendanceService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/attendance/checkin", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.CheckIn(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Employee Id")
	})
}

func TestAttendanceHandler_CheckOut(t *testing.T) {
	attID := primitive.NewObjectID().Hex()

	newCheckOutContext := func() (*httptest.ResponseRecorder, *gin.Context) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: attID}}
		c.Request = httptest.NewRequest(http.MethodPost, "/attendance/"+attID+"/checkout", nil)
		return w, c
	}

	t.Run("success - {\"success\": true}", func(t *testing.T) {
		svc := &fakeAttendanceService{
			CheckOutFn: func(ctx context.Context, id string) error {
				assert.Equal(t, attID, id)
				return nil
			},
		}

		h := attendance.NewHandler(svc)
		w, c := newCheckOutContext()

		h.CheckOut(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]bool
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp["success"])
	})

	t.Run("tidak ada yang match - 404", func(t *testing.T) {
		svc := &fakeAttendanceService{
			CheckOutFn: func(ctx context.Context, id string) error {
				return attendanceerrors.ErrCheckOutNotMatched
			},
		}

		h := attendance.NewHandler(svc)
		w, c := newCheckOutContext()

		h.CheckOut(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Attendance not found or already checked out")
	})
}

func TestAttendanceHandler_GetAll(t *testing.T) {
	t.Run("filter employee_id dari query", func(t *testing.T) {
		svc := &fakeAttendanceService{
			GetAllFn: func(ctx context.Context, q attendance.ListAttendanceQuery) ([]attendance.AttendanceResponse, error) {
				assert.Equal(t, "E1", q.EmployeeID)
				assert.Equal(t, int64(100), q.Limit)
				return []attendance.AttendanceResponse{}, nil
			},
		}

		h := attendance.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/attendance?employee_id=E1", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
