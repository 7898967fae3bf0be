package attendance

import (
	"context"
	"errors"
	"time"

	attendanceerrors "hrms-portal/internal/attendance/errors"
	"hrms-portal/internal/shared/document"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, q ListAttendanceQuery) ([]AttendanceResponse, error)
	CheckIn(ctx context.Context, req CheckInRequest) (string, error)
	CheckOut(ctx context.Context, attendanceID string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetAll(ctx context.Context, q ListAttendanceQuery) ([]AttendanceResponse, error) {
	filter := document.Filter{}
	if q.EmployeeID != "" {
		filter["employee_id"] = q.EmployeeID
	}

	rows, err := s.repo.FindAll(ctx, filter, q.Limit)
	if err != nil {
		return nil, err
	}

	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

// CheckIn membuat record absensi untuk hari ini (UTC) jika belum ada.
// Pre-check dan insert bukan satu operasi atomik; dua check-in bersamaan
// untuk karyawan yang sama bisa sama-sama lolos.
func (s *service) CheckIn(ctx context.Context, req CheckInRequest) (string, error) {
	now := time.Now().UTC()
	today := now.Format("2006-01-02")

	_, err := s.repo.FindByEmployeeAndDate(ctx, req.EmployeeID, today)
	if err == nil {
		return "", attendanceerrors.ErrAlreadyCheckedIn
	}
	if !errors.Is(err, document.ErrNoDocuments) {
		return "", err
	}

	row := &Attendance{
		EmployeeID: req.EmployeeID,
		Date:       today,
		CheckIn:    now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	id, err := s.repo.Create(ctx, row)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

// CheckOut mengisi check_out lewat satu conditional update.
// Id tidak ada dan sudah-check-out tidak dibedakan ke pemanggil.
func (s *service) CheckOut(ctx context.Context, attendanceID string) error {
	id, err := document.ParseID(attendanceID)
	if err != nil {
		return err
	}

	matched, err := s.repo.SetCheckOut(ctx, id, time.Now().UTC())
	if err != nil {
		return err
	}
	if matched == 0 {
		return attendanceerrors.ErrCheckOutNotMatched
	}
	return nil
}

func mapToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:         document.FromObjectID(a.ID).Hex(),
		EmployeeID: a.EmployeeID,
		Date:       a.Date,
		CheckIn:    a.CheckIn,
		CheckOut:   a.CheckOut,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}
