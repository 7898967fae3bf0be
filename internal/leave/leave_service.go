package leave

import (
	"context"
	"time"

	leaveerrors "hrms-portal/internal/leave/errors"
	"hrms-portal/internal/shared/document"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateLeaveRequest) (string, error)
	GetAll(ctx context.Context, q ListLeavesQuery) ([]LeaveResponse, error)
	Act(ctx context.Context, leaveID, action string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateLeaveRequest) (string, error) {
	leaveType := req.LeaveType
	if leaveType == "" {
		leaveType = TypeAnnual
	}
	status := req.Status
	if status == "" {
		status = StatusPending
	}

	lr := &LeaveRequest{
		EmployeeID: req.EmployeeID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		LeaveType:  leaveType,
		Reason:     req.Reason,
		Status:     status,
	}

	id, err := s.repo.Create(ctx, lr)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

func (s *service) GetAll(ctx context.Context, q ListLeavesQuery) ([]LeaveResponse, error) {
	filter := document.Filter{}
	if q.EmployeeID != "" {
		filter["employee_id"] = q.EmployeeID
	}
	if q.Status != "" {
		filter["status"] = q.Status
	}

	leaves, err := s.repo.FindAll(ctx, filter, q.Limit)
	if err != nil {
		return nil, err
	}

	res := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		res[i] = mapToResponse(l)
	}
	return res, nil
}

// Act menerapkan keputusan approve/reject pada pengajuan cuti.
// Keputusan ulang pada status terminal tidak dicegah.
func (s *service) Act(ctx context.Context, leaveID, action string) error {
	var status string
	switch action {
	case "approve":
		status = StatusApproved
	case "reject":
		status = StatusRejected
	default:
		return leaveerrors.ErrInvalidAction
	}

	id, err := document.ParseID(leaveID)
	if err != nil {
		return err
	}

	matched, err := s.repo.UpdateStatus(ctx, id, status, time.Now().UTC())
	if err != nil {
		return err
	}
	if matched == 0 {
		return leaveerrors.ErrLeaveNotFound
	}
	return nil
}

func mapToResponse(l LeaveRequest) LeaveResponse {
	return LeaveResponse{
		ID:         document.FromObjectID(l.ID).Hex(),
		EmployeeID: l.EmployeeID,
		StartDate:  l.StartDate,
		EndDate:    l.EndDate,
		LeaveType:  l.LeaveType,
		Reason:     l.Reason,
		Status:     l.Status,
		UpdatedAt:  l.UpdatedAt,
	}
}
