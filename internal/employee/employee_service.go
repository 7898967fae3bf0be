package employee

import (
	"context"
	"time"

	"go.uber.org/zap"

	"hrms-portal/internal/events"
	"hrms-portal/internal/shared/document"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (string, error)
	GetAll(ctx context.Context, q ListEmployeesQuery) ([]EmployeeResponse, error)
}

type service struct {
	repo      Repository
	publisher EventPublisher
}

func NewService(repo Repository, publisher EventPublisher) Service {
	return &service{repo: repo, publisher: publisher}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (string, error) {
	status := req.Status
	if status == "" {
		status = StatusActive
	}

	emp := &Employee{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		DepartmentID: req.DepartmentID,
		Role:         req.Role,
		HireDate:     req.HireDate,
		Salary:       req.Salary,
		Status:       status,
	}

	id, err := s.repo.Create(ctx, emp)
	if err != nil {
		return "", err
	}

	// Event dikirim best-effort; kegagalan broker tidak menggagalkan request
	event := events.EmployeeCreatedEvent{
		EventType:    "employee.created",
		EmployeeID:   id.Hex(),
		Email:        emp.Email,
		DepartmentID: emp.DepartmentID,
		OccurredAt:   time.Now().UTC(),
	}
	if err := s.publisher.PublishEmployeeCreated(ctx, event); err != nil {
		zap.L().Warn("publish employee.created failed",
			zap.String("employee_id", id.Hex()),
			zap.Error(err),
		)
	}

	return id.Hex(), nil
}

func (s *service) GetAll(ctx context.Context, q ListEmployeesQuery) ([]EmployeeResponse, error) {
	filter := document.Filter{}
	if q.DepartmentID != "" {
		filter["department_id"] = q.DepartmentID
	}
	if q.Status != "" {
		filter["status"] = q.Status
	}

	emps, err := s.repo.FindAll(ctx, filter, q.Limit)
	if err != nil {
		return nil, err
	}

	res := make([]EmployeeResponse, len(emps))
	for i, e := range emps {
		res[i] = mapToResponse(e)
	}
	return res, nil
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           document.FromObjectID(e.ID).Hex(),
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		Email:        e.Email,
		DepartmentID: e.DepartmentID,
		Role:         e.Role,
		HireDate:     e.HireDate,
		Salary:       e.Salary,
		Status:       e.Status,
	}
}
