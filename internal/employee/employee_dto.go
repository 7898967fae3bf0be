package employee

type CreateEmployeeRequest struct {
	FirstName    string   `json:"first_name" binding:"required"`
	LastName     string   `json:"last_name" binding:"required"`
	Email        string   `json:"email" binding:"required"`
	DepartmentID string   `json:"department_id"`
	Role         string   `json:"role"`
	HireDate     string   `json:"hire_date" binding:"omitempty,datetime=2006-01-02"`
	Salary       *float64 `json:"salary" binding:"omitempty,gte=0"`
	Status       string   `json:"status" binding:"omitempty,oneof=active inactive"`
}

type ListEmployeesQuery struct {
	DepartmentID string
	Status       string
	Limit        int64
}

type EmployeeResponse struct {
	ID           string   `json:"_id"`
	FirstName    string   `json:"first_name"`
	LastName     string   `json:"last_name"`
	Email        string   `json:"email"`
	DepartmentID string   `json:"department_id,omitempty"`
	Role         string   `json:"role,omitempty"`
	HireDate     string   `json:"hire_date,omitempty"`
	Salary       *float64 `json:"salary,omitempty"`
	Status       string   `json:"status"`
}
