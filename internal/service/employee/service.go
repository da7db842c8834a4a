package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/asistenciapp/attendance-backend-go/internal/domain/branch"
	"github.com/asistenciapp/attendance-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	branch.BranchRepository
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	branchRepo branch.BranchRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepo,
		BranchRepository:   branchRepo,
	}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.BranchID != nil && *req.BranchID != "" {
		if _, err := s.BranchRepository.GetByID(ctx, *req.BranchID); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}

	emp, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		Carnet:    req.Carnet,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		BranchID:  req.BranchID,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toEmployeeResponse(emp))
	}

	return responses, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.Update(ctx, req)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(emp), nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, carnet string) error {
	return s.EmployeeRepository.Delete(ctx, carnet)
}

func toEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		Carnet:    emp.Carnet,
		FirstName: emp.FirstName,
		LastName:  emp.LastName,
		BranchID:  emp.BranchID,
		CreatedAt: emp.CreatedAt.Format(time.RFC3339),
	}
}
