package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/asistenciapp/attendance-backend-go/internal/domain/employee"
	"github.com/asistenciapp/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (carnet, first_name, last_name, branch_id)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		emp.Carnet,
		emp.FirstName,
		emp.LastName,
		emp.BranchID,
	).Scan(&emp.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Employee{}, employee.ErrCarnetExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

// GetByCarnet implements employee.EmployeeRepository.
func (r *employeeRepository) GetByCarnet(ctx context.Context, carnet string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT carnet, first_name, last_name, branch_id, created_at
		FROM employees
		WHERE carnet = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, carnet).Scan(
		&emp.Carnet, &emp.FirstName, &emp.LastName, &emp.BranchID, &emp.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT carnet, first_name, last_name, branch_id, created_at
		FROM employees
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(&emp.Carnet, &emp.FirstName, &emp.LastName, &emp.BranchID, &emp.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return employees, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepository) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	updates := make([]string, 0, 2)
	args := make([]interface{}, 0, 3)
	argIdx := 1

	if req.FirstName != nil {
		updates = append(updates, fmt.Sprintf("first_name = $%d", argIdx))
		args = append(args, *req.FirstName)
		argIdx++
	}
	if req.LastName != nil {
		updates = append(updates, fmt.Sprintf("last_name = $%d", argIdx))
		args = append(args, *req.LastName)
		argIdx++
	}

	if len(updates) == 0 {
		return employee.Employee{}, fmt.Errorf("no updatable fields provided for employee update")
	}

	args = append(args, req.Carnet)

	query := "UPDATE employees SET " + strings.Join(updates, ", ") +
		fmt.Sprintf(" WHERE carnet = $%d RETURNING carnet, first_name, last_name, branch_id, created_at", argIdx)

	var emp employee.Employee
	err := q.QueryRow(ctx, query, args...).Scan(
		&emp.Carnet, &emp.FirstName, &emp.LastName, &emp.BranchID, &emp.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return emp, nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepository) Delete(ctx context.Context, carnet string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM employees WHERE carnet = $1`

	commandTag, err := q.Exec(ctx, query, carnet)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
