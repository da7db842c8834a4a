package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/asistenciapp/attendance-backend-go/internal/domain/attendance"
	"github.com/asistenciapp/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func hasDateBound(dates ...*string) bool {
	for _, d := range dates {
		if d != nil && *d != "" {
			return true
		}
	}
	return false
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (employee_carnet, branch_id, type, recorded_at, image_url, raw_name)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		att.EmployeeCarnet,
		att.BranchID,
		att.Type,
		att.RecordedAt,
		att.ImageURL,
		att.RawName,
	).Scan(&att.ID, &att.CreatedAt)

	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// GetLastForPair implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetLastForPair(ctx context.Context, carnet string, branchID string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_carnet, branch_id, type, recorded_at, image_url, raw_name, created_at
		FROM attendances
		WHERE employee_carnet = $1
		  AND branch_id = $2
		ORDER BY recorded_at DESC
		LIMIT 1
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, carnet, branchID).Scan(
		&att.ID, &att.EmployeeCarnet, &att.BranchID, &att.Type,
		&att.RecordedAt, &att.ImageURL, &att.RawName, &att.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // pair has no history yet
		}
		return nil, fmt.Errorf("failed to get last event for pair: %w", err)
	}

	return &att, nil
}

// LockPair implements attendance.AttendanceRepository. The lock is released
// when the surrounding transaction commits or rolls back.
func (a *attendanceRepository) LockPair(ctx context.Context, carnet string, branchID string) error {
	q := GetQuerier(ctx, a.db)

	query := `SELECT pg_advisory_xact_lock(hashtextextended($1 || ':' || $2, 0))`

	if _, err := q.Exec(ctx, query, carnet, branchID); err != nil {
		return fmt.Errorf("failed to lock attendance pair: %w", err)
	}

	return nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter, timeZone string) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, a.db)

	// When a date bound is present, $1 is the reporting time zone so the
	// comparison happens on local calendar days.
	var args []interface{}
	startIdx := 1
	if hasDateBound(filter.StartDate, filter.EndDate) {
		args = append(args, timeZone)
		startIdx = 2
	}

	wb := newWhereBuilder()
	wb.AddIf(filter.BranchID, "a.branch_id = $%d")
	wb.AddIf(filter.StartDate, "(a.recorded_at AT TIME ZONE $1)::date >= $%d::date")
	wb.AddIf(filter.EndDate, "(a.recorded_at AT TIME ZONE $1)::date <= $%d::date")

	where := wb.Where(startIdx)
	args = append(args, wb.Args()...)

	countQuery := "SELECT COUNT(*) FROM attendances a" + where
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT a.id, a.employee_carnet, a.branch_id, a.type, a.recorded_at,
			   a.image_url, a.raw_name, a.created_at,
			   TRIM(e.first_name || ' ' || COALESCE(e.last_name, '')) AS employee_name,
			   b.name AS branch_name
		FROM attendances a
		LEFT JOIN employees e ON e.carnet = a.employee_carnet
		LEFT JOIN branches b ON b.id = a.branch_id
		%s
		ORDER BY a.recorded_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)

	offset := (filter.Page - 1) * filter.Limit
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.EmployeeCarnet, &att.BranchID, &att.Type, &att.RecordedAt,
			&att.ImageURL, &att.RawName, &att.CreatedAt,
			&att.EmployeeName, &att.BranchName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return attendances, total, nil
}

// ListWindow implements attendance.AttendanceRepository. The ordering
// (carnet, then recorded_at ascending) is what the pairing step relies on.
func (a *attendanceRepository) ListWindow(ctx context.Context, filter attendance.DashboardFilter, timeZone string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	var args []interface{}
	startIdx := 1
	if hasDateBound(filter.StartDate, filter.EndDate) {
		args = append(args, timeZone)
		startIdx = 2
	}

	wb := newWhereBuilder()
	wb.AddIf(filter.BranchID, "a.branch_id = $%d")
	wb.AddIf(filter.EmployeeCarnet, "a.employee_carnet = $%d")
	wb.AddIf(filter.StartDate, "(a.recorded_at AT TIME ZONE $1)::date >= $%d::date")
	wb.AddIf(filter.EndDate, "(a.recorded_at AT TIME ZONE $1)::date <= $%d::date")

	where := wb.Where(startIdx)
	args = append(args, wb.Args()...)

	query := fmt.Sprintf(`
		SELECT a.id, a.employee_carnet, a.branch_id, a.type, a.recorded_at,
			   a.image_url, a.raw_name, a.created_at,
			   TRIM(e.first_name || ' ' || COALESCE(e.last_name, '')) AS employee_name,
			   b.name AS branch_name
		FROM attendances a
		LEFT JOIN employees e ON e.carnet = a.employee_carnet
		LEFT JOIN branches b ON b.id = a.branch_id
		%s
		ORDER BY a.employee_carnet ASC, a.recorded_at ASC
	`, where)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance window: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.EmployeeCarnet, &att.BranchID, &att.Type, &att.RecordedAt,
			&att.ImageURL, &att.RawName, &att.CreatedAt,
			&att.EmployeeName, &att.BranchName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return attendances, nil
}
