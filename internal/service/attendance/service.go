package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/asistenciapp/attendance-backend-go/internal/domain/attendance"
	"github.com/asistenciapp/attendance-backend-go/internal/domain/employee"
	"github.com/asistenciapp/attendance-backend-go/internal/pkg/database"
	"github.com/asistenciapp/attendance-backend-go/internal/pkg/imagestore"
	"github.com/asistenciapp/attendance-backend-go/internal/repository/postgresql"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	employee.EmployeeRepository
	imageStore imagestore.Store

	loc          *time.Location
	timeZone     string
	defaultLimit int
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	imageStore imagestore.Store,
	timeZone string,
	defaultLimit int,
) attendance.AttendanceService {
	loc, err := time.LoadLocation(timeZone)
	if err != nil {
		loc = time.UTC
	}
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		imageStore:           imageStore,
		loc:                  loc,
		timeZone:             timeZone,
		defaultLimit:         defaultLimit,
	}
}

// Record implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Record(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByCarnet(ctx, req.Carnet)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	// A branch-scoped terminal pins the branch; a legacy terminal falls back
	// to the employee's affiliation.
	branchID := req.BranchID
	if branchID == "" {
		if emp.BranchID == nil || *emp.BranchID == "" {
			return attendance.AttendanceResponse{}, attendance.ErrEmployeeNoBranch
		}
		branchID = *emp.BranchID
	}

	recordedAt := time.Now().UTC()
	if req.RecordedAt != nil && *req.RecordedAt != "" {
		parsed, err := time.Parse(time.RFC3339, *req.RecordedAt)
		if err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to parse recordedAt: %w", err)
		}
		recordedAt = parsed.UTC()
	}

	// Upload before the transaction: an orphaned image on a failed save is
	// acceptable, a half-written event record is not.
	upload, err := s.imageStore.Upload(ctx, req.ImageBase64)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("%w: %v", attendance.ErrImageUploadFailed, err)
	}

	rawName := displayName(emp)

	var created attendance.Attendance
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		// Serializes read-last/decide/insert for this pair so two concurrent
		// scans cannot both resolve the same type.
		if err := s.AttendanceRepository.LockPair(txCtx, emp.Carnet, branchID); err != nil {
			return fmt.Errorf("failed to lock attendance pair: %w", err)
		}

		last, err := s.AttendanceRepository.GetLastForPair(txCtx, emp.Carnet, branchID)
		if err != nil {
			return fmt.Errorf("failed to get last attendance: %w", err)
		}

		created, err = s.AttendanceRepository.Create(txCtx, attendance.Attendance{
			EmployeeCarnet: emp.Carnet,
			BranchID:       branchID,
			Type:           nextEventType(last),
			RecordedAt:     recordedAt,
			ImageURL:       upload.URL,
			RawName:        rawName,
		})
		if err != nil {
			return fmt.Errorf("failed to create attendance: %w", err)
		}
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	created.EmployeeName = rawName
	return toAttendanceResponse(created), nil
}

// ResolveNextType implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ResolveNextType(ctx context.Context, carnet string, branchID string) (attendance.EventType, error) {
	last, err := s.AttendanceRepository.GetLastForPair(ctx, carnet, branchID)
	if err != nil {
		return "", fmt.Errorf("failed to get last attendance: %w", err)
	}
	return nextEventType(last), nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}
	if filter.Limit == 0 {
		filter.Limit = s.defaultLimit
	}

	events, total, err := s.AttendanceRepository.List(ctx, filter, s.timeZone)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendances: %w", err)
	}

	data := make([]attendance.AttendanceResponse, 0, len(events))
	for _, ev := range events {
		data = append(data, toAttendanceResponse(ev))
	}

	return attendance.ListAttendanceResponse{
		Data: data,
		Meta: attendance.PageInfo{
			Total:    total,
			Page:     filter.Page,
			Limit:    filter.Limit,
			LastPage: int(math.Ceil(float64(total) / float64(filter.Limit))),
		},
	}, nil
}

// Dashboard implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Dashboard(ctx context.Context, filter attendance.DashboardFilter) (attendance.DashboardResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.DashboardResponse{}, err
	}
	if filter.Limit == 0 {
		filter.Limit = s.defaultLimit
	}

	events, err := s.AttendanceRepository.ListWindow(ctx, filter, s.timeZone)
	if err != nil {
		return attendance.DashboardResponse{}, fmt.Errorf("failed to list attendance window: %w", err)
	}

	shifts, unpaired := pairShifts(events, s.loc)
	if unpaired > 0 {
		slog.DebugContext(ctx, "dashboard skipped unpaired entries",
			slog.Int("unpaired", unpaired),
			slog.Int("events", len(events)),
		)
	}

	page, meta := paginate(shifts, filter.Page, filter.Limit)

	return attendance.DashboardResponse{
		Data: page,
		Meta: meta,
	}, nil
}

func toAttendanceResponse(att attendance.Attendance) attendance.AttendanceResponse {
	name := att.EmployeeName
	if name == nil {
		name = att.RawName
	}
	return attendance.AttendanceResponse{
		ID:           att.ID,
		Carnet:       att.EmployeeCarnet,
		EmployeeName: name,
		BranchID:     att.BranchID,
		Type:         string(att.Type),
		RecordedAt:   att.RecordedAt.Format(time.RFC3339),
		ImageURL:     att.ImageURL,
		CreatedAt:    att.CreatedAt.Format(time.RFC3339),
	}
}

func displayName(emp employee.Employee) *string {
	name := emp.FirstName
	if emp.LastName != nil {
		name = strings.TrimSpace(name + " " + *emp.LastName)
	}
	if name == "" {
		return nil
	}
	return &name
}
