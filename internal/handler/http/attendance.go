package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/asistenciapp/attendance-backend-go/internal/domain/attendance"
	"github.com/asistenciapp/attendance-backend-go/internal/handler/http/middleware"
	"github.com/asistenciapp/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

var (
	errInvalidPage  = errors.New("page must be a number")
	errInvalidLimit = errors.New("limit must be a number")
)

type AttendanceHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListByBranch(w http.ResponseWriter, r *http.Request)
	Dashboard(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Record implements AttendanceHandler.
func (h *attendanceHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	var req attendance.CreateAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Branch-scoped terminals pin the branch; empty means the employee's
	// own affiliation decides.
	req.BranchID = middleware.TerminalBranchID(r.Context())

	result, err := h.attendanceService.Record(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance recorded", result)
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseAttendanceFilter(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	result, err := h.attendanceService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Data, &response.Meta{
		Total:    result.Meta.Total,
		Page:     result.Meta.Page,
		Limit:    result.Meta.Limit,
		LastPage: result.Meta.LastPage,
	})
}

// ListByBranch implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListByBranch(w http.ResponseWriter, r *http.Request) {
	filter, err := parseAttendanceFilter(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	branchID := chi.URLParam(r, "branchId")
	filter.BranchID = &branchID

	result, err := h.attendanceService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Data, &response.Meta{
		Total:    result.Meta.Total,
		Page:     result.Meta.Page,
		Limit:    result.Meta.Limit,
		LastPage: result.Meta.LastPage,
	})
}

// Dashboard implements AttendanceHandler.
func (h *attendanceHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	var filter attendance.DashboardFilter

	q := r.URL.Query()
	if v := q.Get("branch_id"); v != "" {
		filter.BranchID = &v
	}
	if v := q.Get("carnet"); v != "" {
		filter.EmployeeCarnet = &v
	}
	if v := q.Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := q.Get("end_date"); v != "" {
		filter.EndDate = &v
	}

	page, limit, err := parsePagination(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}
	filter.Page = page
	filter.Limit = limit

	result, err := h.attendanceService.Dashboard(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Data, &response.Meta{
		Total:    result.Meta.Total,
		Page:     result.Meta.Page,
		Limit:    result.Meta.Limit,
		LastPage: result.Meta.LastPage,
	})
}

func parseAttendanceFilter(r *http.Request) (attendance.AttendanceFilter, error) {
	var filter attendance.AttendanceFilter

	q := r.URL.Query()
	if v := q.Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := q.Get("end_date"); v != "" {
		filter.EndDate = &v
	}
	if v := q.Get("branch_id"); v != "" {
		filter.BranchID = &v
	}

	page, limit, err := parsePagination(r)
	if err != nil {
		return attendance.AttendanceFilter{}, err
	}
	filter.Page = page
	filter.Limit = limit

	return filter, nil
}

func parsePagination(r *http.Request) (page int, limit int, err error) {
	q := r.URL.Query()
	if v := q.Get("page"); v != "" {
		page, err = strconv.Atoi(v)
		if err != nil {
			return 0, 0, errInvalidPage
		}
	}
	if v := q.Get("limit"); v != "" {
		limit, err = strconv.Atoi(v)
		if err != nil {
			return 0, 0, errInvalidLimit
		}
	}
	return page, limit, nil
}
