package http

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/attendance"
	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/report"
	"github.com/cmlabs-hris/face-attendance-dashboard/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	DeviceHistory(w http.ResponseWriter, r *http.Request)
	EmployeeEvents(w http.ResponseWriter, r *http.Request)

	Daily(w http.ResponseWriter, r *http.Request)
	ExportDaily(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	reportService     report.ReportService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService, reportService report.ReportService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
		reportService:     reportService,
	}
}

func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	limit, err := getIntQueryParam(r, "limit", 0)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filter := attendance.EventFilter{
		EmployeeID: queryParam(r, "employee_id"),
		DeviceID:   queryParam(r, "device_id"),
		StartDate:  queryParam(r, "start_date"),
		EndDate:    queryParam(r, "end_date"),
		Limit:      limit,
	}

	events, err := h.attendanceService.ListEvents(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, events, &response.Meta{Limit: limit, TotalItems: int64(len(events))})
}

func (h *attendanceHandlerImpl) DeviceHistory(w http.ResponseWriter, r *http.Request) {
	events, err := h.attendanceService.DeviceHistory(r.Context(), chi.URLParam(r, "deviceID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, events)
}

func (h *attendanceHandlerImpl) EmployeeEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.attendanceService.EmployeeEvents(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, events)
}

func dailyFilterFromQuery(r *http.Request) report.DailyFilter {
	return report.DailyFilter{
		StartDate:  queryParam(r, "start_date"),
		EndDate:    queryParam(r, "end_date"),
		EmployeeID: queryParam(r, "employee_id"),
		Search:     queryParam(r, "search"),
		Department: queryParam(r, "department"),
		Status:     queryParam(r, "status"),
	}
}

func (h *attendanceHandlerImpl) Daily(w http.ResponseWriter, r *http.Request) {
	table, err := h.reportService.Daily(r.Context(), dailyFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, table)
}

// ExportDaily renders the whole file before writing headers so that a failed
// fetch still produces a JSON error.
func (h *attendanceHandlerImpl) ExportDaily(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	filename, err := h.reportService.ExportDaily(r.Context(), dailyFilterFromQuery(r), &buf)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write CSV export", "error", err, "filename", filename)
	}
}
