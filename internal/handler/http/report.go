package http

import (
	"net/http"

	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/report"
	"github.com/cmlabs-hris/face-attendance-dashboard/internal/handler/http/response"
)

type ReportHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// Summary handles GET /reports/summary?period=this_month&department=IT
func (h *reportHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	req := report.SummaryRequest{
		Period:     report.Period(queryParam(r, "period")),
		StartDate:  queryParam(r, "start_date"),
		EndDate:    queryParam(r, "end_date"),
		Department: queryParam(r, "department"),
	}

	summary, err := h.reportService.Summary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, summary)
}
