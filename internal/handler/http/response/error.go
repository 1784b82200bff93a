package response

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/attendance"
	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/auth"
	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/device"
	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/employee"
	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/report"
	"github.com/cmlabs-hris/face-attendance-dashboard/internal/pkg/validator"
	"github.com/cmlabs-hris/face-attendance-dashboard/internal/repository/restapi"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var apiErr *restapi.APIError

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token has been revoked")

	// Not found
	case errors.Is(err, employee.ErrEmployeeNotFound), errors.Is(err, attendance.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrFaceEmbeddingNotFound):
		NotFound(w, "Face embedding not found")
	case errors.Is(err, device.ErrDeviceNotFound), errors.Is(err, attendance.ErrDeviceNotFound):
		NotFound(w, "Device not found")

	// Uploads
	case errors.Is(err, employee.ErrPhotoRequired):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, employee.ErrPhotoTooLarge):
		writeJSON(w, http.StatusRequestEntityTooLarge, Response{
			Success: false,
			Error:   &ErrorDetail{Code: "PAYLOAD_TOO_LARGE", Message: err.Error()},
		})
	case errors.Is(err, employee.ErrUnsupportedPhoto):
		writeJSON(w, http.StatusUnsupportedMediaType, Response{
			Success: false,
			Error:   &ErrorDetail{Code: "UNSUPPORTED_MEDIA_TYPE", Message: employee.ErrUnsupportedPhoto.Error()},
		})

	// Reports
	case errors.Is(err, report.ErrInvalidDateRange), errors.Is(err, attendance.ErrInvalidDateRange):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, report.ErrRangeTooLong):
		BadRequest(w, err.Error(), nil)

	// Recognition backend
	case errors.Is(err, restapi.ErrBackendUnavailable):
		slog.Error("Recognition backend unavailable", "error", err)
		BadGateway(w, "Recognition backend is unavailable")
	case errors.As(err, &apiErr):
		if apiErr.StatusCode == http.StatusConflict {
			Conflict(w, apiErr.Detail)
			return
		}
		if apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 &&
			apiErr.StatusCode != http.StatusUnauthorized && apiErr.StatusCode != http.StatusForbidden {
			Upstream(w, apiErr.StatusCode, apiErr.Detail)
			return
		}
		slog.Error("Recognition backend error", "status", apiErr.StatusCode, "detail", apiErr.Detail)
		BadGateway(w, "Recognition backend returned an error")

	case errors.Is(err, context.DeadlineExceeded):
		writeJSON(w, http.StatusGatewayTimeout, Response{
			Success: false,
			Error:   &ErrorDetail{Code: "GATEWAY_TIMEOUT", Message: "Request timed out"},
		})

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
