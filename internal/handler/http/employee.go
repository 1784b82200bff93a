package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/employee"
	"github.com/cmlabs-hris/face-attendance-dashboard/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ListDepartments(w http.ResponseWriter, r *http.Request)

	ListFaceEmbeddings(w http.ResponseWriter, r *http.Request)
	DeleteFaceEmbedding(w http.ResponseWriter, r *http.Request)

	CreateWithPhoto(w http.ResponseWriter, r *http.Request)
	UploadFace(w http.ResponseWriter, r *http.Request)
	UploadPhoto(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{employeeService: employeeService}
}

func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := employee.ListEmployeesFilter{
		Search:     queryParam(r, "search"),
		Department: queryParam(r, "department"),
		Status:     queryParam(r, "status"),
	}

	employees, err := h.employeeService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, employees, &response.Meta{TotalItems: int64(len(employees))})
}

func (h *employeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.employeeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee created", "employee_id", created.EmployeeID)
	response.Created(w, "Employee created", created)
}

func (h *employeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.employeeService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated", updated)
}

func (h *employeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.employeeService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee deleted", "id", id)
	response.SuccessWithMessage(w, "Employee deleted", nil)
}

func (h *employeeHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.employeeService.ListDepartments(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, departments)
}

func (h *employeeHandlerImpl) ListFaceEmbeddings(w http.ResponseWriter, r *http.Request) {
	embeddings, err := h.employeeService.ListFaceEmbeddings(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, embeddings)
}

func (h *employeeHandlerImpl) DeleteFaceEmbedding(w http.ResponseWriter, r *http.Request) {
	err := h.employeeService.DeleteFaceEmbedding(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "embeddingID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Face embedding deleted", nil)
}

func (h *employeeHandlerImpl) CreateWithPhoto(w http.ResponseWriter, r *http.Request) {
	if err := parseMultipart(w, r); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	photo, err := readPhoto(r, "photo")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	req := employee.CreateWithPhotoRequest{
		CreateEmployeeRequest: employee.CreateEmployeeRequest{
			EmployeeID: r.FormValue("employee_id"),
			Name:       r.FormValue("name"),
			Department: r.FormValue("department"),
			Position:   r.FormValue("position"),
			Email:      r.FormValue("email"),
			Phone:      r.FormValue("phone"),
		},
		Photo: photo,
	}

	result, err := h.employeeService.CreateWithPhoto(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee created with photo", "employee_id", req.EmployeeID)
	response.Created(w, "Employee created", result)
}

func (h *employeeHandlerImpl) UploadFace(w http.ResponseWriter, r *http.Request) {
	h.upload(w, r, "file", h.employeeService.UploadFace)
}

func (h *employeeHandlerImpl) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	h.upload(w, r, "photo", h.employeeService.UploadPhoto)
}

type uploadFunc func(ctx context.Context, req employee.FaceUploadRequest) (map[string]any, error)

func (h *employeeHandlerImpl) upload(w http.ResponseWriter, r *http.Request, field string, fn uploadFunc) {
	if err := parseMultipart(w, r); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	photo, err := readPhoto(r, field)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	req := employee.FaceUploadRequest{EmployeeID: chi.URLParam(r, "id"), Photo: photo}
	result, err := fn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Face photo uploaded", "employee_id", req.EmployeeID)
	response.SuccessWithMessage(w, "Photo uploaded", result)
}
