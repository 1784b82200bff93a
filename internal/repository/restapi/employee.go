package restapi

import (
	"context"
	"net/http"

	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/employee"
)

type employeeRepositoryImpl struct {
	client *Client
}

func NewEmployeeRepository(client *Client) employee.EmployeeRepository {
	return &employeeRepositoryImpl{client: client}
}

// ListEmployees implements employee.Roster.
func (r *employeeRepositoryImpl) ListEmployees(ctx context.Context) ([]employee.Employee, error) {
	var employees []employee.Employee
	if err := r.client.getJSON(ctx, r.client.url("employees", ""), &employees); err != nil {
		return nil, err
	}
	if employees == nil {
		employees = []employee.Employee{}
	}
	return employees, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	var created employee.Employee
	err := r.client.sendJSON(ctx, http.MethodPost, r.client.url("employees", ""), req, &created)
	return created, err
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	var updated employee.Employee
	err := r.client.sendJSON(ctx, http.MethodPut, r.client.url("employees", req.ID), req.CreateEmployeeRequest, &updated)
	if err != nil {
		return employee.Employee{}, notFoundAs(err, employee.ErrEmployeeNotFound)
	}
	return updated, nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	err := r.client.sendJSON(ctx, http.MethodDelete, r.client.url("employees", id), nil, nil)
	return notFoundAs(err, employee.ErrEmployeeNotFound)
}

// ListDepartments implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListDepartments(ctx context.Context) ([]string, error) {
	var departments []string
	if err := r.client.getJSON(ctx, r.client.url("employees", "departments"), &departments); err != nil {
		return nil, err
	}
	if departments == nil {
		departments = []string{}
	}
	return departments, nil
}

// ListFaceEmbeddings implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListFaceEmbeddings(ctx context.Context, id string) (employee.FaceEmbeddings, error) {
	var embeddings employee.FaceEmbeddings
	if err := r.client.getJSON(ctx, r.client.url("employees", id, "face-embeddings"), &embeddings); err != nil {
		return employee.FaceEmbeddings{}, notFoundAs(err, employee.ErrEmployeeNotFound)
	}
	if embeddings.Faces == nil {
		embeddings.Faces = []employee.FaceEmbedding{}
	}
	return embeddings, nil
}

// DeleteFaceEmbedding implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) DeleteFaceEmbedding(ctx context.Context, id string, embeddingID string) error {
	err := r.client.sendJSON(ctx, http.MethodDelete, r.client.url("employees", id, "face-embeddings", embeddingID), nil, nil)
	return notFoundAs(err, employee.ErrFaceEmbeddingNotFound)
}

// CreateWithPhoto implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) CreateWithPhoto(ctx context.Context, req employee.CreateWithPhotoRequest) (map[string]any, error) {
	fields := map[string]string{
		"employee_id": req.EmployeeID,
		"name":        req.Name,
		"department":  req.Department,
		"position":    req.Position,
		"email":       req.Email,
		"phone":       req.Phone,
	}

	var result map[string]any
	err := r.client.postMultipart(ctx, r.client.url("employees", "with-photo"), fields, formFile{field: "photo", photo: req.Photo}, &result)
	return result, err
}

// UploadFace implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) UploadFace(ctx context.Context, req employee.FaceUploadRequest) (map[string]any, error) {
	var result map[string]any
	err := r.client.postMultipart(ctx, r.client.url("employees", req.EmployeeID, "upload-face"), nil, formFile{field: "file", photo: req.Photo}, &result)
	if err != nil {
		return nil, notFoundAs(err, employee.ErrEmployeeNotFound)
	}
	return result, nil
}

// UploadPhoto implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) UploadPhoto(ctx context.Context, req employee.FaceUploadRequest) (map[string]any, error) {
	var result map[string]any
	err := r.client.postMultipart(ctx, r.client.url("employees", req.EmployeeID, "photos", "upload"), nil, formFile{field: "photo", photo: req.Photo}, &result)
	if err != nil {
		return nil, notFoundAs(err, employee.ErrEmployeeNotFound)
	}
	return result, nil
}
