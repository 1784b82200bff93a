package employee

import (
	"context"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/employee"
	"github.com/cmlabs-hris/face-attendance-dashboard/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	normalizer   employee.PhotoNormalizer
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, normalizer employee.PhotoNormalizer) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		normalizer:   normalizer,
	}
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.ListEmployeesFilter) ([]employee.Employee, error) {
	employees, err := s.employeeRepo.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	filter.Search = strings.TrimSpace(filter.Search)
	filtered := make([]employee.Employee, 0, len(employees))
	for _, e := range employees {
		if filter.Match(e) {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}
	return s.employeeRepo.Create(ctx, req)
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}
	return s.employeeRepo.Update(ctx, req)
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	if err := validateID("id", id); err != nil {
		return err
	}
	return s.employeeRepo.Delete(ctx, id)
}

// ListDepartments implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListDepartments(ctx context.Context) ([]string, error) {
	return s.employeeRepo.ListDepartments(ctx)
}

// ListFaceEmbeddings implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListFaceEmbeddings(ctx context.Context, id string) (employee.FaceEmbeddings, error) {
	if err := validateID("id", id); err != nil {
		return employee.FaceEmbeddings{}, err
	}
	return s.employeeRepo.ListFaceEmbeddings(ctx, id)
}

// DeleteFaceEmbedding implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteFaceEmbedding(ctx context.Context, id string, embeddingID string) error {
	var errs validator.ValidationErrors
	if err := validateID("id", id); err != nil {
		errs = append(errs, err.(validator.ValidationErrors)...)
	}
	if !validator.IsNumeric(embeddingID) {
		errs = append(errs, validator.ValidationError{Field: "embedding_id", Message: "embedding_id must be numeric"})
	}
	if len(errs) > 0 {
		return errs
	}
	return s.employeeRepo.DeleteFaceEmbedding(ctx, id, embeddingID)
}

// CreateWithPhoto implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateWithPhoto(ctx context.Context, req employee.CreateWithPhotoRequest) (map[string]any, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	photo, err := s.normalizer.Normalize(*req.Photo)
	if err != nil {
		return nil, err
	}
	req.Photo = &photo
	return s.employeeRepo.CreateWithPhoto(ctx, req)
}

// UploadFace implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UploadFace(ctx context.Context, req employee.FaceUploadRequest) (map[string]any, error) {
	if err := s.prepareUpload(&req); err != nil {
		return nil, err
	}
	return s.employeeRepo.UploadFace(ctx, req)
}

// UploadPhoto implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UploadPhoto(ctx context.Context, req employee.FaceUploadRequest) (map[string]any, error) {
	if err := s.prepareUpload(&req); err != nil {
		return nil, err
	}
	return s.employeeRepo.UploadPhoto(ctx, req)
}

func (s *EmployeeServiceImpl) prepareUpload(req *employee.FaceUploadRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if err := validateID("id", req.EmployeeID); err != nil {
		return err
	}
	photo, err := s.normalizer.Normalize(*req.Photo)
	if err != nil {
		return err
	}
	req.Photo = &photo
	return nil
}

// validateID accepts the backend's numeric id or an employee code.
func validateID(field, id string) error {
	if validator.IsEmpty(id) {
		return validator.ValidationErrors{{Field: field, Message: field + " is required"}}
	}
	if !validator.IsValidCode(id) {
		return validator.ValidationErrors{{Field: field, Message: "invalid " + field}}
	}
	return nil
}
