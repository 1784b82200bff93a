package employee

import (
	"strings"

	"github.com/cmlabs-hris/face-attendance-dashboard/internal/pkg/validator"
)

var validStatuses = []string{"active", "inactive"}

type CreateEmployeeRequest struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Position   string `json:"position,omitempty"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Status     string `json:"status,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	r.normalize()

	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	} else if !validator.IsValidCode(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id may contain only letters, digits, '.', '_' and '-'"})
	}
	errs = append(errs, validateProfile(r.Name, r.Email, r.Phone, r.Status)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *CreateEmployeeRequest) normalize() {
	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	r.Name = strings.TrimSpace(r.Name)
	r.Department = strings.TrimSpace(r.Department)
	r.Position = strings.TrimSpace(r.Position)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Status = strings.TrimSpace(r.Status)
}

// UpdateEmployeeRequest replaces an employee's profile. ID is the backend's
// numeric id or the employee code, taken from the URL.
type UpdateEmployeeRequest struct {
	ID string `json:"-"`
	CreateEmployeeRequest
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if err := r.CreateEmployeeRequest.Validate(); err != nil {
		errs = append(errs, err.(validator.ValidationErrors)...)
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CreateWithPhotoRequest is the multipart form of an employee created together
// with the first face photo.
type CreateWithPhotoRequest struct {
	CreateEmployeeRequest
	Photo *Photo
}

func (r *CreateWithPhotoRequest) Validate() error {
	var errs validator.ValidationErrors
	if err := r.CreateEmployeeRequest.Validate(); err != nil {
		errs = append(errs, err.(validator.ValidationErrors)...)
	}
	if r.Photo == nil || len(r.Photo.Data) == 0 {
		errs = append(errs, validator.ValidationError{Field: "photo", Message: ErrPhotoRequired.Error()})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// FaceUploadRequest adds a face photo to an existing employee.
type FaceUploadRequest struct {
	EmployeeID string
	Photo      *Photo
}

func (r *FaceUploadRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if r.Photo == nil || len(r.Photo.Data) == 0 {
		errs = append(errs, validator.ValidationError{Field: "photo", Message: ErrPhotoRequired.Error()})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ListEmployeesFilter narrows the roster; filtering happens after the fetch.
type ListEmployeesFilter struct {
	Search     string
	Department string
	Status     string
}

func (f ListEmployeesFilter) Match(e Employee) bool {
	if f.Department != "" && e.Department != f.Department {
		return false
	}
	if f.Status != "" && e.Status != f.Status {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(e.Name), q) &&
			!strings.Contains(strings.ToLower(e.EmployeeID), q) &&
			!strings.Contains(strings.ToLower(e.Email), q) {
			return false
		}
	}
	return true
}

func validateProfile(name, email, phone, status string) validator.ValidationErrors {
	var errs validator.ValidationErrors
	if validator.IsEmpty(name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	} else if len(name) > 100 {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must be at most 100 characters"})
	}
	if email != "" && !validator.IsValidEmail(email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email format"})
	}
	if phone != "" && !validator.IsValidPhoneNumber(phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "invalid phone number"})
	}
	if status != "" && !validator.IsInSlice(status, validStatuses) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be active or inactive"})
	}
	return errs
}
