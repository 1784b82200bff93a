package device

import (
	"strings"

	"github.com/cmlabs-hris/face-attendance-dashboard/internal/pkg/validator"
)

// CreateDeviceRequest registers a kiosk. An empty DeviceID lets the backend
// generate one.
type CreateDeviceRequest struct {
	DeviceID  string  `json:"device_id,omitempty"`
	Name      *string `json:"name,omitempty"`
	IPAddress *string `json:"ip_address,omitempty"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

func (r *CreateDeviceRequest) Validate() error {
	r.DeviceID = strings.TrimSpace(r.DeviceID)

	var errs validator.ValidationErrors
	if r.DeviceID != "" && !validator.IsValidCode(r.DeviceID) {
		errs = append(errs, validator.ValidationError{Field: "device_id", Message: "device_id may contain only letters, digits, '.', '_' and '-'"})
	}
	errs = append(errs, validateFields(r.Name, r.IPAddress)...)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateDeviceRequest struct {
	ID        string  `json:"-"`
	Name      *string `json:"name,omitempty"`
	IPAddress *string `json:"ip_address,omitempty"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

func (r *UpdateDeviceRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	errs = append(errs, validateFields(r.Name, r.IPAddress)...)
	if r.Name == nil && r.IPAddress == nil && r.IsActive == nil {
		errs = append(errs, validator.ValidationError{Field: "body", Message: "at least one field must be provided"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateFields(name, ip *string) validator.ValidationErrors {
	var errs validator.ValidationErrors
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		*name = trimmed
		if trimmed == "" {
			errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not be blank"})
		} else if len(trimmed) > 100 {
			errs = append(errs, validator.ValidationError{Field: "name", Message: "name must be at most 100 characters"})
		}
	}
	if ip != nil && *ip != "" && !validator.IsValidIPAddress(*ip) {
		errs = append(errs, validator.ValidationError{Field: "ip_address", Message: "invalid IPv4 address"})
	}
	return errs
}
