package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// IsValidTimeOfDay checks a 24-hour "HH:MM" string.
func IsValidTimeOfDay(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil && len(s) == 5
}

// IsValidPhoneNumber accepts Vietnamese numbers: 0xxxxxxxxx, 84xxxxxxxxx or +84xxxxxxxxx.
func IsValidPhoneNumber(phone string) bool {
	// Remove spaces, dots and dashes
	phone = strings.NewReplacer(" ", "", "-", "", ".", "").Replace(phone)

	switch {
	case strings.HasPrefix(phone, "+84"):
		phone = "0" + strings.TrimPrefix(phone, "+84")
	case strings.HasPrefix(phone, "84") && len(phone) == 11:
		phone = "0" + strings.TrimPrefix(phone, "84")
	}

	return len(phone) == 10 && strings.HasPrefix(phone, "0") && IsNumeric(phone)
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

// Code validation: employee and device codes such as EMP001, CAM-01, gate_2
var codeRegex = regexp.MustCompile(`^[A-Za-z0-9._-]{1,50}$`)

func IsValidCode(code string) bool {
	return codeRegex.MatchString(code)
}

// IsValidIPAddress checks a dotted IPv4 address.
var ipv4Regex = regexp.MustCompile(`^((25[0-5]|2[0-4]\d|1\d\d|[1-9]?\d)\.){3}(25[0-5]|2[0-4]\d|1\d\d|[1-9]?\d)$`)

func IsValidIPAddress(ip string) bool {
	return ipv4Regex.MatchString(ip)
}

// IsValidDateTime checks if a string is a valid ISO8601 timestamp.
// Accepts formats like: "2024-01-15T10:30:00Z" or "2024-01-15T10:30:00+07:00"
func IsValidDateTime(dateTimeStr string) (time.Time, bool) {
	// Try RFC3339 format (ISO8601 with timezone)
	t, err := time.Parse(time.RFC3339, dateTimeStr)
	if err == nil {
		return t, true
	}

	// Try RFC3339Nano format (with nanoseconds)
	t, err = time.Parse(time.RFC3339Nano, dateTimeStr)
	if err == nil {
		return t, true
	}

	return time.Time{}, false
}
