package http

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/employee"
	"github.com/cmlabs-hris/face-attendance-dashboard/internal/pkg/validator"
)

const multipartMemory = 32 << 20

// getIntQueryParam gets an int query parameter with a default value
func getIntQueryParam(r *http.Request, key string, defaultVal int) (int, error) {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal, nil
	}
	intVal, err := strconv.Atoi(val)
	if err != nil {
		return 0, validator.ValidationErrors{{Field: key, Message: key + " must be an integer"}}
	}
	return intVal, nil
}

func queryParam(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}

// readPhoto reads one uploaded image from a parsed multipart form. A missing
// part yields a nil photo so request validation can report it.
func readPhoto(r *http.Request, field string) (*employee.Photo, error) {
	file, header, err := r.FormFile(field)
	if err == http.ErrMissingFile {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, employee.MaxPhotoBytes+1))
	if err != nil {
		return nil, err
	}
	if len(data) > employee.MaxPhotoBytes {
		return nil, employee.ErrPhotoTooLarge
	}

	return &employee.Photo{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func parseMultipart(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, employee.MaxPhotoBytes+multipartMemory)
	return r.ParseMultipartForm(multipartMemory)
}
