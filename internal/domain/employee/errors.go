package employee

import "errors"

var (
	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrFaceEmbeddingNotFound = errors.New("face embedding not found")
	ErrPhotoRequired         = errors.New("photo is required")
	ErrPhotoTooLarge         = errors.New("photo exceeds the maximum upload size")
	ErrUnsupportedPhoto      = errors.New("photo must be a JPEG, PNG or WebP image")
)
