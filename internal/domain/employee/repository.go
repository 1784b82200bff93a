package employee

import "context"

// Roster is the read-only view of the employee list used by reporting.
type Roster interface {
	ListEmployees(ctx context.Context) ([]Employee, error)
}

// EmployeeRepository manages employees held by the recognition backend.
type EmployeeRepository interface {
	Roster
	Create(ctx context.Context, req CreateEmployeeRequest) (Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (Employee, error)
	Delete(ctx context.Context, id string) error
	ListDepartments(ctx context.Context) ([]string, error)

	ListFaceEmbeddings(ctx context.Context, id string) (FaceEmbeddings, error)
	DeleteFaceEmbedding(ctx context.Context, id string, embeddingID string) error

	CreateWithPhoto(ctx context.Context, req CreateWithPhotoRequest) (map[string]any, error)
	UploadFace(ctx context.Context, req FaceUploadRequest) (map[string]any, error)
	UploadPhoto(ctx context.Context, req FaceUploadRequest) (map[string]any, error)
}
