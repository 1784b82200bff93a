package employee

import "context"

type EmployeeService interface {
	List(ctx context.Context, filter ListEmployeesFilter) ([]Employee, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (Employee, error)
	Delete(ctx context.Context, id string) error
	ListDepartments(ctx context.Context) ([]string, error)

	ListFaceEmbeddings(ctx context.Context, id string) (FaceEmbeddings, error)
	DeleteFaceEmbedding(ctx context.Context, id string, embeddingID string) error

	// Photo uploads are normalized before they are forwarded.
	CreateWithPhoto(ctx context.Context, req CreateWithPhotoRequest) (map[string]any, error)
	UploadFace(ctx context.Context, req FaceUploadRequest) (map[string]any, error)
	UploadPhoto(ctx context.Context, req FaceUploadRequest) (map[string]any, error)
}

// PhotoNormalizer rewrites an uploaded image into the form the backend expects.
type PhotoNormalizer interface {
	Normalize(photo Photo) (Photo, error)
}
