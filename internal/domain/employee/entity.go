package employee

type Employee struct {
	ID         int64  `json:"id"`
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Position   string `json:"position,omitempty"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Status     string `json:"status,omitempty"`
	CreatedAt  string `json:"created_at"`
}

// FaceEmbedding describes one enrolled face template of an employee.
type FaceEmbedding struct {
	ID         int64   `json:"id"`
	Confidence float64 `json:"confidence"`
	Source     string  `json:"source"`
	IsPrimary  bool    `json:"is_primary"`
	CreatedAt  string  `json:"created_at"`
}

type FaceEmbeddings struct {
	FaceCount int             `json:"face_count"`
	Faces     []FaceEmbedding `json:"faces"`
}

// MaxPhotoBytes bounds an uploaded face photo.
const MaxPhotoBytes = 10 << 20

// Photo is an image ready to be forwarded to the recognition backend.
type Photo struct {
	Filename    string
	ContentType string
	Data        []byte
}
