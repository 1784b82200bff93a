package restapi

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/employee"
)

type formFile struct {
	field string
	photo *employee.Photo
}

func (c *Client) postMultipart(ctx context.Context, endpoint string, fields map[string]string, file formFile, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for name, value := range fields {
		if value == "" {
			continue
		}
		if err := w.WriteField(name, value); err != nil {
			return fmt.Errorf("write field %s: %w", name, err)
		}
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, file.field, file.photo.Filename))
	contentType := file.photo.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)

	part, err := w.CreatePart(header)
	if err != nil {
		return fmt.Errorf("create part %s: %w", file.field, err)
	}
	if _, err := part.Write(file.photo.Data); err != nil {
		return fmt.Errorf("write part %s: %w", file.field, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close multipart body: %w", err)
	}

	return c.do(ctx, http.MethodPost, endpoint, bytes.NewReader(buf.Bytes()), w.FormDataContentType(), out)
}
