package apiclient

import (
	"assetconsole/models"
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
)

const jsonContentType = "application/json"

// RequestBody is a request-building strategy chosen by the operation.
type RequestBody interface {
	Encode() (io.Reader, string, error)
}

type jsonBody struct {
	value any
}

// JSON encodes v as the request body.
func JSON(v any) RequestBody {
	return jsonBody{value: v}
}

func (b jsonBody) Encode() (io.Reader, string, error) {
	data, err := json.Marshal(b.value)
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode json body: %w", err)
	}
	return bytes.NewReader(data), jsonContentType, nil
}

type formField struct {
	name  string
	value string
}

type formFile struct {
	name string
	file *models.ImageFile
}

// Form is a multipart body. Parts are written in the order they were added.
type Form struct {
	fields []formField
	files  []formFile
}

func NewForm() *Form {
	return &Form{}
}

func (f *Form) Field(name, value string) *Form {
	f.fields = append(f.fields, formField{name: name, value: value})
	return f
}

// OptionalField adds the field only when value is set.
func (f *Form) OptionalField(name string, value *string) *Form {
	if value != nil {
		f.Field(name, *value)
	}
	return f
}

// File adds a file part only when file is set.
func (f *Form) File(name string, file *models.ImageFile) *Form {
	if file != nil && file.Data != nil {
		f.files = append(f.files, formFile{name: name, file: file})
	}
	return f
}

func (f *Form) Encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, field := range f.fields {
		if err := w.WriteField(field.name, field.value); err != nil {
			return nil, "", fmt.Errorf("failed to write form field %s: %w", field.name, err)
		}
	}
	for _, part := range f.files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, part.name, fileName(part.file)))
		contentType := part.file.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		h.Set("Content-Type", contentType)

		pw, err := w.CreatePart(h)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create form file %s: %w", part.name, err)
		}
		if _, err := io.Copy(pw, part.file.Data); err != nil {
			return nil, "", fmt.Errorf("failed to copy form file %s: %w", part.name, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close multipart body: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

func fileName(file *models.ImageFile) string {
	if file.Name == "" {
		return "upload"
	}
	return file.Name
}
