package common

import (
	"errors"
	"io"
	"net/http"
)

const multipartMemory = 32 << 20

// FileUpload is a file received in a multipart request.
type FileUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.ReadCloser
}

func (f *FileUpload) Close() error {
	if f == nil || f.Content == nil {
		return nil
	}
	return f.Content.Close()
}

// Kind classifies the upload by content type.
func (f *FileUpload) Kind() (MediaFileType, bool) {
	return DetectFileType(f.ContentType)
}

// ParseMultipart caps the body at maxBytes and parses the form.
func ParseMultipart(w http.ResponseWriter, r *http.Request, maxBytes int64) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return InvalidArgument("upload exceeds the %d byte limit", maxBytes)
		}
		return InvalidArgument("invalid multipart form")
	}
	return nil
}

// FormFile returns the named file, or nil when the field is absent. The
// content type falls back to the file extension when the client sent none.
func FormFile(r *http.Request, field string) (*FileUpload, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, InvalidArgument("invalid %s file", field)
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = ContentTypeForFilename(header.Filename)
	}
	return &FileUpload{
		Filename:    header.Filename,
		ContentType: contentType,
		Size:        header.Size,
		Content:     file,
	}, nil
}
