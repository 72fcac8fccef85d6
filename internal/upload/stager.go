// Package upload stages multipart file uploads on local disk.
//
// The Stager plays the role of the upload collaborator: it accepts the file
// part of a multipart request, writes it under a private name in its
// directory, and hands back a domain.UploadedFile. The staged file belongs to
// the stager until the caller reads it; callers release it with Remove.
package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/ceron-eng/autores-gateway/internal/domain"
)

// Stager writes uploaded files into Dir.
type Stager struct {
	dir       string
	maxMemory int64
}

// NewStager creates dir if needed and returns a Stager that keeps up to
// maxMemory bytes of each multipart form in memory while parsing.
func NewStager(dir string, maxMemory int64) (*Stager, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Stager{dir: dir, maxMemory: maxMemory}, nil
}

// AcceptUpload stages the file sent in the given form field. Requests that are
// not multipart, or that have no such field, yield domain.ErrInputMissing.
// Other body fields stay readable through r.PostFormValue afterwards.
func (s *Stager) AcceptUpload(r *http.Request, field string) (*domain.UploadedFile, error) {
	if err := r.ParseMultipartForm(s.maxMemory); err != nil {
		if errors.Is(err, http.ErrNotMultipart) || errors.Is(err, http.ErrMissingBoundary) {
			return nil, domain.ErrInputMissing
		}
		return nil, fmt.Errorf("failed to parse multipart form: %w", err)
	}

	src, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, domain.ErrInputMissing
		}
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	return s.stage(src, header)
}

func (s *Stager) stage(src multipart.File, header *multipart.FileHeader) (*domain.UploadedFile, error) {
	path := filepath.Join(s.dir, uuid.NewString())
	dst, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to create staged file: %w", err)
	}

	n, copyErr := io.Copy(dst, src)
	closeErr := dst.Close()
	if err := errors.Join(copyErr, closeErr); err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("failed to write staged file: %w", err)
	}

	return &domain.UploadedFile{
		OriginalName: header.Filename,
		TempPath:     path,
		Size:         n,
		ContentType:  header.Header.Get("Content-Type"),
	}, nil
}

// Read returns the staged content of f.
func (s *Stager) Read(f *domain.UploadedFile) ([]byte, error) {
	data, err := os.ReadFile(f.TempPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read staged file: %w", err)
	}
	return data, nil
}

// Remove deletes the staged copy of f. Removing an already removed file is not an error.
func (s *Stager) Remove(f *domain.UploadedFile) error {
	if err := os.Remove(f.TempPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove staged file: %w", err)
	}
	return nil
}
