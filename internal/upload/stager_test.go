package upload

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ceron-eng/autores-gateway/internal/domain"
)

func multipartRequest(t *testing.T, fileField, fileName string, content []byte, fields map[string]string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileField != "" {
		part, err := w.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/autores/save-image", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func newTestStager(t *testing.T) (*Stager, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "uploads")
	s, err := NewStager(dir, 1<<20)
	require.NoError(t, err)
	return s, dir
}

func TestAcceptUpload_StagesFile(t *testing.T) {
	s, dir := newTestStager(t)
	content := []byte("fake image bytes")
	req := multipartRequest(t, "image", "retrato.jpg", content, map[string]string{"guid": "g-7"})

	f, err := s.AcceptUpload(req, "image")
	require.NoError(t, err)

	assert.Equal(t, "retrato.jpg", f.OriginalName)
	assert.Equal(t, int64(len(content)), f.Size)
	assert.Equal(t, dir, filepath.Dir(f.TempPath))
	assert.NotEqual(t, "retrato.jpg", filepath.Base(f.TempPath), "staged name must not come from the client")
	assert.Equal(t, "g-7", req.FormValue("guid"))

	data, err := s.Read(f)
	require.NoError(t, err)
	assert.Equal(t, content, data)

	require.NoError(t, s.Remove(f))
	_, err = os.Stat(f.TempPath)
	assert.True(t, os.IsNotExist(err))
	assert.NoError(t, s.Remove(f), "second remove is a no-op")
}

func TestAcceptUpload_MissingFile(t *testing.T) {
	s, _ := newTestStager(t)

	req := multipartRequest(t, "", "", nil, map[string]string{"guid": "g-7"})
	_, err := s.AcceptUpload(req, "image")
	assert.ErrorIs(t, err, domain.ErrInputMissing)

	req = multipartRequest(t, "other", "x.png", []byte("x"), nil)
	_, err = s.AcceptUpload(req, "image")
	assert.ErrorIs(t, err, domain.ErrInputMissing)
}

func TestAcceptUpload_NotMultipart(t *testing.T) {
	s, _ := newTestStager(t)

	req := httptest.NewRequest(http.MethodPost, "/autores/save-image", strings.NewReader(`{"guid":"g"}`))
	req.Header.Set("Content-Type", "application/json")

	_, err := s.AcceptUpload(req, "image")
	assert.ErrorIs(t, err, domain.ErrInputMissing)
}
