// internal/services/storage_service_test.go
package services

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fanwell/fanwell-backend/internal/config"
)

type memFile struct {
	*bytes.Reader
}

func (memFile) Close() error { return nil }

func evidenceFile(name string, size int, contentType string) (multipart.File, *multipart.FileHeader) {
	data := bytes.Repeat([]byte{0xAB}, size)
	header := &multipart.FileHeader{
		Filename: name,
		Size:     int64(size),
		Header:   textproto.MIMEHeader{"Content-Type": []string{contentType}},
	}
	return memFile{bytes.NewReader(data)}, header
}

func TestNewStorageServiceWithoutCredentials(t *testing.T) {
	svc, err := NewStorageService(&config.Config{})
	require.NoError(t, err)
	require.NotNil(t, svc, "local development must still get a usable service")
}

func TestUploadFileLocal(t *testing.T) {
	svc, err := NewStorageService(&config.Config{})
	require.NoError(t, err)

	file, header := evidenceFile("screenshot.png", 1024, "image/png")
	result, err := svc.UploadFile(file, header, EvidenceUploadOptions())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result.Key, "evidence/"), "key %q should live under the evidence folder", result.Key)
	assert.Contains(t, result.URL, result.Key)
	assert.Equal(t, int64(1024), result.Size)
	assert.Equal(t, "image/png", result.MimeType)
}

func TestUploadFileRejectsDisallowedType(t *testing.T) {
	svc, err := NewStorageService(&config.Config{})
	require.NoError(t, err)

	file, header := evidenceFile("payload.exe", 128, "application/octet-stream")
	_, err = svc.UploadFile(file, header, EvidenceUploadOptions())
	assert.Error(t, err)
}

func TestUploadFileRejectsOversized(t *testing.T) {
	svc, err := NewStorageService(&config.Config{})
	require.NoError(t, err)

	options := EvidenceUploadOptions()
	options.MaxSize = 64

	file, header := evidenceFile("big.png", 128, "image/png")
	_, err = svc.UploadFile(file, header, options)
	assert.Error(t, err)
}

func TestEvidenceViewURLPassthroughWithoutS3(t *testing.T) {
	svc, err := NewStorageService(&config.Config{})
	require.NoError(t, err)

	url := "http://localhost:8080/uploads/evidence/20260830_abcd1234.png"
	assert.Equal(t, url, svc.EvidenceViewURL(url))
}
