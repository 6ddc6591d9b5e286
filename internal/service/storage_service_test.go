package service

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tilemart/tilemart/internal/config"
	"github.com/tilemart/tilemart/internal/xe"
	"go.uber.org/zap"
)

func newDiskStorage(t *testing.T) (*DiskStorage, string) {
	dir := t.TempDir()
	s := NewDiskStorage(zap.NewNop(), config.UploadConf{Dir: dir, BaseURL: "/uploads"})
	return s, dir
}

func TestDiskStoragePut(t *testing.T) {
	s, dir := newDiskStorage(t)

	content := []byte("fake-jpeg-bytes")
	url, err := s.Put("portfolio", "현장사진.jpg", int64(len(content)), bytes.NewReader(content))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/images/portfolio/"))
	assert.True(t, strings.HasSuffix(url, ".jpg"))

	saved, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(url, "/uploads/")))
	require.NoError(t, err)
	assert.Equal(t, content, saved)
}

func TestDiskStorageRejectsUnknownExtension(t *testing.T) {
	s, _ := newDiskStorage(t)

	_, err := s.Put("portfolio", "malware.exe", 10, bytes.NewReader([]byte("0123456789")))
	assert.ErrorIs(t, err, xe.ErrInvalidUpload)
}

func TestDiskStorageRejectsOversizedFile(t *testing.T) {
	s, _ := newDiskStorage(t)

	_, err := s.Put("portfolio", "big.jpg", MaxUploadSize+1, bytes.NewReader(nil))
	assert.ErrorIs(t, err, xe.ErrUploadTooLarge)
}

func TestDiskStorageDefaultFolder(t *testing.T) {
	s, _ := newDiskStorage(t)

	url, err := s.Put("", "a.png", 3, bytes.NewReader([]byte("png")))
	require.NoError(t, err)
	assert.Contains(t, url, "/images/etc/")
}
