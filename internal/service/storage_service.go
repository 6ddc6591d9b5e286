package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/tilemart/tilemart/internal/config"
	"github.com/tilemart/tilemart/internal/xe"
	"github.com/tilemart/tilemart/pkg/nostd"
	"go.uber.org/zap"
)

// 업로드 허용 최대 크기 5MB
const MaxUploadSize = 5 << 20

// 확장자별 허용 이미지 형식
var allowedImageExts = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// Storage 업로드 파일 저장소
type Storage interface {
	// Put 파일을 저장하고 공개 URL을 반환한다.
	Put(folder, filename string, size int64, r io.Reader) (string, error)
}

// DiskStorage 로컬 디스크 저장소
type DiskStorage struct {
	logger  *zap.Logger
	dir     string
	baseURL string
}

// NewDiskStorage 디스크 저장소 생성
func NewDiskStorage(logger *zap.Logger, conf config.UploadConf) *DiskStorage {
	dir := conf.Dir
	if dir == "" {
		dir = "uploads"
	}
	baseURL := strings.TrimSuffix(conf.BaseURL, "/")
	if baseURL == "" {
		baseURL = "/uploads"
	}
	return &DiskStorage{
		logger:  logger,
		dir:     dir,
		baseURL: baseURL,
	}
}

// Put 이미지 저장. 확장자 검사 후 images/{folder}/{ts}-{rand}{ext} 키로 저장한다.
func (s *DiskStorage) Put(folder, filename string, size int64, r io.Reader) (string, error) {
	if size > MaxUploadSize {
		return "", xe.ErrUploadTooLarge
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedImageExts[ext]; !ok {
		return "", xe.ErrInvalidUpload
	}

	if folder == "" {
		folder = "etc"
	}

	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	key := path.Join("images", folder,
		fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), hex.EncodeToString(buf), ext))

	target, err := nostd.SafePathJoin(s.dir, key)
	if err != nil {
		return "", xe.ErrInvalidUpload
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", err
	}

	dst, err := os.Create(target)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	// 선언된 크기를 믿지 않고 실제 쓰기량도 제한한다.
	written, err := io.Copy(dst, io.LimitReader(r, MaxUploadSize+1))
	if err != nil {
		os.Remove(target)
		return "", err
	}
	if written > MaxUploadSize {
		os.Remove(target)
		return "", xe.ErrUploadTooLarge
	}

	s.logger.Info("file uploaded",
		zap.String("key", key),
		zap.Int64("size", written))
	return s.baseURL + "/" + key, nil
}
