package storage

import (
	"context"
	"time"
)

// IObjectStorage интерфейс для работы с S3-совместимым хранилищем (MinIO)
type IObjectStorage interface {
	PutFile(ctx context.Context, path string, data []byte, contentType string) error
	GetFile(ctx context.Context, path string) ([]byte, error)
	GetPresignedURL(ctx context.Context, path, downloadName string, expires time.Duration) (string, error)
}
