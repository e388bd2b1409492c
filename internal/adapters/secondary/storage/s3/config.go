package s3

import (
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Config struct {
	Host       string `envconfig:"HOST"`                          // localhost:9000
	AccessKey  string `envconfig:"ACCESS_KEY"`                    // minioadmin
	SecretKey  string `envconfig:"SECRET_KEY"`                    // minioadmin
	Bucket     string `envconfig:"BUCKET" default:"janampatri"`   // бакет для PDF-отчётов
	Region     string `envconfig:"REGION" default:"us-east-1"`    // без региона minio запрашивает location бакета
	UseSSL     bool   `envconfig:"USE_SSL" default:"false"`       // false для локальной разработки
	PresignTTL int    `envconfig:"PRESIGN_TTL" default:"15"`      // в минутах
	KeyPrefix  string `envconfig:"KEY_PREFIX" default:"reports/"` // префикс ключей объектов
}

// Enabled хранилище включается только при заданных адресе и ключе
func (c *Config) Enabled() bool {
	return c != nil && c.Host != "" && c.AccessKey != ""
}

func (c *Config) PresignExpiry() time.Duration {
	if c.PresignTTL <= 0 {
		return defaultPresignTTL
	}
	return time.Duration(c.PresignTTL) * time.Minute
}

// newMinio создаёт клиент без сетевых проверок
func (c *Config) newMinio() (*minio.Client, error) {
	client, err := minio.New(c.Host, &minio.Options{
		Creds:  credentials.NewStaticV4(c.AccessKey, c.SecretKey, ""),
		Secure: c.UseSSL,
		Region: c.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}
	return client, nil
}

// NewClient создаёт новый MinIO клиент и создаёт бакет, если его нет
func (c *Config) NewClient() (*minio.Client, error) {
	client, err := c.newMinio()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, c.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := client.MakeBucket(ctx, c.Bucket, minio.MakeBucketOptions{Region: c.Region}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", c.Bucket, err)
		}
	}

	return client, nil
}
