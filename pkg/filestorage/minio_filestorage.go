package filestorage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"gedoc/pkg/config"
)

const presignExpiry = 7 * 24 * time.Hour

// MinIOFileStorage guarda os arquivos em um bucket S3-compatível.
type MinIOFileStorage struct {
	client *minio.Client
	bucket string
}

func NewMinIOFileStorage(cfg config.MinIOConfig) (*MinIOFileStorage, error) {
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("credenciais do MinIO não configuradas")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("falha ao criar cliente MinIO: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("falha ao verificar bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("falha ao criar bucket: %w", err)
		}
	}

	return &MinIOFileStorage{client: client, bucket: cfg.Bucket}, nil
}

func (s *MinIOFileStorage) Save(ctx context.Context, file io.Reader, size int64, originalName, contentType, prefix string) (StoredFile, error) {
	ext := filepath.Ext(originalName)
	key := fmt.Sprintf("%s/%s/%s%s", prefix, time.Now().Format("2006/01/02"), uuid.New().String(), ext)

	_, err := s.client.PutObject(ctx, s.bucket, key, file, size, minio.PutObjectOptions{
		ContentType: contentType,
		UserMetadata: map[string]string{
			"original-name": originalName,
		},
	})
	if err != nil {
		return StoredFile{}, fmt.Errorf("falha ao enviar objeto: %w", err)
	}

	signedURL, err := s.client.PresignedGetObject(ctx, s.bucket, key, presignExpiry, url.Values{})
	if err != nil {
		return StoredFile{}, fmt.Errorf("falha ao assinar URL do objeto: %w", err)
	}

	return StoredFile{Key: key, URL: signedURL.String()}, nil
}

func (s *MinIOFileStorage) Delete(ctx context.Context, key string) error {
	return s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
}
