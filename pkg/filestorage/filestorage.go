package filestorage

import (
	"context"
	"io"
)

// StoredFile é o resultado de um upload: a chave no armazenamento e a URL
// pública (ou assinada) para download.
type StoredFile struct {
	Key string
	URL string
}

// FileStorage abstrai o destino físico dos arquivos. Implementações: MinIO
// (bucket S3-compatível) e disco local para desenvolvimento.
type FileStorage interface {
	Save(ctx context.Context, file io.Reader, size int64, originalName, contentType, prefix string) (StoredFile, error)
	Delete(ctx context.Context, key string) error
}
