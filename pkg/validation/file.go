package validation

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"slices"
	"strings"

	"gedoc/config"
	apperrors "gedoc/pkg/errors"
)

// ValidateFile confere tamanho e tipo MIME antes de qualquer gravação.
// O tipo é detectado pelo conteúdo (primeiros 512 bytes), não pela extensão
// nem pelo Content-Type informado pelo cliente.
func ValidateFile(fileHeader *multipart.FileHeader, file io.ReadSeeker, contextName string) error {
	rules, ok := config.UploadContexts[contextName]
	if !ok {
		return fmt.Errorf("contexto de upload desconhecido: %q", contextName)
	}

	if rules.MaxSizeMB > 0 {
		maxSizeBytes := rules.MaxSizeMB * 1024 * 1024
		if fileHeader.Size > maxSizeBytes {
			return apperrors.NewValidationError(
				fmt.Sprintf("arquivo de %.2f MB excede o limite de %d MB", float64(fileHeader.Size)/1024/1024, rules.MaxSizeMB),
				nil,
			)
		}
	}

	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return fmt.Errorf("falha ao ler o arquivo: %w", err)
	}
	buffer = buffer[:n]
	// O cursor precisa voltar ao início antes da gravação.
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("falha ao reposicionar o arquivo: %w", err)
	}

	mimeType := resolveMimeType(http.DetectContentType(buffer), fileHeader.Filename, buffer)
	if !slices.Contains(rules.AllowedMimeTypes, mimeType) {
		return apperrors.NewValidationError(fmt.Sprintf("formato de arquivo não permitido: %s", mimeType), nil)
	}

	return nil
}

// Cabeçalho dos contêineres OLE (doc/xls antigos).
var oleSignature = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

// resolveMimeType desambigua os contêineres que o sniffing não distingue:
// OOXML é um zip comum e os formatos OLE antigos caem em octet-stream. A
// extensão indica qual documento o contêiner carrega; para OLE a assinatura
// do cabeçalho ainda é exigida.
func resolveMimeType(mimeType, filename string, header []byte) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch mimeType {
	case "application/zip":
		switch ext {
		case ".docx":
			return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
		case ".xlsx":
			return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		}
	case "application/octet-stream":
		if bytes.HasPrefix(header, oleSignature) {
			switch ext {
			case ".doc":
				return "application/msword"
			case ".xls":
				return "application/vnd.ms-excel"
			}
		}
	}
	return mimeType
}
