package config

type UploadConfig struct {
	AllowedMimeTypes []string
	MaxSizeMB        int64
	PathPrefix       string
}

// UploadContexts define as regras de upload por contexto de uso.
var UploadContexts = map[string]UploadConfig{
	"documento": {
		AllowedMimeTypes: []string{
			"application/pdf",
			"image/jpeg",
			"image/png",
			"image/gif",
			"image/webp",
			"application/msword",
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			"application/vnd.ms-excel",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			"text/plain; charset=utf-8",
		},
		MaxSizeMB:  10,
		PathPrefix: "documentos",
	},
}
