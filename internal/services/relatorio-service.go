package services

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"gedoc/internal/repositories"
	"gedoc/pkg/types"
)

type RelatorioServiceInterface interface {
	ExportarDocumentos(ctx context.Context, filter types.Filter) (*excelize.File, string, error)
}

type RelatorioService struct {
	repo   repositories.RelatorioRepositoryInterface
	logger *zap.Logger
}

func NewRelatorioService(repo repositories.RelatorioRepositoryInterface, logger *zap.Logger) RelatorioServiceInterface {
	return &RelatorioService{repo: repo, logger: logger}
}

var relatorioCabecalho = []string{
	"ID", "Título", "Status", "Nº Protocolo", "Departamento", "Tipo de Documento",
	"Categoria", "Remetente", "Destinatário", "Data de Recebimento", "Data de Envio",
	"Criado por", "Criado em",
}

// ExportarDocumentos monta a planilha com os mesmos filtros da listagem.
func (s *RelatorioService) ExportarDocumentos(ctx context.Context, filter types.Filter) (*excelize.File, string, error) {
	linhas, err := s.repo.ListDocumentos(ctx, filter)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	const sheet = "Documentos"
	f.SetSheetName("Sheet1", sheet)

	for col, titulo := range relatorioCabecalho {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, titulo)
	}
	if estilo, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		inicio, _ := excelize.CoordinatesToCellName(1, 1)
		fim, _ := excelize.CoordinatesToCellName(len(relatorioCabecalho), 1)
		f.SetCellStyle(sheet, inicio, fim, estilo)
	}

	for i, linha := range linhas {
		valores := []any{
			linha.ID,
			linha.Titulo,
			linha.Status,
			linha.NumeroProtocolo.String,
			linha.Departamento,
			linha.TipoDocumento,
			linha.Categoria.String,
			linha.Remetente.String,
			linha.Destinatario.String,
			formatarData(linha.DataRecebimento.Ptr()),
			formatarData(linha.DataEnvio.Ptr()),
			linha.CriadoPor.String,
			linha.CreatedAt.Format("02/01/2006 15:04"),
		}
		for col, valor := range valores {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			f.SetCellValue(sheet, cell, valor)
		}
	}

	nomeArquivo := fmt.Sprintf("documentos_%s.xlsx", time.Now().Format("2006-01-02_150405"))
	return f, nomeArquivo, nil
}

func formatarData(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("02/01/2006")
}
