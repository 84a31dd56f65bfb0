package usecase

import (
	"encoding/json"
	"time"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
)

// Versión del formato de exportación.
const exportFormatVersion = "1.0"

// ExportUseCase exporta e importa el documento completo de inventario.
type ExportUseCase struct {
	docRepo repository.DocumentRepository
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(docRepo repository.DocumentRepository) *ExportUseCase {
	return &ExportUseCase{docRepo: docRepo}
}

// Export serializa el documento completo con sobre de metadatos, en JSON legible.
func (uc *ExportUseCase) Export() ([]byte, error) {
	doc, err := uc.docRepo.Snapshot()
	if err != nil {
		return nil, err
	}
	out := dto.ExportDocument{
		Metadata: dto.ExportMetadata{
			Version:    exportFormatVersion,
			ExportDate: time.Now(),
			Totals: dto.ExportTotals{
				Categories: len(doc.Categories),
				Products:   len(doc.Products),
				Movements:  len(doc.Movements),
			},
		},
		Categories:  doc.Categories,
		Products:    doc.Products,
		Movements:   doc.Movements,
		AuditLog:    doc.AuditLog,
		LastUpdated: doc.LastUpdated,
	}
	return json.MarshalIndent(out, "", "  ")
}

// Import reemplaza el documento con el contenido recibido. Si el JSON no parsea
// o no tiene la forma esperada falla con ErrInvalidImportFormat y el estado
// previo queda intacto.
func (uc *ExportUseCase) Import(data []byte) error {
	var in dto.ExportDocument
	if err := json.Unmarshal(data, &in); err != nil {
		return domain.ErrInvalidImportFormat
	}
	// La forma mínima exige los tres arreglos principales presentes.
	if in.Categories == nil || in.Products == nil || in.Movements == nil {
		return domain.ErrInvalidImportFormat
	}
	doc := &entity.Document{
		Categories:  in.Categories,
		Products:    in.Products,
		Movements:   in.Movements,
		AuditLog:    in.AuditLog,
		LastUpdated: in.LastUpdated,
	}
	return uc.docRepo.Restore(doc)
}
