package informes

import "github.com/cafeavellaneda/almacen-api/internal/application/dto"

// InformePDFGenerator renderiza un informe como documento PDF.
// Lo implementa la infraestructura (Maroto); la interfaz vive aquí para no
// acoplar la aplicación a la librería de PDF.
type InformePDFGenerator interface {
	GenerarInformePDF(informe *dto.InformeResponse, negocio string) ([]byte, error)
}

// PDFUseCase genera el informe del período y lo renderiza como PDF.
type PDFUseCase struct {
	informes  *InformesUseCase
	generator InformePDFGenerator
	negocio   string
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(informes *InformesUseCase, generator InformePDFGenerator, negocio string) *PDFUseCase {
	return &PDFUseCase{informes: informes, generator: generator, negocio: negocio}
}

// Generar produce los bytes del PDF para el filtro dado.
func (uc *PDFUseCase) Generar(q dto.InformeQuery) ([]byte, error) {
	informe, err := uc.informes.Generar(q)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerarInformePDF(informe, uc.negocio)
}
