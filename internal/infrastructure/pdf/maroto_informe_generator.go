// Package pdf implementa la representación imprimible del informe de
// inventario usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Negocio + "Informe de Inventario" + período         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  MÉTRICAS: Entradas | Consumos | Stock | Valor               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Entradas | Consumos | Stock               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/cafeavellaneda/almacen-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoInformeGenerator implementa informes.InformePDFGenerator con Maroto v2.
type MarotoInformeGenerator struct{}

// NewMarotoInformeGenerator construye el generador.
func NewMarotoInformeGenerator() *MarotoInformeGenerator { return &MarotoInformeGenerator{} }

// GenerarInformePDF genera el PDF del informe y devuelve sus bytes.
func (g *MarotoInformeGenerator) GenerarInformePDF(informe *dto.InformeResponse, negocio string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Informe de Inventario", true).
		WithAuthor(negocio, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(informe, negocio))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(metricasRow(informe.Metricas))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(tablaHeaderRow())
	for i, p := range informe.Productos {
		m.AddRows(productoRow(p, i%2 == 1))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generar PDF del informe: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(informe *dto.InformeResponse, negocio string) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(negocio, props.Text{Size: 14, Style: fontstyle.Bold, Color: colorPrimary}),
			text.New("Informe de Inventario", props.Text{Top: 7, Size: 10, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Período: "+informe.Periodo, props.Text{Size: 10, Align: align.Right}),
		),
	)
}

func metricasRow(m dto.InformeMetricas) core.Row {
	celda := func(titulo, valor string) core.Col {
		return col.New(3).Add(
			text.New(titulo, props.Text{Size: 8, Color: colorGray}),
			text.New(valor, props.Text{Top: 4, Size: 11, Style: fontstyle.Bold}),
		)
	}
	return row.New(14).Add(
		celda("Entradas", m.Entradas.String()),
		celda("Consumos", m.Consumos.String()),
		celda("Stock actual", m.StockActual.String()),
		celda("Valor inventario", "$ "+m.ValorInventario.StringFixed(2)),
	)
}

func tablaHeaderRow() core.Row {
	encabezado := func(size int, titulo string, alineacion align.Type) core.Col {
		return col.New(size).Add(
			text.New(titulo, props.Text{Size: 9, Style: fontstyle.Bold, Color: colorWhite, Align: alineacion}),
		)
	}
	return row.New(7).Add(
		encabezado(6, "Producto", align.Left),
		encabezado(2, "Entradas", align.Right),
		encabezado(2, "Consumos", align.Right),
		encabezado(2, "Stock", align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func productoRow(p dto.InformeProducto, sombreada bool) core.Row {
	r := row.New(6).Add(
		col.New(6).Add(text.New(p.Nombre, props.Text{Size: 8})),
		col.New(2).Add(text.New(p.Entradas.String(), props.Text{Size: 8, Align: align.Right})),
		col.New(2).Add(text.New(p.Consumos.String(), props.Text{Size: 8, Align: align.Right})),
		col.New(2).Add(text.New(p.Stock.String(), props.Text{Size: 8, Align: align.Right})),
	)
	if sombreada {
		r.WithStyle(&props.Cell{BackgroundColor: &props.Color{Red: 240, Green: 243, Blue: 247}})
	}
	return r
}
