// Package informes calcula las métricas de inventario que la pantalla de
// informes de la aplicación móvil mostraba: entradas y consumos del período,
// stock actual, valor de inventario, serie diaria y desglose por producto.
package informes

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cafeavellaneda/almacen-api/internal/application/dto"
	"github.com/cafeavellaneda/almacen-api/internal/domain/entity"
	domaininv "github.com/cafeavellaneda/almacen-api/internal/domain/inventory"
	"github.com/cafeavellaneda/almacen-api/internal/domain/repository"
)

// Períodos soportados.
const (
	PeriodoDia    = "dia"
	PeriodoSemana = "semana"
	PeriodoMes    = "mes"
)

// diasSerie es el largo fijo de la serie diaria, como en la pantalla original.
const diasSerie = 7

// InformesUseCase genera informes agregados a partir del snapshot.
type InformesUseCase struct {
	runner repository.SnapshotRunner
	now    func() time.Time
}

// NewInformesUseCase construye el caso de uso. now es inyectable para que
// los tests fijen el presente; nil usa time.Now.
func NewInformesUseCase(runner repository.SnapshotRunner, now func() time.Time) *InformesUseCase {
	if now == nil {
		now = time.Now
	}
	return &InformesUseCase{runner: runner, now: now}
}

// Generar calcula el informe para el filtro dado.
func (uc *InformesUseCase) Generar(q dto.InformeQuery) (*dto.InformeResponse, error) {
	var resp *dto.InformeResponse
	err := uc.runner.View(func(datos *entity.AppData) error {
		resp = uc.generar(datos, q)
		return nil
	})
	return resp, err
}

func (uc *InformesUseCase) generar(datos *entity.AppData, q dto.InformeQuery) *dto.InformeResponse {
	periodo := q.Periodo
	switch periodo {
	case PeriodoDia, PeriodoSemana, PeriodoMes:
	default:
		periodo = PeriodoSemana
	}
	ahora := uc.now()
	desde := ahora.AddDate(0, 0, -diasPeriodo(periodo))

	productos := productosFiltrados(datos, q)
	movs := movimientosFiltrados(datos.Movimientos, desde, ahora)

	resp := &dto.InformeResponse{
		Periodo: periodo,
		Metricas: dto.InformeMetricas{
			Entradas:        sumaPorTipo(movs, esEntrada),
			Consumos:        sumaPorTipo(movs, esConsumo),
			StockActual:     domaininv.StockTotal(productos),
			ValorInventario: domaininv.ValorInventario(productos),
		},
		Serie:     serieDiaria(datos.Movimientos, ahora),
		Productos: desglosePorProducto(productos, movs),
	}
	return resp
}

func diasPeriodo(periodo string) int {
	switch periodo {
	case PeriodoDia:
		return 1
	case PeriodoMes:
		return 30
	default:
		return 7
	}
}

// productosFiltrados reúne el stock a reportar: el central más los almacenes
// de los locales, o solo el local pedido, aplicando el filtro de categoría.
func productosFiltrados(datos *entity.AppData, q dto.InformeQuery) []entity.Producto {
	var fuentes [][]entity.Producto
	if q.LocalID == "" {
		fuentes = append(fuentes, datos.AlmacenCentral)
		for _, l := range datos.Locales {
			fuentes = append(fuentes, l.Almacen)
		}
	} else if idx := datos.BuscarLocal(q.LocalID); idx != -1 {
		fuentes = append(fuentes, datos.Locales[idx].Almacen)
	}

	var out []entity.Producto
	for _, fuente := range fuentes {
		for _, p := range fuente {
			if q.Categoria != "" && p.Categoria != q.Categoria {
				continue
			}
			out = append(out, p)
		}
	}
	return out
}

func movimientosFiltrados(movs []entity.Movimiento, desde, hasta time.Time) []entity.Movimiento {
	var out []entity.Movimiento
	for _, m := range movs {
		if m.Fecha.Before(desde) || m.Fecha.After(hasta) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Los suministros cuentan como entradas: son ingresos de stock al local.
func esEntrada(m entity.Movimiento) bool {
	return m.Tipo == entity.MovimientoSuministro || m.Tipo == entity.MovimientoEntrada
}

func esConsumo(m entity.Movimiento) bool {
	return m.Tipo == entity.MovimientoConsumo
}

func sumaPorTipo(movs []entity.Movimiento, match func(entity.Movimiento) bool) decimal.Decimal {
	total := decimal.Zero
	for _, m := range movs {
		if match(m) {
			total = total.Add(m.Cantidad)
		}
	}
	return total
}

// serieDiaria produce los últimos 7 días (el más antiguo primero) con las
// entradas y consumos de cada día.
func serieDiaria(movs []entity.Movimiento, ahora time.Time) []dto.InformeSeriePunto {
	serie := make([]dto.InformeSeriePunto, 0, diasSerie)
	for i := diasSerie - 1; i >= 0; i-- {
		dia := ahora.AddDate(0, 0, -i)
		inicio := time.Date(dia.Year(), dia.Month(), dia.Day(), 0, 0, 0, 0, dia.Location())
		fin := inicio.AddDate(0, 0, 1)

		punto := dto.InformeSeriePunto{
			Fecha:    inicio.Format("2006-01-02"),
			Entradas: decimal.Zero,
			Consumos: decimal.Zero,
		}
		for _, m := range movs {
			if m.Fecha.Before(inicio) || !m.Fecha.Before(fin) {
				continue
			}
			if esEntrada(m) {
				punto.Entradas = punto.Entradas.Add(m.Cantidad)
			} else if esConsumo(m) {
				punto.Consumos = punto.Consumos.Add(m.Cantidad)
			}
		}
		serie = append(serie, punto)
	}
	return serie
}

// desglosePorProducto agrupa entradas y consumos del período por nombre de
// producto, con el stock vigente de cada uno.
func desglosePorProducto(productos []entity.Producto, movs []entity.Movimiento) []dto.InformeProducto {
	stockPorNombre := map[string]decimal.Decimal{}
	var orden []string
	for _, p := range productos {
		if _, visto := stockPorNombre[p.Nombre]; !visto {
			orden = append(orden, p.Nombre)
			stockPorNombre[p.Nombre] = decimal.Zero
		}
		stockPorNombre[p.Nombre] = stockPorNombre[p.Nombre].Add(p.Cantidad)
	}

	out := make([]dto.InformeProducto, 0, len(orden))
	for _, nombre := range orden {
		fila := dto.InformeProducto{
			Nombre:   nombre,
			Entradas: decimal.Zero,
			Consumos: decimal.Zero,
			Stock:    stockPorNombre[nombre],
		}
		for _, m := range movs {
			if m.ProductoNombre != nombre {
				continue
			}
			if esEntrada(m) {
				fila.Entradas = fila.Entradas.Add(m.Cantidad)
			} else if esConsumo(m) {
				fila.Consumos = fila.Consumos.Add(m.Cantidad)
			}
		}
		out = append(out, fila)
	}
	return out
}
