// Package pdf implementa la hoja imprimible de una orden de compra.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Hospital + título  │  N° Orden + Fecha + Estado    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PROVEEDOR: Nombre                                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Tipo | Ítem | Cant | P.Unit | Total                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL + Fecha de entrega esperada                          │
//	│  NOTAS                                                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
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

	"github.com/jhoicas/hemis-api/internal/application/usecase"
	"github.com/jhoicas/hemis-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ usecase.OrderPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa usecase.OrderPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	hospitalName string
}

// NewMarotoPDFGenerator construye el generador. hospitalName encabeza la hoja.
func NewMarotoPDFGenerator(hospitalName string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{hospitalName: hospitalName}
}

// GenerateOrderPDF genera la hoja de la orden y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateOrderPDF(_ context.Context, order *entity.PurchaseOrder) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Orden de Compra "+order.OrderNumber, true).
		WithAuthor(g.hospitalName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(supplierRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(itemRow(order))

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(order))

	if order.Notes != "" {
		m.AddRows(line.NewRow(3))
		m.AddRows(notesRow(order))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: hospital (izq) y N° de orden + fecha + estado (der).
func (g *MarotoPDFGenerator) headerRow(order *entity.PurchaseOrder) core.Row {
	fecha := order.OrderDate.Format("02/01/2006")

	return row.New(20).Add(
		col.New(7).Add(
			text.New(g.hospitalName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Gestión de Inventario Hospitalario", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ORDEN DE COMPRA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(order.OrderNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New(fmt.Sprintf("Fecha: %s   |   Estado: %s", fecha, order.Status), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// supplierRow: datos del proveedor.
func supplierRow(order *entity.PurchaseOrder) core.Row {
	name := order.SupplierName
	if name == "" {
		name = "—"
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("PROVEEDOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
		),
	)
}

// tableHeaderRow: cabecera de la línea de pedido.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Tipo", 2, align.Left),
		h("Ítem", 5, align.Left),
		h("Cant.", 1, align.Center),
		h("Precio Unit.", 2, align.Right),
		h("Total", 2, align.Right),
	)
}

// itemRow: la línea única de la orden.
func itemRow(order *entity.PurchaseOrder) core.Row {
	return row.New(7).Add(
		col.New(2).Add(text.New(
			string(order.ItemType),
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(5).Add(text.New(
			order.ItemName,
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(1).Add(text.New(
			fmt.Sprintf("%d", order.Quantity),
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(2).Add(text.New(
			"$"+order.UnitPrice.StringFixed(2),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
		col.New(2).Add(text.New(
			"$"+order.TotalAmount.StringFixed(2),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
	)
}

// totalsRow: total de la orden y fecha de entrega esperada.
func totalsRow(order *entity.PurchaseOrder) core.Row {
	delivery := "—"
	if order.DeliveryDate != nil {
		delivery = order.DeliveryDate.Format("02/01/2006")
	}
	return row.New(14).Add(
		col.New(6).Add(
			text.New("Entrega esperada: "+delivery, props.Text{
				Size: 8, Top: 3, Color: colorGray,
			}),
		),
		col.New(3).Add(
			text.New("TOTAL:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Right: 2, Top: 2,
			}),
		),
		col.New(3).Add(
			text.New("$"+order.TotalAmount.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Right: 1, Top: 2,
			}),
		),
	)
}

// notesRow: notas libres de la orden.
func notesRow(order *entity.PurchaseOrder) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("NOTAS", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(order.Notes, props.Text{Size: 8, Top: 6, Color: colorGray}),
		),
	)
}
