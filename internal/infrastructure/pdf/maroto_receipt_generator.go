// Package pdf genera el recibo en PDF de una orden de venta confirmada.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────┐
//	│  HEADER: Bodega  │  N° de orden + Fecha + Cliente   │
//	│  ─────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto (SKU) | P.Unit | Subtotal   │
//	│  ─────────────────────────────────────────────────  │
//	│  TOTAL                                              │
//	└─────────────────────────────────────────────────────┘
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
	"github.com/shopspring/decimal"

	apporders "github.com/jhoicas/Bodega-api/internal/application/orders"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReceiptGenerator implementa orders.ReceiptPDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct {
	appName string
}

// NewMarotoReceiptGenerator construye el generador con el nombre a mostrar en el header.
func NewMarotoReceiptGenerator(appName string) *MarotoReceiptGenerator {
	return &MarotoReceiptGenerator{appName: appName}
}

var _ apporders.ReceiptPDFGenerator = (*MarotoReceiptGenerator)(nil)

// GenerateReceiptPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(
	_ context.Context,
	order *entity.SalesOrder,
	lines []apporders.ReceiptLine,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de venta", true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.appName, order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	total := decimal.Zero
	for _, l := range lines {
		m.AddRows(tableDetailRow(l))
		total = total.Add(l.Item.Quantity.Mul(l.Item.Price))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(total))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre del servicio (izq) y orden + fecha + cliente (der).
func headerRow(appName string, order *entity.SalesOrder) core.Row {
	fecha := order.CreatedAt.Format("02/01/2006 15:04")
	return row.New(18).Add(
		col.New(7).Add(
			text.New(appName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Recibo de venta", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Orden: "+order.ID, props.Text{
				Size: 8, Align: align.Right, Top: 1,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 6, Color: colorGray,
			}),
			text.New("Cliente: "+order.CustomerName, props.Text{
				Size: 8, Align: align.Right, Top: 11, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	return row.New(7).Add(
		col.New(2).Add(text.New("Cant.", props.Text{Style: fontstyle.Bold, Size: 8})),
		col.New(6).Add(text.New("Producto", props.Text{Style: fontstyle.Bold, Size: 8})),
		col.New(2).Add(text.New("P. Unit", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right})),
		col.New(2).Add(text.New("Subtotal", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right})),
	)
}

func tableDetailRow(l apporders.ReceiptLine) core.Row {
	// El producto puede haberse eliminado después de la venta; el recibo
	// conserva la línea mostrando solo el ID.
	name := l.Item.ProductID
	if l.Product != nil {
		name = fmt.Sprintf("%s (%s)", l.Product.Name, l.Product.SKU)
	}
	subtotal := l.Item.Quantity.Mul(l.Item.Price)
	return row.New(6).Add(
		col.New(2).Add(text.New(l.Item.Quantity.String(), props.Text{Size: 8})),
		col.New(6).Add(text.New(name, props.Text{Size: 8})),
		col.New(2).Add(text.New(l.Item.Price.StringFixed(2), props.Text{Size: 8, Align: align.Right})),
		col.New(2).Add(text.New(subtotal.StringFixed(2), props.Text{Size: 8, Align: align.Right})),
	)
}

func totalRow(total decimal.Decimal) core.Row {
	return row.New(9).Add(
		col.New(8),
		col.New(2).Add(text.New("TOTAL", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2})),
		col.New(2).Add(text.New(total.StringFixed(2), props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2, Color: colorPrimary})),
	)
}
