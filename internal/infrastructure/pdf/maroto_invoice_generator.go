// Package pdf implementa la factura imprimible de una venta con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la tienda  │  N° Factura + Fecha         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + teléfono   │  VENDEDOR                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Total                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / IVA / Envío / Descuento / TOTAL        │
//	│  FOOTER: QR del número de factura                           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/tu-usuario/retail-pos-api/internal/application/sales"
	"github.com/tu-usuario/retail-pos-api/internal/domain/entity"
)

var _ sales.InvoicePDFGenerator = (*MarotoInvoiceGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoInvoiceGenerator implementa sales.InvoicePDFGenerator usando Maroto v2.
type MarotoInvoiceGenerator struct {
	storeName string
}

// NewMarotoInvoiceGenerator construye el generador con el nombre de la tienda.
func NewMarotoInvoiceGenerator(storeName string) *MarotoInvoiceGenerator {
	return &MarotoInvoiceGenerator{storeName: storeName}
}

// GenerateInvoicePDF genera el PDF de la factura y devuelve sus bytes.
func (g *MarotoInvoiceGenerator) GenerateInvoicePDF(
	_ context.Context,
	sale *entity.Sale,
	employee *entity.Employee,
	productTitles map[string]string,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Factura "+sale.InvoiceNo, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.storeName, sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partiesRow(sale, employee))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(sale.Items, productTitles) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRows(sale)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(sale))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: tienda (izq) y N° factura + fecha (der).
func headerRow(storeName string, sale *entity.Sale) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(storeName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("FACTURA DE VENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(sale.InvoiceNo, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+sale.CreatedAt.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// partiesRow: cliente (izq) y vendedor (der).
func partiesRow(sale *entity.Sale, employee *entity.Employee) core.Row {
	seller := "—"
	if employee != nil {
		seller = employee.Name
	}
	customer := sale.Customer.Name
	if sale.Customer.Phone != "" {
		customer += "   |   Tel: " + sale.Customer.Phone
	}
	return row.New(12).Add(
		col.New(7).Add(
			text.New("CLIENTE", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(customer, props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("VENDEDOR", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1, Align: align.Right}),
			text.New(seller, props.Text{Size: 8, Top: 7, Color: colorGray, Align: align.Right}),
		),
	)
}

func tableHeaderRow() core.Row {
	return row.New(7).Add(
		col.New(1).Add(text.New("Cant", props.Text{Style: fontstyle.Bold, Size: 8, Top: 1})),
		col.New(7).Add(text.New("Producto", props.Text{Style: fontstyle.Bold, Size: 8, Top: 1})),
		col.New(2).Add(text.New("P. Unit", props.Text{Style: fontstyle.Bold, Size: 8, Top: 1, Align: align.Right})),
		col.New(2).Add(text.New("Total", props.Text{Style: fontstyle.Bold, Size: 8, Top: 1, Align: align.Right})),
	)
}

func tableItemRows(items []entity.SaleItem, productTitles map[string]string) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for i := range items {
		item := &items[i]
		title := productTitles[item.ProductID]
		if title == "" {
			title = item.ProductID
		}
		rows = append(rows, row.New(6).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", item.Quantity), props.Text{Size: 8, Top: 1})),
			col.New(7).Add(text.New(title, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(item.Price.StringFixed(2), props.Text{Size: 8, Top: 1, Align: align.Right})),
			col.New(2).Add(text.New(item.Total.StringFixed(2), props.Text{Size: 8, Top: 1, Align: align.Right})),
		))
	}
	return rows
}

func totalsRows(sale *entity.Sale) []core.Row {
	totalLine := func(label, value string, bold bool) core.Row {
		style := fontstyle.Normal
		if bold {
			style = fontstyle.Bold
		}
		return row.New(5).Add(
			col.New(8),
			col.New(2).Add(text.New(label, props.Text{Size: 8, Style: style, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(value, props.Text{Size: 8, Style: style, Align: align.Right, Top: 1})),
		)
	}
	return []core.Row{
		totalLine("Subtotal", sale.SubTotal.StringFixed(2), false),
		totalLine("IVA", sale.VAT.StringFixed(2), false),
		totalLine("Envío", sale.Shipping.StringFixed(2), false),
		totalLine("Descuento", sale.Discount.Neg().StringFixed(2), false),
		totalLine("TOTAL", sale.GrandTotal.StringFixed(2), true),
	}
}

// footerRow: QR con el número de factura para verificación rápida en mostrador.
func footerRow(sale *entity.Sale) core.Row {
	return row.New(28).Add(
		col.New(3).Add(code.NewQr(sale.InvoiceNo, props.Rect{Percent: 90})),
		col.New(9).Add(
			text.New("Gracias por su compra", props.Text{Size: 8, Color: colorGray, Top: 10}),
		),
	)
}
