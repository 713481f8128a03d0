package renderinvoice

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/corray333/storefront/internal/service/models/invoice"
	"github.com/corray333/storefront/internal/service/models/order"
	"github.com/corray333/storefront/pkg/http/middleware/auth"
	"github.com/go-chi/chi/v5"
	"github.com/jung-kurt/gofpdf"
	"github.com/spf13/viper"
)

type service interface {
	Compute(ctx context.Context, orderID, customerID int64) (*invoice.Invoice, error)
}

var htmlTemplate = template.Must(template.New("invoice").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Invoice — Order #{{.Invoice.Order.ID}}</title>
<style>
body { font-family: sans-serif; margin: 40px; }
table { border-collapse: collapse; width: 100%; margin-top: 20px; }
th, td { border-bottom: 1px solid #ccc; padding: 8px; text-align: left; }
td.num, th.num { text-align: right; }
tfoot td { font-weight: bold; border-top: 2px solid #333; }
</style>
</head>
<body>
<h1>{{.ShopName}}</h1>
<p>
Invoice for Order #{{.Invoice.Order.ID}}<br>
Date: {{.Invoice.Order.CreatedAt.Format "02 Jan 2006"}}<br>
Status: {{.Invoice.Order.Status}}<br>
Phone: {{.Invoice.Order.Phone}}<br>
{{if .Invoice.Order.Address}}Address: {{.Invoice.Order.Address}}<br>{{end}}
</p>
<table>
<thead>
<tr><th>Item</th><th class="num">Qty</th><th class="num">Price</th><th class="num">Subtotal</th></tr>
</thead>
<tbody>
{{range .Invoice.Rows}}
<tr>
<td>{{.Name}}</td>
<td class="num">{{.Quantity}}</td>
<td class="num">{{.Price}}</td>
<td class="num">{{.Subtotal}}</td>
</tr>
{{end}}
</tbody>
<tfoot>
<tr><td colspan="3">TOTAL</td><td class="num">{{.Invoice.Total}}</td></tr>
</tfoot>
</table>
</body>
</html>
`))

type htmlView struct {
	ShopName string
	Invoice  *invoice.Invoice
}

func compute(w http.ResponseWriter, r *http.Request, service service) (*invoice.Invoice, bool) {
	orderID, err := strconv.ParseInt(chi.URLParam(r, "orderId"), 10, 64)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error parsing order id", "error", err)

		return nil, false
	}

	inv, err := service.Compute(r.Context(), orderID, auth.CustomerID(r.Context()))
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)

			return nil, false
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error computing invoice", "error", err)

		return nil, false
	}

	return inv, true
}

// RenderHTML writes the invoice as a standalone HTML page.
func RenderHTML(w http.ResponseWriter, r *http.Request, service service) {
	inv, ok := compute(w, r, service)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	view := htmlView{ShopName: viper.GetString("shop.name"), Invoice: inv}
	if err := htmlTemplate.Execute(w, view); err != nil {
		slog.Error("Error rendering invoice page", "error", err)
	}
}

// RenderPDF writes the invoice as a downloadable PDF document.
func RenderPDF(w http.ResponseWriter, r *http.Request, service service) {
	inv, ok := compute(w, r, service)
	if !ok {
		return
	}

	pdf := buildPDF(inv)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("invoice_order_%d.pdf", inv.Order.ID)))

	if err := pdf.Output(w); err != nil {
		slog.Error("Error writing invoice pdf", "error", err)
	}
}

// Column positions in points, shared by the header and body rows.
const (
	colItemX     = 50
	colQtyX      = 300
	colPriceX    = 350
	colSubtotalX = 430
	lineHeight   = 18
	bottomMargin = 80
)

func buildPDF(inv *invoice.Invoice) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	_, pageHeight := pdf.GetPageSize()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(colItemX, 60, viper.GetString("shop.name"))

	pdf.SetFont("Helvetica", "", 10)
	y := 90.0
	meta := []string{
		fmt.Sprintf("Invoice for Order #%d", inv.Order.ID),
		"Date: " + inv.Order.CreatedAt.Format("02 Jan 2006"),
		"Status: " + string(inv.Order.Status),
		"Phone: " + inv.Order.Phone,
	}
	if inv.Order.Address != "" {
		meta = append(meta, "Address: "+inv.Order.Address)
	}
	for _, line := range meta {
		pdf.Text(colItemX, y, line)
		y += lineHeight
	}

	y += lineHeight
	y = tableHeader(pdf, y)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range inv.Rows {
		if y > pageHeight-bottomMargin {
			pdf.AddPage()
			y = tableHeader(pdf, 60)
			pdf.SetFont("Helvetica", "", 10)
		}

		pdf.Text(colItemX, y, row.Name)
		pdf.Text(colQtyX, y, strconv.Itoa(row.Quantity))
		pdf.Text(colPriceX, y, row.Price.String())
		pdf.Text(colSubtotalX, y, row.Subtotal.String())
		y += lineHeight
	}

	y += lineHeight / 2
	pdf.Line(colItemX, y, colSubtotalX+60, y)
	y += lineHeight

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(colItemX, y, "TOTAL")
	pdf.Text(colSubtotalX, y, inv.Total.String())

	return pdf
}

func tableHeader(pdf *gofpdf.Fpdf, y float64) float64 {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Text(colItemX, y, "Item")
	pdf.Text(colQtyX, y, "Qty")
	pdf.Text(colPriceX, y, "Price")
	pdf.Text(colSubtotalX, y, "Subtotal")
	pdf.Line(colItemX, y+4, colSubtotalX+60, y+4)

	return y + lineHeight
}
