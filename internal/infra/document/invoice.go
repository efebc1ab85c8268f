// Package document renders printable order documents.
package document

import (
	"bytes"
	"fmt"
	"strconv"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/util"

	"github.com/phpdave11/gofpdf"
)

const (
	pageMargin  = 15.0
	qrImageName = "order-qr"
	qrSize      = 36.0
	lineHeight  = 7.0
)

// Column widths of the item table, in millimetres. They add up to the A4 body width.
var itemColumns = [...]float64{95, 20, 32.5, 32.5}

type invoiceRenderer struct {
	storeName string
}

// NewInvoiceRenderer returns an A4 invoice renderer headed with storeName.
func NewInvoiceRenderer(storeName string) service.InvoiceRenderer {
	return &invoiceRenderer{storeName: storeName}
}

// RenderInvoice lays out the order header, items, totals and shipping address.
func (r *invoiceRenderer) RenderInvoice(order *entity.Order, qrPNG []byte) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetTitle("Invoice "+order.ID, true)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 10, tr(r.storeName))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, lineHeight, "Invoice #"+util.ShortID(order.ID))
	pdf.Ln(lineHeight)
	pdf.Cell(0, lineHeight, "Order date: "+util.FormatDate(order.CreatedAt))
	pdf.Ln(lineHeight)
	pdf.Cell(0, lineHeight, "Status: "+order.Status.String())
	pdf.Ln(lineHeight)
	pdf.Cell(0, lineHeight, "Estimated delivery: "+util.FormatDate(order.EstimatedDelivery))
	pdf.Ln(lineHeight)
	if order.TrackingNumber != "" {
		pdf.Cell(0, lineHeight, "Tracking: "+tr(order.TrackingNumber))
		pdf.Ln(lineHeight)
	}

	if len(qrPNG) > 0 {
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader(qrImageName, opts, bytes.NewReader(qrPNG))
		pageWidth, _ := pdf.GetPageSize()
		pdf.ImageOptions(qrImageName, pageWidth-pageMargin-qrSize, pageMargin, qrSize, qrSize, false, opts, 0, "")
	}

	pdf.Ln(4)
	writeAddress(pdf, tr, order)
	pdf.Ln(4)
	writeItems(pdf, tr, order.Items)
	writeTotals(pdf, order)

	if order.Notes != "" {
		pdf.Ln(4)
		pdf.SetFont("Arial", "I", 10)
		pdf.MultiCell(0, 6, tr("Notes: "+order.Notes), "", "L", false)
	}

	if err := pdf.Error(); err != nil {
		return nil, errors.Wrap(err, "failed to lay out invoice")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to write invoice")
	}

	return buf.Bytes(), nil
}

func writeAddress(pdf *gofpdf.Fpdf, tr func(string) string, order *entity.Order) {
	addr := order.ShippingAddress

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, lineHeight, "Ship to")
	pdf.Ln(lineHeight)

	pdf.SetFont("Arial", "", 11)
	lines := []string{addr.FullName, addr.Line1, addr.Line2, addr.City + " " + addr.State + " " + addr.PostalCode, addr.Country, addr.Phone}
	for _, line := range lines {
		if line == "" {
			continue
		}
		pdf.Cell(0, 6, tr(line))
		pdf.Ln(6)
	}
}

func writeItems(pdf *gofpdf.Fpdf, tr func(string) string, items []entity.OrderItem) {
	headers := [...]string{"Item", "Qty", "Unit price", "Amount"}

	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(235, 235, 235)
	for i, h := range headers {
		align := "R"
		if i == 0 {
			align = "L"
		}
		pdf.CellFormat(itemColumns[i], 8, h, "1", 0, align, true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for i := range items {
		item := &items[i]
		name := item.Name
		if v := item.Variant.String(); v != "" {
			name = fmt.Sprintf("%s (%s)", name, v)
		}

		pdf.CellFormat(itemColumns[0], lineHeight, tr(util.Truncate(name, 48)), "1", 0, "L", false, 0, "")
		pdf.CellFormat(itemColumns[1], lineHeight, strconv.Itoa(item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(itemColumns[2], lineHeight, util.FormatCurrency(item.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(itemColumns[3], lineHeight, util.FormatCurrency(item.LineTotal()), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
}

func writeTotals(pdf *gofpdf.Fpdf, order *entity.Order) {
	labelWidth := itemColumns[0] + itemColumns[1] + itemColumns[2]
	rows := []struct {
		label  string
		amount float64
		bold   bool
	}{
		{"Subtotal", order.Subtotal, false},
		{"Shipping", order.Shipping, false},
		{"Tax", order.Tax, false},
		{"Total", order.Total, true},
	}

	pdf.Ln(2)
	for _, row := range rows {
		style := ""
		if row.bold {
			style = "B"
		}
		pdf.SetFont("Arial", style, 11)
		pdf.CellFormat(labelWidth, lineHeight, row.label, "", 0, "R", false, 0, "")
		pdf.CellFormat(itemColumns[3], lineHeight, util.FormatCurrency(row.amount), "", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(labelWidth+itemColumns[3], lineHeight,
		fmt.Sprintf("Payment: %s (%s)", order.PaymentMethod, order.PaymentStatus), "", 0, "R", false, 0, "")
	pdf.Ln(-1)
}
