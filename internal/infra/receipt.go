package infra

// receipt.go — PDF receipt generation using go-pdf/fpdf.
// Two receipt kinds exist for a committed shipment:
//   - factory: what the warehouse bought, at factory prices
//   - farmer:  what each farmer took, at the prices they pay
// The output file is saved to storagePath/shipment_{id}_{kind}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"shipledger/internal/model"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// GenerateFactoryReceiptPDF writes the purchase-side receipt for a shipment:
// one row per product line at the factory price. Returns the absolute path to
// the generated file.
func GenerateFactoryReceiptPDF(shipment *model.Shipment, storagePath string) (string, error) {
	pdf, pageW, contentW := newReceiptPage(shipment, "Factory Receipt")

	col1 := contentW * 0.46 // product
	col2 := contentW * 0.16 // qty
	col3 := contentW * 0.18 // price
	col4 := contentW * 0.20 // subtotal

	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(col1, 5, "Product", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 5, "Qty", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 5, "Price", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 5, "Subtotal", "B", 1, "R", false, 0, "")

	total := decimal.Zero
	pdf.SetFont("Helvetica", "", 7)
	for _, line := range shipment.Products {
		name := ""
		if line.Product != nil {
			name = line.Product.Name
		}
		pdf.CellFormat(col1, 5, truncate(name, 20), "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, line.Quantity.String(), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 5, "$"+line.UnitPrice.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(col4, 5, "$"+line.Subtotal.StringFixed(2), "", 1, "R", false, 0, "")
		total = total.Add(line.Subtotal)
	}

	writeTotal(pdf, pageW, contentW, total)

	return writeReceiptFile(pdf, storagePath, shipment.ID, "factory")
}

// GenerateFarmerReceiptPDF writes the distribution-side receipt: the
// shipment's farmer_purchases rows grouped by farmer, each at the farmer's
// sale price, with a per-farmer subtotal.
func GenerateFarmerReceiptPDF(shipment *model.Shipment, purchases []model.FarmerPurchase, storagePath string) (string, error) {
	pdf, pageW, contentW := newReceiptPage(shipment, "Farmer Receipt")

	col1 := contentW * 0.46
	col2 := contentW * 0.16
	col3 := contentW * 0.18
	col4 := contentW * 0.20

	// Group by farmer, preserving insertion order.
	var order []string
	byFarmer := make(map[string][]model.FarmerPurchase)
	for _, p := range purchases {
		name := p.FarmerID.String()
		if p.Farmer != nil {
			name = p.Farmer.Name
		}
		if _, seen := byFarmer[name]; !seen {
			order = append(order, name)
		}
		byFarmer[name] = append(byFarmer[name], p)
	}

	total := decimal.Zero
	for _, farmer := range order {
		pdf.SetFont("Helvetica", "B", 8)
		pdf.CellFormat(contentW, 5, truncate(farmer, 30), "", 1, "L", false, 0, "")

		subtotal := decimal.Zero
		pdf.SetFont("Helvetica", "", 7)
		for _, p := range byFarmer[farmer] {
			name := ""
			if p.Product != nil {
				name = p.Product.Name
			}
			pdf.CellFormat(col1, 5, truncate(name, 20), "", 0, "L", false, 0, "")
			pdf.CellFormat(col2, 5, p.Quantity.String(), "", 0, "C", false, 0, "")
			pdf.CellFormat(col3, 5, "$"+p.UnitPrice.StringFixed(2), "", 0, "R", false, 0, "")
			pdf.CellFormat(col4, 5, "$"+p.TotalPaid.StringFixed(2), "", 1, "R", false, 0, "")
			subtotal = subtotal.Add(p.TotalPaid)
		}

		pdf.SetFont("Helvetica", "I", 7)
		pdf.CellFormat(col1+col2+col3, 5, "Subtotal:", "", 0, "R", false, 0, "")
		pdf.CellFormat(col4, 5, "$"+subtotal.StringFixed(2), "", 1, "R", false, 0, "")
		pdf.Ln(1)

		total = total.Add(subtotal)
	}

	writeTotal(pdf, pageW, contentW, total)

	return writeReceiptFile(pdf, storagePath, shipment.ID, "farmer")
}

func newReceiptPage(shipment *model.Shipment, title string) (*fpdf.Fpdf, float64, float64) {
	// A7 ≈ 74mm × 105mm — close to thermal receipt paper
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 74, Ht: 105},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, "ShipLedger", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, title, "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Shipment #%d", shipment.ID), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, shipment.CreatedAt.Format("02/01/2006  15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	return pdf, pageW, contentW
}

func writeTotal(pdf *fpdf.Fpdf, pageW, contentW float64, total decimal.Decimal) {
	pdf.Ln(2)
	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(contentW*0.6, 6, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW*0.4, 6, "$"+total.StringFixed(2), "", 1, "R", false, 0, "")
}

func writeReceiptFile(pdf *fpdf.Fpdf, storagePath string, shipmentID int64, kind string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("receipt: create storage dir: %w", err)
	}
	filePath := filepath.Join(storagePath, fmt.Sprintf("shipment_%d_%s.pdf", shipmentID, kind))
	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("receipt: write file: %w", err)
	}
	return filePath, nil
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max-1] + "…"
	}
	return s
}
