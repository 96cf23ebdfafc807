package receipt

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"

	"github.com/wl0182/Restaurant-Ordering-System/internal/entity"
)

const qrImage = "checkout-qr"

// Payload is the text encoded in the receipt QR code.
func Payload(s entity.CheckoutSummary) string {
	return fmt.Sprintf("session:%d|table:%s|items:%d|total:%s",
		s.SessionID, s.TableNumber, s.TotalItemOrdered, s.TotalAmount.StringFixed(2))
}

// Render prints the checkout summary as a one page PDF with a QR code of Payload.
func Render(s entity.CheckoutSummary, printedAt time.Time) ([]byte, error) {
	qrPNG, err := qrcode.Encode(Payload(s), qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Receipt %s", s.TableNumber), false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Receipt")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Table: %s", s.TableNumber))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Session: %d", s.SessionID))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Printed: %s", printedAt.Format("2006-01-02 15:04")))
	pdf.Ln(12)

	imageOpts := gofpdf.ImageOptions{
		ImageType: "PNG",
	}
	pdf.RegisterImageOptionsReader(qrImage, imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions(qrImage, 150, 20, 40, 40, false, imageOpts, 0, "")

	pdf.SetY(66)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(100, 8, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(30, 8, "Qty", "B", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, "Price", "B", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 11)

	for _, it := range s.Items {
		pdf.CellFormat(100, 7, it.ItemName, "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, strconv.Itoa(it.TotalQuantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, "$"+it.TotalPrice.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(100, 9, fmt.Sprintf("Orders: %d", s.TotalOrders), "T", 0, "L", false, 0, "")
	pdf.CellFormat(30, 9, strconv.FormatInt(s.TotalItemOrdered, 10), "T", 0, "R", false, 0, "")
	pdf.CellFormat(40, 9, "$"+s.TotalAmount.StringFixed(2), "T", 1, "R", false, 0, "")

	var buf bytes.Buffer

	err = pdf.Output(&buf)
	if err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}

	return buf.Bytes(), nil
}
