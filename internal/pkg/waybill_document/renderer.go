package waybill_document

import (
	"bytes"
	"fmt"

	"freightforge/internal/entities"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

const (
	qrSizePx    = 256
	qrImageName = "reference-qr"
	timeLayout  = "2006-01-02 15:04 MST"
)

type Renderer struct {
	portalName string
}

func New(portalName string) *Renderer {
	return &Renderer{portalName: portalName}
}

// Render lays out an A4 waybill with a QR code of the reference in the top
// right corner.
func (r *Renderer) Render(w entities.Waybill) ([]byte, error) {
	qrPNG, err := qrcode.Encode(w.Reference, qrcode.Medium, qrSizePx)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}

	d := w.Details
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Waybill "+w.Reference, false)
	pdf.SetCreator(r.portalName, false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 10, r.portalName+" Waybill")
	pdf.Ln(12)

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(qrImageName, imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions(qrImageName, 155, 10, 40, 40, false, imageOpts, 0, "")

	rows := [][2]string{
		{"Reference", w.Reference},
		{"Status", w.Status.String()},
		{"Shipper", d.ShipperName},
		{"Account", d.Username},
		{"Goods", fmt.Sprintf("%s, %d MT", d.GoodsType, d.QuantityTons)},
		{"Route", fmt.Sprintf("%s to %s (%d km)", d.Origin, d.Destination, d.DistanceKm)},
		{"Train", d.TransportOption},
		{"Dispatch date", formatDate(d)},
		{"Rate", d.RatePerTonKm.String() + " per ton-km"},
		{"Charge", d.Charge.StringFixed(2)},
		{"ETA", w.ETA.UTC().Format(timeLayout)},
	}

	pdf.SetFont("Arial", "", 12)
	for _, row := range rows {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(45, 8, row[0]+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 12)
		pdf.CellFormat(0, 8, row[1], "", 1, "L", false, 0, "")
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Tracking history")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 11)
	for _, event := range w.Tracking {
		pdf.CellFormat(60, 7, event.At.UTC().Format(timeLayout), "B", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, event.Status.String(), "B", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func formatDate(s entities.Shipment) string {
	if s.DispatchDate.IsZero() {
		return "-"
	}
	return s.DispatchDate.Format("2006-01-02")
}
