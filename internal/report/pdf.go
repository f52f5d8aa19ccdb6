// Package report renders an event list and its digest as a PDF
// document.
package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/localpulse/city-events/internal/event"
)

// Filename builds the download name for a city's report: a normalized
// city slug plus the current date.
func Filename(city string, now time.Time) string {
	slug := strings.ToLower(strings.ReplaceAll(city, " ", "_"))
	return fmt.Sprintf("events_%s_%s.pdf", slug, now.Format("20060102"))
}

// Generate renders the report: a title heading, the digest section
// with each non-blank line as its own paragraph, then one block per
// event with bolded field labels.
func Generate(city string, events []event.Event, digest string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Title
	pdf.SetFont("Helvetica", "B", 24)
	pdf.CellFormat(0, 12, tr(sanitize(fmt.Sprintf("Local Events in %s", city))), "", 1, "C", false, 0, "")
	pdf.Ln(8)

	// Digest section
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 8, "Weekend Plan Digest", "", 1, "L", false, 0, "")
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "", 11)
	for _, line := range strings.Split(digest, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		pdf.MultiCell(0, 5, tr(sanitize(line)), "", "L", false)
		pdf.Ln(1)
	}
	pdf.Ln(6)

	// Events section
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 8, "All Events", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	for _, evt := range events {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.MultiCell(0, 6, tr(sanitize(evt.Title)), "", "L", false)
		writeField(pdf, tr, "Date & Time:", evt.DateTime)
		writeField(pdf, tr, "Location:", evt.Location)
		writeField(pdf, tr, "Description:", evt.Description)
		pdf.Ln(5)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// writeField emits a "Label: value" line with the label in bold.
func writeField(pdf *gofpdf.Fpdf, tr func(string) string, label, value string) {
	pdf.SetFont("Helvetica", "B", 11)
	labelWidth := pdf.GetStringWidth(label) + 2
	pdf.CellFormat(labelWidth, 5, label, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 5, tr(sanitize(value)), "", "L", false)
}

// sanitize drops runes the core PDF fonts cannot represent (emoji in
// digest lines, mostly).
func sanitize(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < 0x20 || r > 0xFF {
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}
