package services

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"

	dbm "github.com/Aryan1591/TravelBuddy-Notification-Service/internal/models/db_models"
)

// renderItineraryPDF builds the printable attachment mirroring the email
// body: greeting, itinerary table, events timeline, safety rules and the
// trademark notice.
func renderItineraryPDF(user string, post *dbm.Post) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, tr("Hello, "+user+"!"), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 8, tr("We are excited to inform you about your new travel itinerary."), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 9, "Travel Itinerary:", "", 1, "L", false, 0, "")

	detailRow := func(field, value string) {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(45, 8, tr(field), "1", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 8, tr(value), "1", 1, "L", false, 0, "")
	}

	detailRow("Field", "Details")
	detailRow("Title", post.Title)
	detailRow("Source", post.Source)
	detailRow("Destination", post.Destination)
	detailRow("Start Date", post.StartDate)
	detailRow("End Date", post.EndDate)
	detailRow("Days", strconv.Itoa(post.Days))
	detailRow("Nights", strconv.Itoa(post.Nights))
	detailRow("Amount", strconv.FormatFloat(post.Amount, 'f', -1, 64))
	detailRow("Admin Name", post.AdminName)
	pdf.Ln(4)

	if len(post.Events) > 0 {
		pdf.SetFont("Helvetica", "B", 16)
		pdf.CellFormat(0, 9, "Events Timeline:", "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(50, 8, "Title", "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 8, "Date", "1", 0, "L", false, 0, "")
		pdf.CellFormat(0, 8, "Details", "1", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 11)
		for _, e := range post.Events {
			pdf.CellFormat(50, 8, tr(e.Title), "1", 0, "L", false, 0, "")
			pdf.CellFormat(35, 8, tr(e.Date), "1", 0, "L", false, 0, "")
			pdf.CellFormat(0, 8, tr(strings.Join(e.Events, ", ")), "1", 1, "L", false, 0, "")
		}
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 9, "Safety Rules and Precautions:", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for _, rule := range safetyGuidelines {
		pdf.MultiCell(0, 7, tr("• "+rule), "", "L", false)
	}

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr(trademarkNotice), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
