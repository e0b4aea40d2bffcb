package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"touristguide/internal/domain/models"
	"touristguide/internal/logger"
	"touristguide/internal/utils"

	ics "github.com/arran4/golang-ical"
	"github.com/phpdave11/gofpdf"
)

// slotDuration is how long each schedule entry lasts in calendar exports.
const slotDuration = 90 * time.Minute

// ExportService renders a generated itinerary as PDF or iCalendar.
type ExportService struct {
	Loader    func(id string) (models.PlannedItinerary, error)
	Logger    logger.Logger
	RequestID string
	Now       func() time.Time
}

func (s ExportService) GeneratePDF(id string) ([]byte, string, error) {
	doc, err := s.Loader(id)
	if err != nil {
		return nil, "", err
	}
	s.logEvent("generate_pdf", doc.ID)
	return buildItineraryPDF(doc)
}

// GenerateICS places day 1 on start's calendar date and every later day after it.
func (s ExportService) GenerateICS(id string, start time.Time) ([]byte, string, error) {
	doc, err := s.Loader(id)
	if err != nil {
		return nil, "", err
	}
	s.logEvent("generate_ics", doc.ID)
	return buildItineraryICS(doc, start, s.now())
}

func (s ExportService) logEvent(action, id string) {
	if s.Logger == nil {
		return
	}
	s.Logger.Info("export", map[string]interface{}{
		"action":       action,
		"itinerary_id": id,
		"request_id":   s.RequestID,
	})
}

func (s ExportService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

func buildItineraryPDF(doc models.PlannedItinerary) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	sum := doc.TripSummary

	pdf.SetTitle(tr("Itinerary "+sum.Destination), false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, tr("TRIP ITINERARY: "+strings.ToUpper(sum.Destination)))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Duration     : %s", utils.Safe(sum.Duration, "-")),
		fmt.Sprintf("Travelers    : %d", sum.Travelers),
		fmt.Sprintf("Style        : %s", utils.Safe(sum.Style, "-")),
		fmt.Sprintf("Total budget : %s", utils.Safe(sum.TotalBudget, "-")),
		fmt.Sprintf("Itinerary ID : %s", doc.ID),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, tr(s))
		pdf.Ln(7)
	}
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, tr(sum.Notes), "", "", false)
	pdf.Ln(4)

	section(pdf, tr, "Budget breakdown")
	b := doc.BudgetBreakdown
	for _, row := range [][2]string{
		{"Accommodation", b.Accommodation},
		{"Food", b.Food},
		{"Activities", b.Activities},
		{"Travel", b.Travel},
		{"Misc", b.Misc},
	} {
		pdf.Cell(0, 6, tr(fmt.Sprintf("%-14s %s", row[0], row[1])))
		pdf.Ln(6)
	}

	for _, day := range doc.Days {
		pdf.Ln(3)
		section(pdf, tr, day.Title)
		for _, e := range day.Schedule {
			pdf.Cell(0, 6, tr(fmt.Sprintf("%s  %s (%s)", e.Time, e.Activity, e.Location)))
			pdf.Ln(6)
		}
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 5, tr("Food: "+strings.Join(day.Food, ", ")+". Photo spots: "+strings.Join(day.PhotoSpots, ", ")+"."), "", "", false)
		pdf.MultiCell(0, 5, tr("Safety: "+strings.Join(day.Safety, "; ")+"."), "", "", false)
	}

	pdf.Ln(3)
	section(pdf, tr, "Hotel options")
	for _, h := range doc.HotelOptions {
		pdf.Cell(0, 6, tr(fmt.Sprintf("%s (%.1f) - %s per night, %s", h.Name, h.Rating, h.PricePerNight, h.Location)))
		pdf.Ln(6)
	}

	pdf.Ln(3)
	section(pdf, tr, "Emergency")
	em := doc.Emergency
	for _, s := range []string{"Police: " + em.Police, "Ambulance: " + em.Ambulance, "Embassy: " + em.EmbassyContact} {
		pdf.Cell(0, 6, tr(s))
		pdf.Ln(6)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ITINERARY_%s_%s.pdf", utils.SafeFilenamePart(sum.Destination), utils.SafeFilenamePart(doc.ID))
	return buf.Bytes(), filename, nil
}

func section(pdf *gofpdf.Fpdf, tr func(string) string, title string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, tr(title))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
}

func buildItineraryICS(doc models.PlannedItinerary, start, stamp time.Time) ([]byte, string, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Tourist Guide//Itinerary//EN")
	cal.SetXWRCalName("Trip to " + doc.TripSummary.Destination)

	for _, day := range doc.Days {
		date := start.AddDate(0, 0, day.Day-1)
		for _, e := range day.Schedule {
			at, err := utils.AtClock(date, e.Time)
			if err != nil {
				return nil, "", fmt.Errorf("day %d slot %q: %w", day.Day, e.Time, err)
			}
			uid := fmt.Sprintf("%s-d%d-%s@tourist-guide", doc.ID, day.Day, strings.ReplaceAll(e.Time, ":", ""))
			event := cal.AddEvent(uid)
			event.SetDtStampTime(stamp)
			event.SetStartAt(at)
			event.SetEndAt(at.Add(slotDuration))
			event.SetSummary(e.Activity)
			event.SetLocation(e.Location + ", " + doc.TripSummary.Destination)
			event.SetDescription(day.Title)
		}
	}

	filename := fmt.Sprintf("ITINERARY_%s_%s.ics", utils.SafeFilenamePart(doc.TripSummary.Destination), utils.FormatDate(start))
	return []byte(cal.Serialize()), filename, nil
}
