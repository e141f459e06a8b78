package services

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/phpdave11/gofpdf"
	"go.uber.org/zap"

	"github.com/srgjo27/villa_booking/internal/core/domain"
	"github.com/srgjo27/villa_booking/internal/platform/clock"
)

type currentBookingReader interface {
	Current(ctx context.Context, bookingID int64) (domain.Booking, error)
}

// QuotationService renders the current version of a booking as a PDF the
// client can be sent.
type QuotationService struct {
	bookings currentBookingReader
	clock    clock.Clock
	logger   *zap.Logger
}

func NewQuotationService(bookings currentBookingReader, clk clock.Clock, logger *zap.Logger) *QuotationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuotationService{bookings: bookings, clock: clk, logger: logger}
}

// Render returns the PDF bytes and a filename.
func (s *QuotationService) Render(ctx context.Context, bookingID int64) ([]byte, string, error) {
	if bookingID <= 0 {
		return nil, "", domain.ErrInvalidBookingID
	}
	b, err := s.bookings.Current(ctx, bookingID)
	if err != nil {
		return nil, "", err
	}
	out, name, err := s.build(b)
	if err != nil {
		s.logger.Error("render quotation failed", zap.Int64("booking_id", bookingID), zap.Error(err))
		return nil, "", err
	}
	return out, name, nil
}

func (s *QuotationService) build(b domain.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Quotation", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "QUOTATION")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	line := func(s string) {
		pdf.Cell(0, 6, s)
		pdf.Ln(6)
	}
	line(fmt.Sprintf("Booking no : %d", b.BookingID))
	line("Issued     : " + s.clock.Now().Format("2006-01-02"))
	line("Status     : " + string(b.Status))
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	line("Client")
	pdf.SetFont("Helvetica", "", 11)
	line("Name  : " + orDash(b.Client.Name))
	line("Phone : " + orDash(b.Client.Phone))
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	line(string(b.BookingType))
	pdf.SetFont("Helvetica", "", 11)
	line("From       : " + orDash(domain.LocalDate(b.StartDateTime)))
	line("To         : " + orDash(domain.LocalDate(b.EndDateTime)))
	line(fmt.Sprintf("Guests     : %d", b.NumberOfGuests))
	line("Properties : " + orDash(joinProperties(domain.AllProperties(b))))
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	line("Charges")
	pdf.SetFont("Helvetica", "", 11)
	if b.IsEvent() {
		for _, e := range b.ActiveEvents() {
			pdf.SetFont("Helvetica", "B", 11)
			line(fmt.Sprintf("%s (%s)", orDash(e.EventName), orDash(domain.LocalDate(e.StartDateTime))))
			pdf.SetFont("Helvetica", "", 11)
			costLines(pdf, e.Costs)
		}
	} else {
		costLines(pdf, b.Costs)
	}
	pdf.Ln(4)

	amount := func(label string, v float64) {
		pdf.CellFormat(120, 7, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, FormatAmount(v), "", 1, "R", false, 0, "")
	}
	amount("Total", b.TotalCost)
	if b.Tax != 0 {
		amount(fmt.Sprintf("GST (%.0f%%)", domain.TaxRate*100), b.Tax)
	}
	pdf.SetFont("Helvetica", "B", 12)
	amount("Grand total", b.AfterTaxTotal)
	pdf.SetFont("Helvetica", "", 11)
	amount("Paid", b.Paid)
	amount("Outstanding", b.Outstanding)

	if b.SecurityDeposit != nil {
		pdf.Ln(2)
		amount("Security deposit", b.SecurityDeposit.OriginalSecurityAmount)
	}

	if strings.TrimSpace(b.Notes) != "" {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 5, b.Notes, "", "", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), fmt.Sprintf("quotation-%d.pdf", b.BookingID), nil
}

func costLines(pdf *gofpdf.Fpdf, costs []domain.Cost) {
	for _, c := range costs {
		pdf.CellFormat(120, 6, "  "+orDash(c.Name), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, FormatAmount(c.Amount), "", 1, "R", false, 0, "")
	}
}

// FormatAmount rounds to whole rupees with thousands separators: 118000
// becomes "Rs. 118,000".
func FormatAmount(v float64) string {
	neg := v < 0
	n := int64(math.Round(math.Abs(v)))
	digits := strconv.FormatInt(n, 10)

	var sb strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(r)
	}
	if neg {
		return "Rs. -" + sb.String()
	}
	return "Rs. " + sb.String()
}

func joinProperties(props []domain.Property) string {
	names := make([]string, 0, len(props))
	for _, p := range props {
		names = append(names, string(p))
	}
	return strings.Join(names, ", ")
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
