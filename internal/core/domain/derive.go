package domain

import (
	"math"
	"time"
)

// TaxRate is the GST applied when tax is enabled on a booking.
const TaxRate = 0.18

const endCorrectionOffset = 24 * time.Hour

type DeriveOptions struct {
	TaxEnabled bool
}

// Derive recomputes every dependent field of next. prev is the booking as it
// was before the edit and is only used to detect a start date change.
func Derive(prev, next Booking, opts DeriveOptions) Booking {
	out := next.Clone()

	for i := range out.Events {
		out.Events[i].FinalCost = EventFinalCost(out.Events[i])
	}

	out.TotalCost = TotalCost(out)

	if out.IsEvent() {
		ReconcileDateWindow(&out)
	}

	if out.StartDateTime != prev.StartDateTime {
		correctEndAfterStart(&out)
	}

	out.Tax = Tax(out.TotalCost, opts.TaxEnabled)
	out.AfterTaxTotal = out.TotalCost + out.Tax
	out.Paid = PaidTotal(out.Payments)
	out.Outstanding = out.AfterTaxTotal - out.Paid

	if out.Referral != ReferralOther {
		out.OtherReferral = ""
	}
	return out
}

// TotalCost sums the active cost source: non-deleted events for Event
// bookings, stay costs otherwise.
func TotalCost(b Booking) float64 {
	if !b.IsEvent() {
		return sumCosts(b.Costs)
	}
	var total float64
	for _, e := range b.ActiveEvents() {
		total += e.FinalCost
	}
	return total
}

func Tax(totalCost float64, enabled bool) float64 {
	if !enabled {
		return 0
	}
	return math.Round(totalCost * TaxRate)
}

func PaidTotal(payments []Payment) float64 {
	var paid float64
	for _, p := range payments {
		paid += p.Amount
	}
	return paid
}

// ReconcileDateWindow derives the booking window and event count from the
// active events of an Event booking.
func ReconcileDateWindow(b *Booking) {
	active := b.ActiveEvents()
	if len(active) == 0 {
		if b.Status != StatusInquiry {
			b.StartDateTime = ""
			b.EndDateTime = ""
			b.NumberOfEvents = 0
		}
		return
	}

	var first, last time.Time
	var haveFirst, haveLast bool
	for _, e := range active {
		if start, ok := ParseInstant(e.StartDateTime); ok && (!haveFirst || start.Before(first)) {
			first, haveFirst = start, true
		}
		if end, ok := ParseInstant(e.EndDateTime); ok && (!haveLast || end.After(last)) {
			last, haveLast = end, true
		}
	}

	b.StartDateTime = ""
	if haveFirst {
		b.StartDateTime = FormatInstant(first)
	}
	b.EndDateTime = ""
	if haveLast {
		b.EndDateTime = FormatInstant(last)
	}
	b.NumberOfEvents = len(active)
}

// correctEndAfterStart moves the end to one day after the start when the end
// is missing or not strictly after the start.
func correctEndAfterStart(b *Booking) {
	start, ok := ParseInstant(b.StartDateTime)
	if !ok {
		return
	}
	if end, ok := ParseInstant(b.EndDateTime); ok && end.After(start) {
		return
	}
	b.EndDateTime = FormatInstant(start.Add(endCorrectionOffset))
}

func sumCosts(costs []Cost) float64 {
	var total float64
	for _, c := range costs {
		total += c.Amount
	}
	return total
}
