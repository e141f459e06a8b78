package domain

// Edit is one user change to a booking. Edits only touch source fields;
// ApplyEdit runs the derivation pass afterwards.
type Edit interface {
	apply(b *Booking)
}

// ApplyEdit returns the booking after e and a full derivation pass. The input
// booking is not modified.
func ApplyEdit(b Booking, e Edit, opts DeriveOptions) Booking {
	next := b.Clone()
	e.apply(&next)
	return Derive(b, next, opts)
}

type SetClientName struct{ Name string }

func (e SetClientName) apply(b *Booking) { b.Client.Name = e.Name }

// SetClientPhone stores the phone already normalised.
type SetClientPhone struct{ Phone string }

func (e SetClientPhone) apply(b *Booking) { b.Client.Phone = NormalizePhone(e.Phone) }

type SetStatus struct{ Status BookingStatus }

func (e SetStatus) apply(b *Booking) { b.Status = e.Status }

type SetStartDateTime struct{ Value string }

func (e SetStartDateTime) apply(b *Booking) { b.StartDateTime = e.Value }

type SetEndDateTime struct{ Value string }

func (e SetEndDateTime) apply(b *Booking) { b.EndDateTime = e.Value }

type SetNumberOfGuests struct{ Count int }

func (e SetNumberOfGuests) apply(b *Booking) { b.NumberOfGuests = nonNegative(e.Count) }

type SetNumberOfEvents struct{ Count int }

func (e SetNumberOfEvents) apply(b *Booking) { b.NumberOfEvents = nonNegative(e.Count) }

type SetNotes struct{ Notes string }

func (e SetNotes) apply(b *Booking) { b.Notes = e.Notes }

type SetFollowUpDate struct{ Value string }

func (e SetFollowUpDate) apply(b *Booking) { b.FollowUpDate = e.Value }

type SetProperties struct{ Properties []Property }

func (e SetProperties) apply(b *Booking) {
	b.Properties = append([]Property{}, e.Properties...)
}

type SetReferral struct {
	Referral Referral
	Other    string
}

func (e SetReferral) apply(b *Booking) {
	b.Referral = e.Referral
	b.OtherReferral = e.Other
}

type SetPaymentMethod struct{ Method PaymentMethod }

func (e SetPaymentMethod) apply(b *Booking) { b.PaymentMethod = e.Method }

type ToggleStarred struct{}

func (ToggleStarred) apply(b *Booking) { b.Starred = !b.Starred }

// SwitchBookingType changes the active cost source. An unsaved booking drops
// the collection it switches away from; a persisted one keeps it inactive.
type SwitchBookingType struct{ To BookingType }

func (e SwitchBookingType) apply(b *Booking) {
	if e.To == b.BookingType {
		return
	}
	if !b.IsPersisted() {
		if e.To == BookingEvent {
			b.Costs = []Cost{}
		} else {
			b.Events = []Event{}
		}
	}
	b.BookingType = e.To
}

// UpsertEvent adds an event without an id, or replaces the event with the
// same id.
type UpsertEvent struct{ Event Event }

func (e UpsertEvent) apply(b *Booking) {
	ev := e.Event.Clone()
	if ev.Costs == nil {
		ev.Costs = []Cost{}
	}
	clampCosts(ev.Costs)
	if ev.Properties == nil {
		ev.Properties = []Property{}
	}
	if ev.EventID == 0 {
		ev.EventID = nextEventID(b.Events)
		b.Events = append(b.Events, ev)
		return
	}
	for i := range b.Events {
		if b.Events[i].EventID == ev.EventID {
			b.Events[i] = ev
			return
		}
	}
	b.Events = append(b.Events, ev)
}

// DeleteEvent tombstones the event; it stays in the sequence.
type DeleteEvent struct{ EventID int64 }

func (e DeleteEvent) apply(b *Booking) {
	for i := range b.Events {
		if b.Events[i].EventID == e.EventID {
			b.Events[i].MarkForDeletion = true
		}
	}
}

type AddCost struct{ Name string }

func (e AddCost) apply(b *Booking) {
	b.Costs = append(b.Costs, Cost{Name: e.Name})
}

type UpdateCost struct {
	Index int
	Cost  Cost
}

func (e UpdateCost) apply(b *Booking) {
	if e.Index < 0 || e.Index >= len(b.Costs) {
		return
	}
	c := e.Cost
	c.Amount = nonNegativeAmount(c.Amount)
	b.Costs[e.Index] = c
}

type RemoveCost struct{ Index int }

func (e RemoveCost) apply(b *Booking) {
	if e.Index < 0 || e.Index >= len(b.Costs) {
		return
	}
	b.Costs = append(b.Costs[:e.Index:e.Index], b.Costs[e.Index+1:]...)
}

// AddPayment appends a payment; an empty method defaults to cash.
type AddPayment struct{ Payment Payment }

func (e AddPayment) apply(b *Booking) {
	p := e.Payment
	if p.PaymentMethod == "" {
		p.PaymentMethod = PaymentCash
	}
	p.Amount = nonNegativeAmount(p.Amount)
	b.Payments = append(b.Payments, p)
}

type UpdatePayment struct {
	Index   int
	Payment Payment
}

func (e UpdatePayment) apply(b *Booking) {
	if e.Index < 0 || e.Index >= len(b.Payments) {
		return
	}
	p := e.Payment
	p.Amount = nonNegativeAmount(p.Amount)
	b.Payments[e.Index] = p
}

type RemovePayment struct{ Index int }

func (e RemovePayment) apply(b *Booking) {
	if e.Index < 0 || e.Index >= len(b.Payments) {
		return
	}
	b.Payments = append(b.Payments[:e.Index:e.Index], b.Payments[e.Index+1:]...)
}

type SetSecurityDeposit struct{ Deposit SecurityDeposit }

func (e SetSecurityDeposit) apply(b *Booking) {
	d := e.Deposit
	if d.PaymentMethod == "" {
		d.PaymentMethod = PaymentCash
	}
	b.SecurityDeposit = &d
}

type ClearSecurityDeposit struct{}

func (ClearSecurityDeposit) apply(b *Booking) { b.SecurityDeposit = nil }

// ClearDepositReturn forgets that the deposit was returned.
type ClearDepositReturn struct{}

func (ClearDepositReturn) apply(b *Booking) {
	if b.SecurityDeposit == nil {
		return
	}
	b.SecurityDeposit.DateReturned = ""
	b.SecurityDeposit.AmountReturned = 0
}

// SetTax toggles GST. It carries no booking field; Session consumes it.
type SetTax struct{ Enabled bool }

func (SetTax) apply(*Booking) {}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func nonNegativeAmount(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func clampCosts(costs []Cost) {
	for i := range costs {
		costs[i].Amount = nonNegativeAmount(costs[i].Amount)
	}
}

// ClampAmounts raises negative cost and payment amounts to zero, on the stay
// costs, every event and every payment.
func ClampAmounts(b *Booking) {
	clampCosts(b.Costs)
	for i := range b.Events {
		clampCosts(b.Events[i].Costs)
	}
	for i := range b.Payments {
		b.Payments[i].Amount = nonNegativeAmount(b.Payments[i].Amount)
	}
}
