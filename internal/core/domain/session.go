package domain

// Session is the editing state of one open booking form. Validation stays
// silent until the first submit; after that every edit re-validates.
type Session struct {
	booking    Booking
	taxEnabled bool
	submitted  bool
	edited     bool
	errors     ValidationErrors
}

// NewSession opens b for editing. Tax starts enabled when the snapshot carries
// tax.
func NewSession(b Booking) *Session {
	tax := b.TaxEnabled()
	return &Session{
		booking:    Derive(b, b, DeriveOptions{TaxEnabled: tax}),
		taxEnabled: tax,
		errors:     ValidationErrors{},
	}
}

// Apply runs the edits in order.
func (s *Session) Apply(edits ...Edit) {
	for _, e := range edits {
		if t, ok := e.(SetTax); ok {
			s.taxEnabled = t.Enabled
		}
		s.booking = ApplyEdit(s.booking, e, s.options())
		s.edited = true
	}
	if s.submitted {
		s.errors = Validate(s.booking)
	}
}

// SubmitEvent validates the event sub-form and, when it passes, adds or
// replaces the event.
func (s *Session) SubmitEvent(e Event) ValidationErrors {
	errs := ValidateEvent(e)
	if errs.Valid() {
		s.Apply(UpsertEvent{Event: e})
	}
	return errs
}

// Submit marks the form as submitted and returns the snapshot with its
// validation result.
func (s *Session) Submit() (Booking, ValidationErrors) {
	s.submitted = true
	s.errors = Validate(s.booking)
	return s.booking.Clone(), s.errors
}

// MarkSubmitted turns on reactive validation without returning the snapshot.
func (s *Session) MarkSubmitted() {
	if !s.submitted {
		s.submitted = true
		s.errors = Validate(s.booking)
	}
}

func (s *Session) Booking() Booking         { return s.booking.Clone() }
func (s *Session) Errors() ValidationErrors { return s.errors }
func (s *Session) TaxEnabled() bool         { return s.taxEnabled }
func (s *Session) Submitted() bool          { return s.submitted }
func (s *Session) Edited() bool             { return s.edited }

func (s *Session) options() DeriveOptions {
	return DeriveOptions{TaxEnabled: s.taxEnabled}
}
