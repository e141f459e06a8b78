package domain

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	FieldName          = "name"
	FieldPhone         = "phone"
	FieldStartDateTime = "startDateTime"
	FieldOtherReferral = "otherRefferal"
	FieldReferral      = "refferral"
	FieldStatus        = "status"
	FieldBookingType   = "bookingType"
	FieldProperties    = "properties"
	FieldPayments      = "payments"
	FieldCosts         = "costs"
	FieldPaymentMethod = "paymentMethod"
	FieldDeposit       = "securityDeposit"
)

const (
	msgNameRequired   = "Name is required"
	msgNameTooShort   = "Name must be at least 2 characters"
	msgPhoneRequired  = "Phone number is required"
	msgPhoneInvalid   = "Phone number is invalid"
	msgStartRequired  = "Start date and time is required"
	msgStartFormat    = "Start date and time must be in ISO format"
	msgStartBeforeEnd = "Start date and time must be before the end date and time"
	msgOtherReferral  = "Referral name is required"
	msgNegativeCost   = "Cost amount must not be negative"
	msgNegativePaid   = "Payment amount must not be negative"
)

var phonePattern = regexp.MustCompile(`^\+?(?:[0-9]\s?){6,14}[0-9]$`)

var phoneStripper = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", "+", "")

// ValidationErrors maps a field name to its message. An empty map means the
// snapshot may be committed.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, v[f]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (v ValidationErrors) Valid() bool {
	return len(v) == 0
}

// NormalizePhone strips the characters a user may type around digits. It runs
// when the phone is edited, never inside the matcher.
func NormalizePhone(raw string) string {
	return phoneStripper.Replace(raw)
}

// Validate checks a booking snapshot before create or update. All rules run;
// each field reports its first failure.
func Validate(b Booking) ValidationErrors {
	errs := ValidationErrors{}

	if msg := checkName(b.Client.Name); msg != "" {
		errs[FieldName] = msg
	}

	switch {
	case b.Client.Phone == "":
		errs[FieldPhone] = msgPhoneRequired
	case !phonePattern.MatchString(b.Client.Phone):
		errs[FieldPhone] = msgPhoneInvalid
	}

	if msg := checkStart(b.StartDateTime, b.EndDateTime); msg != "" {
		errs[FieldStartDateTime] = msg
	}

	if b.Referral == ReferralOther && strings.TrimSpace(b.OtherReferral) == "" {
		errs[FieldOtherReferral] = msgOtherReferral
	}

	checkEnums(b, errs)
	checkAmounts(b, errs)
	return errs
}

// ValidateEvent checks the event sub-form: name and start, the start measured
// against the event's own end.
func ValidateEvent(e Event) ValidationErrors {
	errs := ValidationErrors{}
	if msg := checkName(e.EventName); msg != "" {
		errs[FieldName] = msg
	}
	if msg := checkStart(e.StartDateTime, e.EndDateTime); msg != "" {
		errs[FieldStartDateTime] = msg
	}
	for _, p := range e.Properties {
		if !p.Valid() {
			errs[FieldProperties] = fmt.Sprintf("unknown property %q", p)
			break
		}
	}
	if hasNegativeCost(e.Costs) {
		errs[FieldCosts] = msgNegativeCost
	}
	return errs
}

func checkName(name string) string {
	switch {
	case name == "":
		return msgNameRequired
	case utf8.RuneCountInString(name) < 2:
		return msgNameTooShort
	}
	return ""
}

// checkStart skips the ordering rule when end is undefined. A defined end that
// does not parse fails the rule.
func checkStart(start, end string) string {
	if start == "" {
		return msgStartRequired
	}
	if !IsISOInstant(start) {
		return msgStartFormat
	}
	if end == "" {
		return ""
	}
	s, _ := ParseInstant(start)
	e, ok := ParseInstant(end)
	if !ok || !s.Before(e) {
		return msgStartBeforeEnd
	}
	return ""
}

// checkEnums reports values outside the known sets. Unset values are left to
// the defaults applied on create.
func checkEnums(b Booking, errs ValidationErrors) {
	if b.Status != "" && !b.Status.Valid() {
		errs[FieldStatus] = fmt.Sprintf("unknown status %q", b.Status)
	}
	if b.BookingType != "" && !b.BookingType.Valid() {
		errs[FieldBookingType] = fmt.Sprintf("unknown booking type %q", b.BookingType)
	}
	if !b.Referral.Valid() {
		errs[FieldReferral] = fmt.Sprintf("unknown referral %q", b.Referral)
	}
	for _, p := range b.Properties {
		if !p.Valid() {
			errs[FieldProperties] = fmt.Sprintf("unknown property %q", p)
			break
		}
	}
	if b.PaymentMethod != "" && !b.PaymentMethod.Valid() {
		errs[FieldPaymentMethod] = fmt.Sprintf("unknown payment method %q", b.PaymentMethod)
	}
	if d := b.SecurityDeposit; d != nil && d.PaymentMethod != "" && !d.PaymentMethod.Valid() {
		errs[FieldDeposit] = fmt.Sprintf("unknown payment method %q", d.PaymentMethod)
	}
	for _, p := range b.Payments {
		if p.PaymentMethod != "" && !p.PaymentMethod.Valid() {
			errs[FieldPayments] = fmt.Sprintf("unknown payment method %q", p.PaymentMethod)
			break
		}
	}
}

// checkAmounts rejects negative cost and payment amounts.
func checkAmounts(b Booking, errs ValidationErrors) {
	negative := hasNegativeCost(b.Costs)
	for _, e := range b.Events {
		if hasNegativeCost(e.Costs) {
			negative = true
		}
	}
	if negative {
		errs[FieldCosts] = msgNegativeCost
	}
	if _, ok := errs[FieldPayments]; ok {
		return
	}
	for _, p := range b.Payments {
		if p.Amount < 0 {
			errs[FieldPayments] = msgNegativePaid
			return
		}
	}
}

func hasNegativeCost(costs []Cost) bool {
	for _, c := range costs {
		if c.Amount < 0 {
			return true
		}
	}
	return false
}
