package domain

type BookingType string

const (
	BookingStay  BookingType = "Stay"
	BookingEvent BookingType = "Event"
)

type BookingStatus string

const (
	StatusInquiry      BookingStatus = "Inquiry"
	StatusQuotation    BookingStatus = "Quotation"
	StatusConfirmed    BookingStatus = "Confirmed"
	StatusPreconfirmed BookingStatus = "Preconfirmed"
)

type Property string

const (
	Bluehouse   Property = "Bluehouse"
	Glasshouse  Property = "Glasshouse"
	MeadowLane  Property = "Meadow Lane"
	LeChalet    Property = "Le Chalet"
	VillaArmati Property = "Villa Armati"
	Castle      Property = "Castle"
)

var Properties = []Property{Bluehouse, Glasshouse, MeadowLane, LeChalet, VillaArmati, Castle}

type Referral string

const (
	ReferralGoogle     Referral = "Google"
	ReferralFacebook   Referral = "Facebook"
	ReferralInstagram  Referral = "Instagram"
	ReferralInfluencer Referral = "Influencer"
	ReferralOther      Referral = "Other"
)

type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "Cash"
	PaymentCard         PaymentMethod = "Card"
	PaymentGPay         PaymentMethod = "GPay"
	PaymentBankTransfer PaymentMethod = "Bank transfer"
)

// EncodingVersion is written into every stored snapshot.
const EncodingVersion = 1

type Client struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type Employee struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Cost struct {
	CostID int64   `json:"costId,omitempty"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

type Payment struct {
	PaymentID     int64         `json:"paymentId,omitempty"`
	DateTime      string        `json:"dateTime"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Amount        float64       `json:"amount"`
	ReceivedBy    *Employee     `json:"receivedBy,omitempty"`
}

type SecurityDeposit struct {
	OriginalSecurityAmount float64       `json:"originalSecurityAmount"`
	PaymentMethod          PaymentMethod `json:"paymentMethod"`
	DateReturned           string        `json:"dateReturned,omitempty"`
	AmountReturned         float64       `json:"amountReturned,omitempty"`
}

// Booking is one version of a reservation. Stored histories are ordered
// sequences of Booking values; the last one is current.
type Booking struct {
	BookingID       int64             `json:"bookingId,omitempty"`
	Client          Client            `json:"client"`
	BookingType     BookingType       `json:"bookingType"`
	Status          BookingStatus     `json:"status"`
	StartDateTime   string            `json:"startDateTime,omitempty"`
	EndDateTime     string            `json:"endDateTime,omitempty"`
	NumberOfGuests  int               `json:"numberOfGuests"`
	NumberOfEvents  int               `json:"numberOfEvents"`
	Notes           string            `json:"notes"`
	Properties      []Property        `json:"properties"`
	Referral        Referral          `json:"refferral,omitempty"`
	OtherReferral   string            `json:"otherRefferal,omitempty"`
	FollowUpDate    string            `json:"followUpDate,omitempty"`
	PaymentMethod   PaymentMethod     `json:"paymentMethod"`
	Events          []Event           `json:"events"`
	Costs           []Cost            `json:"costs"`
	Payments        []Payment         `json:"payments"`
	SecurityDeposit *SecurityDeposit  `json:"securityDeposit,omitempty"`
	CalendarIDs     map[string]string `json:"calendarIds,omitempty"`

	TotalCost     float64 `json:"totalCost"`
	Tax           float64 `json:"tax"`
	AfterTaxTotal float64 `json:"afterTaxTotal"`
	Paid          float64 `json:"paid"`
	Outstanding   float64 `json:"outstanding"`

	Starred      bool   `json:"starred"`
	ClientViewID string `json:"clientViewId,omitempty"`

	EncodingVersion   int       `json:"encodingVersion,omitempty"`
	CreatedDateTime   string    `json:"createdDateTime"`
	CreatedBy         *Employee `json:"createdBy,omitempty"`
	UpdatedDateTime   string    `json:"updatedDateTime,omitempty"`
	UpdatedBy         *Employee `json:"updatedBy,omitempty"`
	ConfirmedDateTime string    `json:"confirmedDateTime,omitempty"`
	ConfirmedBy       *Employee `json:"confirmedBy,omitempty"`
}

// NewBooking returns the values a freshly opened booking form starts with.
func NewBooking() Booking {
	return Booking{
		BookingType:     BookingStay,
		Status:          StatusInquiry,
		NumberOfGuests:  2,
		NumberOfEvents:  1,
		PaymentMethod:   PaymentCash,
		Properties:      []Property{},
		Events:          []Event{},
		Costs:           []Cost{},
		Payments:        []Payment{},
		EncodingVersion: EncodingVersion,
	}
}

func (b *Booking) IsEvent() bool {
	return b.BookingType == BookingEvent
}

func (b *Booking) IsPersisted() bool {
	return b.BookingID > 0
}

// ActiveEvents returns the events not marked for deletion. Every fold over
// events goes through here.
func (b *Booking) ActiveEvents() []Event {
	active := make([]Event, 0, len(b.Events))
	for _, e := range b.Events {
		if !e.MarkForDeletion {
			active = append(active, e)
		}
	}
	return active
}

// TaxEnabled reports whether the stored snapshot was saved with tax applied.
func (b *Booking) TaxEnabled() bool {
	return b.Tax != 0
}

// Clone returns a deep copy so edits never alias slices of a stored snapshot.
func (b Booking) Clone() Booking {
	out := b
	out.Properties = append([]Property(nil), b.Properties...)
	out.Costs = append([]Cost(nil), b.Costs...)
	out.Payments = make([]Payment, len(b.Payments))
	for i, p := range b.Payments {
		if p.ReceivedBy != nil {
			emp := *p.ReceivedBy
			p.ReceivedBy = &emp
		}
		out.Payments[i] = p
	}
	out.Events = make([]Event, len(b.Events))
	for i, e := range b.Events {
		out.Events[i] = e.Clone()
	}
	if b.SecurityDeposit != nil {
		sd := *b.SecurityDeposit
		out.SecurityDeposit = &sd
	}
	if b.CalendarIDs != nil {
		out.CalendarIDs = make(map[string]string, len(b.CalendarIDs))
		for k, v := range b.CalendarIDs {
			out.CalendarIDs[k] = v
		}
	}
	out.CreatedBy = cloneEmployee(b.CreatedBy)
	out.UpdatedBy = cloneEmployee(b.UpdatedBy)
	out.ConfirmedBy = cloneEmployee(b.ConfirmedBy)
	return out
}

func cloneEmployee(e *Employee) *Employee {
	if e == nil {
		return nil
	}
	c := *e
	return &c
}

func (p Property) Valid() bool {
	for _, known := range Properties {
		if p == known {
			return true
		}
	}
	return false
}

func (s BookingStatus) Valid() bool {
	switch s {
	case StatusInquiry, StatusQuotation, StatusConfirmed, StatusPreconfirmed:
		return true
	}
	return false
}

func (t BookingType) Valid() bool {
	return t == BookingStay || t == BookingEvent
}

func (r Referral) Valid() bool {
	switch r {
	case "", ReferralGoogle, ReferralFacebook, ReferralInstagram, ReferralInfluencer, ReferralOther:
		return true
	}
	return false
}

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentGPay, PaymentBankTransfer:
		return true
	}
	return false
}
