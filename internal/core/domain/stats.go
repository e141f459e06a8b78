package domain

// StatsFilter selects the month the dashboards aggregate over. Employee and
// Referral are optional narrowing filters.
type StatsFilter struct {
	Month    int     `json:"month"`
	Year     int     `json:"year"`
	Employee *string `json:"employee"`
	Referral *string `json:"referral"`
}

func (f StatsFilter) Validate() error {
	if f.Month < 1 || f.Month > 12 {
		return ErrInvalidMonth
	}
	if f.Year < 2000 || f.Year > 9999 {
		return ErrInvalidYear
	}
	return nil
}

// StatsBucket holds the counters of one period, keyed by the names the
// database function emits (inquiriesCount, confirmedCount, ...).
type StatsBucket map[string]float64

// Stats is what get_booking_stats and get_checkin_stats return. Daily is
// indexed by day of month.
type Stats struct {
	Monthly StatsBucket   `json:"monthly"`
	Daily   []StatsBucket `json:"daily"`
}

// Day returns the bucket for a day of month, or nil.
func (s Stats) Day(day int) StatsBucket {
	if day < 0 || day >= len(s.Daily) {
		return nil
	}
	return s.Daily[day]
}

// ConversionRate is confirmed over inquiries as a percentage, 0 without
// inquiries.
func ConversionRate(b StatsBucket) float64 {
	inquiries := b["inquiriesCount"]
	if inquiries == 0 {
		return 0
	}
	return b["confirmedCount"] / inquiries * 100
}

// Note is a legacy free-text note attributed to the token's email.
type Note struct {
	Text  string `json:"text"`
	Email string `json:"email"`
}
