package domain

// Event is a dated sub-engagement of an Event booking. Deleted events stay in
// the sequence with MarkForDeletion set.
type Event struct {
	EventID         int64             `json:"eventId,omitempty"`
	EventName       string            `json:"eventName"`
	CalendarIDs     map[string]string `json:"calendarIds,omitempty"`
	Notes           string            `json:"notes"`
	StartDateTime   string            `json:"startDateTime"`
	EndDateTime     string            `json:"endDateTime"`
	NumberOfGuests  int               `json:"numberOfGuests"`
	Properties      []Property        `json:"properties"`
	ValetService    bool              `json:"valetService"`
	DJService       bool              `json:"djService"`
	KitchenService  bool              `json:"kitchenService"`
	OverNightStay   bool              `json:"overNightStay"`
	OverNightGuests int               `json:"overNightGuests"`
	Costs           []Cost            `json:"costs"`
	FinalCost       float64           `json:"finalCost"`
	MarkForDeletion bool              `json:"markForDeletion"`
}

func NewEvent() Event {
	return Event{
		Properties: []Property{},
		Costs:      []Cost{},
	}
}

func (e Event) Clone() Event {
	out := e
	out.Properties = append([]Property(nil), e.Properties...)
	out.Costs = append([]Cost(nil), e.Costs...)
	if e.CalendarIDs != nil {
		out.CalendarIDs = make(map[string]string, len(e.CalendarIDs))
		for k, v := range e.CalendarIDs {
			out.CalendarIDs[k] = v
		}
	}
	return out
}

// EventFinalCost is the sum of the event's own costs.
func EventFinalCost(e Event) float64 {
	return sumCosts(e.Costs)
}

func nextEventID(events []Event) int64 {
	var max int64
	for _, e := range events {
		if e.EventID > max {
			max = e.EventID
		}
	}
	return max + 1
}
