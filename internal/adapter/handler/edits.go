package handler

import (
	"encoding/json"
	"fmt"

	"github.com/srgjo27/villa_booking/internal/core/domain"
)

// EditRequest is one form change as the console sends it, e.g.
// {"type":"setClientName","payload":{"name":"Ravi"}}.
type EditRequest struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type editDecoder func(json.RawMessage) (domain.Edit, error)

func decodeAs[T domain.Edit](raw json.RawMessage) (domain.Edit, error) {
	var e T
	if len(raw) > 0 && string(raw) != "null" {
		if err := json.Unmarshal(raw, &e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

var editDecoders = map[string]editDecoder{
	"setClientName":        decodeAs[domain.SetClientName],
	"setClientPhone":       decodeAs[domain.SetClientPhone],
	"setStatus":            decodeAs[domain.SetStatus],
	"setStartDateTime":     decodeAs[domain.SetStartDateTime],
	"setEndDateTime":       decodeAs[domain.SetEndDateTime],
	"setNumberOfGuests":    decodeAs[domain.SetNumberOfGuests],
	"setNumberOfEvents":    decodeAs[domain.SetNumberOfEvents],
	"setNotes":             decodeAs[domain.SetNotes],
	"setFollowUpDate":      decodeAs[domain.SetFollowUpDate],
	"setProperties":        decodeAs[domain.SetProperties],
	"setReferral":          decodeAs[domain.SetReferral],
	"setPaymentMethod":     decodeAs[domain.SetPaymentMethod],
	"toggleStarred":        decodeAs[domain.ToggleStarred],
	"switchBookingType":    decodeAs[domain.SwitchBookingType],
	"upsertEvent":          decodeAs[domain.UpsertEvent],
	"deleteEvent":          decodeAs[domain.DeleteEvent],
	"addCost":              decodeAs[domain.AddCost],
	"updateCost":           decodeAs[domain.UpdateCost],
	"removeCost":           decodeAs[domain.RemoveCost],
	"addPayment":           decodeAs[domain.AddPayment],
	"updatePayment":        decodeAs[domain.UpdatePayment],
	"removePayment":        decodeAs[domain.RemovePayment],
	"setSecurityDeposit":   decodeAs[domain.SetSecurityDeposit],
	"clearSecurityDeposit": decodeAs[domain.ClearSecurityDeposit],
	"clearDepositReturn":   decodeAs[domain.ClearDepositReturn],
	"setTax":               decodeAs[domain.SetTax],
}

func decodeEdits(reqs []EditRequest) ([]domain.Edit, error) {
	edits := make([]domain.Edit, 0, len(reqs))
	for i, r := range reqs {
		dec, ok := editDecoders[r.Type]
		if !ok {
			return nil, fmt.Errorf("edit %d: unknown type %q", i, r.Type)
		}
		e, err := dec(r.Payload)
		if err != nil {
			return nil, fmt.Errorf("edit %d (%s): %w", i, r.Type, err)
		}
		edits = append(edits, e)
	}
	return edits, nil
}
