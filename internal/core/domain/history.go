package domain

// History is the append-only version list of one booking plus a cursor used
// to browse older versions. Index points at the current version after load.
type History struct {
	Snapshots []Booking `json:"snapshots"`
	Index     int       `json:"index"`
}

func NewHistory(snapshots []Booking) History {
	return History{Snapshots: snapshots, Index: len(snapshots) - 1}
}

func (h *History) Len() int { return len(h.Snapshots) }

// Current returns the snapshot under the cursor.
func (h *History) Current() (Booking, bool) {
	return h.At(h.Index)
}

// Latest returns the last stored snapshot regardless of the cursor.
func (h *History) Latest() (Booking, bool) {
	return h.At(len(h.Snapshots) - 1)
}

func (h *History) At(version int) (Booking, bool) {
	if version < 0 || version >= len(h.Snapshots) {
		return Booking{}, false
	}
	return h.Snapshots[version].Clone(), true
}

// Next moves the cursor one version forward; it stays put on the last one.
func (h *History) Next() bool {
	if h.Index >= len(h.Snapshots)-1 {
		return false
	}
	h.Index++
	return true
}

// Previous moves the cursor one version back; it stays put on the first one.
func (h *History) Previous() bool {
	if h.Index <= 0 {
		return false
	}
	h.Index--
	return true
}
