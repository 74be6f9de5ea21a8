package models

import "time"

// Period is the calendar-day bounds containing a snapshot's CreatedAt:
// local midnight to the following midnight, derived from an immutable
// capture of "now".
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func PeriodOf(now time.Time) Period {
	y, m, d := now.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return Period{Start: start, End: start.AddDate(0, 0, 1)}
}

// Headline is the flattened "current" view of a snapshot payload, the
// fields a dashboard shows without digging into history.
type Headline map[string]any

// Payload is implemented by every statistic payload type.
type Payload interface {
	Headline() Headline
}

// Snapshot is one timestamped observation. Data holds a typed payload on
// the write path and a decoded map on the read path; both marshal to the
// same JSON.
type Snapshot struct {
	CreatedAt time.Time `json:"created_at"`
	Period    Period    `json:"period"`
	Data      any       `json:"data"`
}

// StatDocument is the persisted unit for one (type, date) pair. History is
// insertion-ordered and append-only; Current mirrors the headline fields
// of the most recently appended snapshot.
type StatDocument struct {
	Type      StatType   `json:"type"`
	Date      DateKey    `json:"date"`
	UpdatedAt time.Time  `json:"updated_at"`
	Current   Headline   `json:"current"`
	History   []Snapshot `json:"history"`
}

func NewStatDocument(typ StatType, date DateKey) *StatDocument {
	return &StatDocument{
		Type:    typ,
		Date:    date,
		History: make([]Snapshot, 0, 1),
	}
}

// Append adds snap to History and overwrites Current and UpdatedAt. When
// limit > 0 the history behaves as a FIFO ring: the oldest entries are
// evicted so that len(History) never exceeds limit.
func (d *StatDocument) Append(snap Snapshot, limit int) {
	d.History = append(d.History, snap)
	if limit > 0 && len(d.History) > limit {
		d.History = d.History[len(d.History)-limit:]
	}
	d.UpdatedAt = snap.CreatedAt
	if p, ok := snap.Data.(Payload); ok {
		d.Current = p.Headline()
	}
}

// LastSnapshot returns the most recent history entry, or nil for an empty
// document.
func (d *StatDocument) LastSnapshot() *Snapshot {
	if d == nil || len(d.History) == 0 {
		return nil
	}
	return &d.History[len(d.History)-1]
}
