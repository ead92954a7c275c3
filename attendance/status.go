// Package attendance derives the single display state of a user's day from
// their attendance records. The derivation is pure and recomputed on every
// fetch; nothing here is persisted.
package attendance

import (
	"time"

	"opsdesk/models"
)

type State string

const (
	StateNotCheckedIn   State = "not_checked_in"
	StateCheckedIn      State = "checked_in"
	StateCompletedToday State = "completed_today"
)

// Status is the derived day state. Record points at the record the state
// was read off of; for StateNotCheckedIn it may still carry a stale
// (non-today) record for history display.
type Status struct {
	State    State                    `json:"state"`
	Record   *models.AttendanceRecord `json:"record,omitempty"`
	Duration time.Duration            `json:"duration"`
}

// DeriveStatus reduces an unordered record list to the current state.
// When several records exist, the one with the latest check-in wins. An
// open session yields StateCheckedIn with elapsed time against now; a
// closed session checked in on today's calendar date yields
// StateCompletedToday with its worked duration; anything older leaves the
// user free to check in again.
func DeriveStatus(records []models.AttendanceRecord, now time.Time) Status {
	latest := latestByCheckIn(records)
	if latest == nil {
		return Status{State: StateNotCheckedIn}
	}

	if latest.IsActive() {
		return Status{
			State:    StateCheckedIn,
			Record:   latest,
			Duration: now.Sub(latest.CheckIn),
		}
	}

	if latest.CheckOut != nil && sameDay(latest.CheckIn, now) {
		return Status{
			State:    StateCompletedToday,
			Record:   latest,
			Duration: latest.CheckOut.Sub(latest.CheckIn),
		}
	}

	// Stale record: offer a fresh check-in but keep it visible.
	return Status{State: StateNotCheckedIn, Record: latest}
}

func latestByCheckIn(records []models.AttendanceRecord) *models.AttendanceRecord {
	var latest *models.AttendanceRecord
	for i := range records {
		if latest == nil || records[i].CheckIn.After(latest.CheckIn) {
			latest = &records[i]
		}
	}
	return latest
}

func sameDay(t, ref time.Time) bool {
	t = t.In(ref.Location())
	y1, m1, d1 := t.Date()
	y2, m2, d2 := ref.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
