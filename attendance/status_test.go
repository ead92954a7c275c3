package attendance

import (
	"testing"
	"time"

	"opsdesk/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func record(checkIn time.Time, checkOut *time.Time) models.AttendanceRecord {
	status := models.AttendanceActive
	if checkOut != nil {
		status = models.AttendanceCheckedOut
	}
	return models.AttendanceRecord{
		ID:       primitive.NewObjectID(),
		UserID:   primitive.NewObjectID(),
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Status:   status,
	}
}

func TestDeriveStatusEmpty(t *testing.T) {
	status := DeriveStatus(nil, time.Now())

	assert.Equal(t, StateNotCheckedIn, status.State)
	assert.Nil(t, status.Record)
}

func TestDeriveStatusActive(t *testing.T) {
	now := time.Date(2026, 8, 29, 14, 0, 0, 0, time.Local)
	checkIn := now.Add(-5 * time.Hour)

	status := DeriveStatus([]models.AttendanceRecord{record(checkIn, nil)}, now)

	assert.Equal(t, StateCheckedIn, status.State)
	assert.Equal(t, 5*time.Hour, status.Duration)
	assert.NotNil(t, status.Record)
}

func TestDeriveStatusCompletedToday(t *testing.T) {
	now := time.Date(2026, 8, 29, 18, 0, 0, 0, time.Local)
	checkIn := now.Add(-9 * time.Hour)
	checkOut := now.Add(-1 * time.Hour)

	status := DeriveStatus([]models.AttendanceRecord{record(checkIn, &checkOut)}, now)

	assert.Equal(t, StateCompletedToday, status.State)
	assert.Equal(t, 8*time.Hour, status.Duration)
}

// TestDeriveStatusStaleYesterday keeps yesterday's closed record visible
// but frees the user to check in again.
func TestDeriveStatusStaleYesterday(t *testing.T) {
	now := time.Date(2026, 8, 29, 9, 0, 0, 0, time.Local)
	checkIn := now.Add(-25 * time.Hour)
	checkOut := now.Add(-17 * time.Hour)

	status := DeriveStatus([]models.AttendanceRecord{record(checkIn, &checkOut)}, now)

	assert.Equal(t, StateNotCheckedIn, status.State)
	assert.NotNil(t, status.Record, "stale record stays attached for display")
}

// TestDeriveStatusLatestWins feeds several records in arbitrary order and
// expects the one with the newest check-in to drive the state.
func TestDeriveStatusLatestWins(t *testing.T) {
	now := time.Date(2026, 8, 29, 16, 0, 0, 0, time.Local)

	morningOut := now.Add(-6 * time.Hour)
	morning := record(now.Add(-8*time.Hour), &morningOut)
	afternoon := record(now.Add(-2*time.Hour), nil)

	status := DeriveStatus([]models.AttendanceRecord{afternoon, morning}, now)
	assert.Equal(t, StateCheckedIn, status.State)
	assert.Equal(t, afternoon.ID, status.Record.ID)

	// Same result regardless of slice order.
	status = DeriveStatus([]models.AttendanceRecord{morning, afternoon}, now)
	assert.Equal(t, StateCheckedIn, status.State)
	assert.Equal(t, afternoon.ID, status.Record.ID)
}

// TestDeriveStatusIdempotent re-derives from the same inputs and expects
// identical output.
func TestDeriveStatusIdempotent(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.Local)
	records := []models.AttendanceRecord{record(now.Add(-3*time.Hour), nil)}

	first := DeriveStatus(records, now)
	second := DeriveStatus(records, now)

	assert.Equal(t, first.State, second.State)
	assert.Equal(t, first.Duration, second.Duration)
}
