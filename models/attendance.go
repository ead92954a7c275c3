package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Attendance record statuses.
const (
	AttendanceActive     = "active"
	AttendanceCheckedOut = "checked-out"
)

type AttendanceRecord struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     primitive.ObjectID `bson:"user_id" json:"user_id"`
	CheckIn    time.Time          `bson:"check_in" json:"check_in"`
	CheckOut   *time.Time         `bson:"check_out,omitempty" json:"check_out,omitempty"`
	Status     string             `bson:"status" json:"status"`
	Location   string             `bson:"location" json:"location"`
	Notes      string             `bson:"notes" json:"notes"`
	AutoClosed bool               `bson:"auto_closed" json:"auto_closed"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updated_at"`
}

// IsActive reports whether the record is an open session.
func (r *AttendanceRecord) IsActive() bool {
	return r.Status == AttendanceActive && r.CheckOut == nil
}
