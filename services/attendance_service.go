package services

import (
	"context"
	"fmt"
	"time"

	"opsdesk/attendance"
	"opsdesk/database"
	"opsdesk/models"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AttendanceService struct {
	collection *mongo.Collection
}

func NewAttendanceService() *AttendanceService {
	return &AttendanceService{
		collection: database.Attendance(),
	}
}

// CheckIn opens a new attendance record. A user can hold at most one
// active record at a time.
func (s *AttendanceService) CheckIn(user *models.User, req *models.CheckInRequest) (*models.AttendanceRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	active, err := s.findActiveRecord(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, ErrAlreadyCheckedIn
	}

	now := time.Now()
	record := &models.AttendanceRecord{
		ID:        primitive.NewObjectID(),
		UserID:    user.ID,
		CheckIn:   now,
		Status:    models.AttendanceActive,
		Location:  req.Location,
		Notes:     req.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := s.collection.InsertOne(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to check in: %v", err)
	}
	return record, nil
}

// CheckOut closes the user's active attendance record.
func (s *AttendanceService) CheckOut(user *models.User, req *models.CheckOutRequest) (*models.AttendanceRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	active, err := s.findActiveRecord(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if active == nil {
		return nil, ErrNotCheckedIn
	}

	now := time.Now()
	update := bson.M{
		"check_out":  now,
		"status":     models.AttendanceCheckedOut,
		"updated_at": now,
	}
	if req.Notes != "" {
		update["notes"] = req.Notes
	}

	_, err = s.collection.UpdateOne(ctx, bson.M{"_id": active.ID}, bson.M{"$set": update})
	if err != nil {
		return nil, fmt.Errorf("failed to check out: %v", err)
	}

	active.CheckOut = &now
	active.Status = models.AttendanceCheckedOut
	if req.Notes != "" {
		active.Notes = req.Notes
	}
	return active, nil
}

// Status derives the user's current attendance state from today's
// records plus any still-open record from a previous day.
func (s *AttendanceService) Status(user *models.User) (*attendance.Status, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	cursor, err := s.collection.Find(ctx, bson.M{
		"user_id": user.ID,
		"$or": []bson.M{
			{"check_in": bson.M{"$gte": dayStart}},
			{"status": models.AttendanceActive},
		},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.AttendanceRecord
	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	status := attendance.DeriveStatus(records, now)
	return &status, nil
}

// History returns the user's attendance records, newest first, optionally
// bounded by a date range.
func (s *AttendanceService) History(user *models.User, from, to *time.Time, page, limit int) ([]models.AttendanceRecord, int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{"user_id": user.ID}
	if from != nil || to != nil {
		dateFilter := bson.M{}
		if from != nil {
			dateFilter["$gte"] = *from
		}
		if to != nil {
			dateFilter["$lte"] = *to
		}
		filter["check_in"] = dateFilter
	}

	total, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 30
	}

	opts := options.Find().
		SetSort(bson.M{"check_in": -1}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var records []models.AttendanceRecord
	if err = cursor.All(ctx, &records); err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// AutoCloseStale closes every active record left open past the daily
// cutoff. Closed records are flagged so reports can tell them apart
// from real check-outs.
func (s *AttendanceService) AutoCloseStale() (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	now := time.Now()
	result, err := s.collection.UpdateMany(ctx,
		bson.M{"status": models.AttendanceActive, "check_out": nil},
		bson.M{"$set": bson.M{
			"check_out":   now,
			"status":      models.AttendanceCheckedOut,
			"auto_closed": true,
			"updated_at":  now,
		}},
	)
	if err != nil {
		return 0, err
	}
	if result.ModifiedCount > 0 {
		logrus.WithField("count", result.ModifiedCount).Info("auto-closed stale attendance records")
	}
	return result.ModifiedCount, nil
}

func (s *AttendanceService) findActiveRecord(ctx context.Context, userID primitive.ObjectID) (*models.AttendanceRecord, error) {
	var record models.AttendanceRecord
	err := s.collection.FindOne(ctx, bson.M{
		"user_id":   userID,
		"status":    models.AttendanceActive,
		"check_out": nil,
	}).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}
