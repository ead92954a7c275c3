package services

import (
	"context"
	"fmt"
	"time"

	"opsdesk/database"
	"opsdesk/models"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NotificationService struct {
	collection *mongo.Collection
}

func NewNotificationService() *NotificationService {
	return &NotificationService{
		collection: database.Notifications(),
	}
}

// List returns the user's notifications, newest first, with the unread
// count for the badge.
func (s *NotificationService) List(userID primitive.ObjectID, unreadOnly bool, page, limit int) ([]models.Notification, int64, int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"user_id": userID}
	if unreadOnly {
		filter["is_read"] = false
	}

	total, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, 0, err
	}
	unread, err := s.collection.CountDocuments(ctx, bson.M{"user_id": userID, "is_read": false})
	if err != nil {
		return nil, 0, 0, err
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	opts := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, 0, err
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	if err = cursor.All(ctx, &notifications); err != nil {
		return nil, 0, 0, err
	}
	return notifications, total, unread, nil
}

// MarkRead marks one notification read. Users can only touch their own.
func (s *NotificationService) MarkRead(userID, notificationID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	now := time.Now()
	result, err := s.collection.UpdateOne(ctx,
		bson.M{"_id": notificationID, "user_id": userID},
		bson.M{"$set": bson.M{"is_read": true, "read_at": now}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("notification %s: %w", notificationID.Hex(), ErrNotFound)
	}
	return nil
}

// MarkAllRead marks every unread notification of the user as read.
func (s *NotificationService) MarkAllRead(userID primitive.ObjectID) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	now := time.Now()
	result, err := s.collection.UpdateMany(ctx,
		bson.M{"user_id": userID, "is_read": false},
		bson.M{"$set": bson.M{"is_read": true, "read_at": now}},
	)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

// NotifyUsers fans one notification out to each recipient. Delivery is
// best effort; a failed insert is logged, not returned.
func (s *NotificationService) NotifyUsers(ctx context.Context, userIDs []primitive.ObjectID, notificationType, title, message string, refID *primitive.ObjectID) {
	if len(userIDs) == 0 {
		return
	}

	now := time.Now()
	docs := make([]interface{}, 0, len(userIDs))
	seen := make(map[primitive.ObjectID]bool, len(userIDs))
	for _, userID := range userIDs {
		if seen[userID] {
			continue
		}
		seen[userID] = true
		docs = append(docs, models.Notification{
			ID:        primitive.NewObjectID(),
			UserID:    userID,
			Type:      notificationType,
			Title:     title,
			Message:   message,
			RefID:     refID,
			IsRead:    false,
			CreatedAt: now,
		})
	}

	if _, err := s.collection.InsertMany(ctx, docs); err != nil {
		logrus.WithError(err).Warn("failed to deliver notifications")
	}
}

// DeleteReadOlderThan prunes read notifications past the retention age.
func (s *NotificationService) DeleteReadOlderThan(age time.Duration) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cutoff := time.Now().Add(-age)
	result, err := s.collection.DeleteMany(ctx, bson.M{
		"is_read":    true,
		"created_at": bson.M{"$lt": cutoff},
	})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
