package services

import (
	"context"
	"fmt"
	"time"

	"opsdesk/database"
	"opsdesk/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserService struct {
	collection *mongo.Collection
}

func NewUserService() *UserService {
	return &UserService{
		collection: database.Users(),
	}
}

// ListUsers returns active users, optionally filtered by department or role.
func (s *UserService) ListUsers(departmentID *primitive.ObjectID, role string, page, limit int) ([]models.UserProfile, int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{"is_active": true}
	if departmentID != nil {
		filter["department_id"] = *departmentID
	}
	if role != "" {
		filter["role"] = role
	}

	total, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	opts := options.Find().
		SetSort(bson.M{"first_name": 1, "last_name": 1}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err = cursor.All(ctx, &users); err != nil {
		return nil, 0, err
	}

	profiles := make([]models.UserProfile, 0, len(users))
	for i := range users {
		profiles = append(profiles, users[i].Profile())
	}
	return profiles, total, nil
}

// GetUser returns a single user by id.
func (s *UserService) GetUser(userID primitive.ObjectID) (*models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var user models.User
	err := s.collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", userID.Hex(), ErrNotFound)
	}
	return &user, nil
}

// ResolveRecipients expands a share target list into concrete user ids:
// the explicitly named users plus every active member of the named
// departments.
func (s *UserService) ResolveRecipients(ctx context.Context, userIDs, departmentIDs []primitive.ObjectID) ([]primitive.ObjectID, error) {
	recipients := make([]primitive.ObjectID, 0, len(userIDs))
	recipients = append(recipients, userIDs...)

	if len(departmentIDs) == 0 {
		return recipients, nil
	}

	cursor, err := s.collection.Find(ctx, bson.M{
		"department_id": bson.M{"$in": departmentIDs},
		"is_active":     true,
	}, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var members []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err = cursor.All(ctx, &members); err != nil {
		return nil, err
	}
	for _, m := range members {
		recipients = append(recipients, m.ID)
	}
	return recipients, nil
}
