package services

import (
	"context"
	"fmt"
	"time"

	"opsdesk/database"
	"opsdesk/models"
	"opsdesk/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AuthService struct {
	collection *mongo.Collection
}

func NewAuthService() *AuthService {
	return &AuthService{
		collection: database.Users(),
	}
}

// Register creates a new account. New accounts always start with the
// least privileged role; elevation is an admin action.
func (s *AuthService) Register(req *models.RegisterRequest) (*models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := s.collection.CountDocuments(ctx, bson.M{"email": req.Email})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	count, err = s.collection.CountDocuments(ctx, bson.M{"username": req.Username})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %v", err)
	}

	var departmentID *primitive.ObjectID
	if req.DepartmentID != "" {
		id, err := primitive.ObjectIDFromHex(req.DepartmentID)
		if err == nil {
			departmentID = &id
		}
	}

	now := time.Now()
	user := &models.User{
		ID:           primitive.NewObjectID(),
		Username:     req.Username,
		Email:        req.Email,
		Password:     hashed,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         models.RoleUser,
		DepartmentID: departmentID,
		Position:     req.Position,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := s.collection.InsertOne(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %v", err)
	}
	return user, nil
}

// Login verifies credentials and issues a token pair. Failed lookups and
// failed password checks produce the same error.
func (s *AuthService) Login(req *models.LoginRequest) (*models.User, *utils.TokenPair, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	err := s.collection.FindOne(ctx, bson.M{"email": req.Email}).Decode(&user)
	if err != nil {
		return nil, nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, nil, ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(req.Password, user.Password) {
		return nil, nil, ErrInvalidCredentials
	}

	tokens, err := utils.GenerateTokenPair(user.ID, user.Email, user.Username, user.Role, user.DepartmentID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate tokens: %v", err)
	}

	now := time.Now()
	s.collection.UpdateOne(ctx,
		bson.M{"_id": user.ID},
		bson.M{"$set": bson.M{"last_login_at": now}},
	)
	user.LastLoginAt = &now

	return &user, tokens, nil
}

// Refresh exchanges a valid refresh token for a new token pair.
func (s *AuthService) Refresh(refreshToken string) (*utils.TokenPair, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	claims, err := utils.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	var user models.User
	err = s.collection.FindOne(ctx, bson.M{"_id": claims.UserID}).Decode(&user)
	if err != nil || !user.IsActive {
		return nil, ErrInvalidCredentials
	}

	return utils.GenerateTokenPair(user.ID, user.Email, user.Username, user.Role, user.DepartmentID)
}
