package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"opsdesk/config"
	"opsdesk/models"
	"opsdesk/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Setup creates indexes and seeds the documents the application assumes
// exist: the distinguished public folder and an initial admin account.
func Setup(cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := createIndexes(ctx); err != nil {
		return fmt.Errorf("failed to create indexes: %v", err)
	}
	if err := seedDefaultPublicFolder(ctx, cfg); err != nil {
		return fmt.Errorf("failed to seed default public folder: %v", err)
	}
	if err := seedAdminUser(ctx, cfg); err != nil {
		return fmt.Errorf("failed to seed admin user: %v", err)
	}
	if err := seedDepartments(ctx, cfg); err != nil {
		return fmt.Errorf("failed to seed departments: %v", err)
	}
	return nil
}

func createIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		UsersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "department_id", Value: 1}}},
		},
		DepartmentsCollection: {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		FoldersCollection: {
			{Keys: bson.D{{Key: "parent._id", Value: 1}}},
			{Keys: bson.D{{Key: "created_by", Value: 1}}},
			{Keys: bson.D{{Key: "access_level", Value: 1}}},
		},
		FilesCollection: {
			{Keys: bson.D{{Key: "folder_id", Value: 1}}},
			{Keys: bson.D{{Key: "created_by", Value: 1}}},
			{Keys: bson.D{{Key: "departments", Value: 1}}},
			{Keys: bson.D{{Key: "shared_users", Value: 1}}},
		},
		AttendanceCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "check_in", Value: -1}}},
			{Keys: bson.D{{Key: "status", Value: 1}}},
		},
		NotificationsCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
			{Keys: bson.D{{Key: "is_read", Value: 1}}},
		},
	}

	for name, models := range indexes {
		if _, err := GetCollection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("collection %s: %v", name, err)
		}
	}

	log.Println("Database indexes created")
	return nil
}

// seedDefaultPublicFolder inserts the server-designated public root folder
// every department tree hangs off of, if it does not exist yet.
func seedDefaultPublicFolder(ctx context.Context, cfg *config.Config) error {
	count, err := Folders().CountDocuments(ctx, bson.M{"is_default": true})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	folder := &models.Folder{
		ID:          primitive.NewObjectID(),
		Name:        cfg.DefaultPublicFolderName,
		Description: "Shared documents visible to everyone",
		AccessLevel: models.AccessPublic,
		Departments: []primitive.ObjectID{},
		IsDefault:   true,
		IsPublic:    true,
		CreatorName: "System",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := Folders().InsertOne(ctx, folder); err != nil {
		return err
	}

	log.Printf("Seeded default public folder %q", folder.Name)
	return nil
}

// seedDepartments creates the departments named in configuration when the
// collection is still empty. An established deployment is never touched.
func seedDepartments(ctx context.Context, cfg *config.Config) error {
	if len(cfg.SeedDepartments) == 0 {
		return nil
	}

	count, err := Departments().CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	docs := make([]interface{}, 0, len(cfg.SeedDepartments))
	for _, name := range cfg.SeedDepartments {
		docs = append(docs, models.Department{
			ID:        primitive.NewObjectID(),
			Name:      name,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	if _, err := Departments().InsertMany(ctx, docs); err != nil {
		return err
	}

	log.Printf("Seeded %d departments", len(docs))
	return nil
}

func seedAdminUser(ctx context.Context, cfg *config.Config) error {
	count, err := Users().CountDocuments(ctx, bson.M{"role": models.RoleAdmin})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	password := cfg.AdminDefaultPass
	if password == "" {
		password, err = utils.GenerateSecureToken(16)
		if err != nil {
			return err
		}
		log.Printf("Generated initial admin password: %s", password)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	now := time.Now()
	admin := &models.User{
		ID:        primitive.NewObjectID(),
		Username:  "admin",
		Email:     cfg.AdminDefaultEmail,
		Password:  hash,
		FirstName: "System",
		LastName:  "Administrator",
		Role:      models.RoleAdmin,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := Users().InsertOne(ctx, admin); err != nil {
		return err
	}

	log.Printf("Seeded initial admin account %s", admin.Email)
	return nil
}
