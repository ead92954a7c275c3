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

type DepartmentService struct {
	collection     *mongo.Collection
	userCollection *mongo.Collection
}

func NewDepartmentService() *DepartmentService {
	return &DepartmentService{
		collection:     database.Departments(),
		userCollection: database.Users(),
	}
}

// ListDepartments returns all departments with current member counts.
func (s *DepartmentService) ListDepartments() ([]models.Department, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := s.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var departments []models.Department
	if err = cursor.All(ctx, &departments); err != nil {
		return nil, err
	}

	for i := range departments {
		count, err := s.userCollection.CountDocuments(ctx, bson.M{
			"department_id": departments[i].ID,
			"is_active":     true,
		})
		if err == nil {
			departments[i].MembersCount = count
		}
	}
	return departments, nil
}

// GetDepartment returns one department by id.
func (s *DepartmentService) GetDepartment(departmentID primitive.ObjectID) (*models.Department, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var department models.Department
	err := s.collection.FindOne(ctx, bson.M{"_id": departmentID}).Decode(&department)
	if err != nil {
		return nil, fmt.Errorf("department %s: %w", departmentID.Hex(), ErrNotFound)
	}
	return &department, nil
}

// CreateDepartment creates a department with a unique name.
func (s *DepartmentService) CreateDepartment(name, description string) (*models.Department, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.collection.CountDocuments(ctx, bson.M{"name": name})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateName
	}

	now := time.Now()
	department := &models.Department{
		ID:          primitive.NewObjectID(),
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := s.collection.InsertOne(ctx, department); err != nil {
		return nil, fmt.Errorf("failed to create department: %v", err)
	}
	return department, nil
}
