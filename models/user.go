package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles, from most to least privileged. Any value outside this set is
// treated as the most restrictive role by the access package.
const (
	RoleAdmin      = "admin"
	RoleDirector   = "director"
	RoleDepartment = "department"
	RoleUser       = "user"
)

type User struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Username     string              `bson:"username" json:"username" validate:"required,min=3,max=50"`
	Email        string              `bson:"email" json:"email" validate:"required,email"`
	Password     string              `bson:"password" json:"-" validate:"required,min=6"`
	FirstName    string              `bson:"first_name" json:"first_name" validate:"required"`
	LastName     string              `bson:"last_name" json:"last_name" validate:"required"`
	Role         string              `bson:"role" json:"role" validate:"required,user_role"`
	DepartmentID *primitive.ObjectID `bson:"department_id,omitempty" json:"department_id,omitempty"`
	Position     string              `bson:"position" json:"position"`
	IsActive     bool                `bson:"is_active" json:"is_active"`
	LastLoginAt  *time.Time          `bson:"last_login_at,omitempty" json:"last_login_at,omitempty"`
	CreatedAt    time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time           `bson:"updated_at" json:"updated_at"`
}

// DisplayName returns the name shown in listings and searched by the
// list view engine.
func (u *User) DisplayName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// InDepartment reports whether the user's own department matches id.
func (u *User) InDepartment(id primitive.ObjectID) bool {
	return u.DepartmentID != nil && *u.DepartmentID == id
}

// Profile strips credentials and internal flags for listing responses.
func (u *User) Profile() UserProfile {
	return UserProfile{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		Position:  u.Position,
	}
}

type UserProfile struct {
	ID         primitive.ObjectID `json:"id"`
	Username   string             `json:"username"`
	Email      string             `json:"email"`
	FirstName  string             `json:"first_name"`
	LastName   string             `json:"last_name"`
	Role       string             `json:"role"`
	Position   string             `json:"position"`
	Department *Department        `json:"department,omitempty"`
}
