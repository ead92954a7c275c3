package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Access levels, the primary folder visibility discriminant.
const (
	AccessPublic     = "public"
	AccessDepartment = "department"
	AccessPrivate    = "private"
)

type Folder struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name        string               `bson:"name" json:"name" validate:"required,folder_name"`
	Description string               `bson:"description" json:"description"`
	Parent      *FolderRef           `bson:"parent,omitempty" json:"parent,omitempty"`
	AccessLevel string               `bson:"access_level" json:"access_level" validate:"required,access_level"`
	Departments []primitive.ObjectID `bson:"departments" json:"departments"`
	IsDefault   bool                 `bson:"is_default" json:"is_default"`
	IsPublic    bool                 `bson:"is_public" json:"is_public"`
	CreatedBy   primitive.ObjectID   `bson:"created_by" json:"created_by"`
	CreatorName string               `bson:"creator_name" json:"creator_name"`
	FileCount   int                  `bson:"file_count" json:"file_count"`
	FolderCount int                  `bson:"folder_count" json:"folder_count"`
	CreatedAt   time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time            `bson:"updated_at" json:"updated_at"`

	// Computed for the requesting user, never persisted.
	Permissions *FolderPermissions `bson:"-" json:"permissions,omitempty"`
}

// FolderRef is the denormalized parent reference embedded in each folder,
// carrying the attributes the access predicates need without another fetch.
type FolderRef struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Name        string             `bson:"name" json:"name"`
	AccessLevel string             `bson:"access_level" json:"access_level"`
	IsDefault   bool               `bson:"is_default" json:"is_default"`
	IsPublic    bool               `bson:"is_public" json:"is_public"`
}

// Ref returns the embeddable reference for folders created under f.
func (f *Folder) Ref() *FolderRef {
	return &FolderRef{
		ID:          f.ID,
		Name:        f.Name,
		AccessLevel: f.AccessLevel,
		IsDefault:   f.IsDefault,
		IsPublic:    f.IsPublic,
	}
}

// FolderPermissions are the per-requester action flags attached to every
// folder in a response.
type FolderPermissions struct {
	CanEdit            bool `json:"can_edit"`
	CanDelete          bool `json:"can_delete"`
	CanShare           bool `json:"can_share"`
	CanUpload          bool `json:"can_upload"`
	CanCreateSubfolder bool `json:"can_create_subfolder"`
}

// BreadcrumbItem is one hop of the root-to-current navigation trail.
type BreadcrumbItem struct {
	ID   primitive.ObjectID `json:"id"`
	Name string             `json:"name"`
}
