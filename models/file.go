package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// File statuses used by the request/approval flow on top of documents.
const (
	FileStatusPending  = "pending"
	FileStatusApproved = "approved"
	FileStatusRejected = "rejected"
)

type File struct {
	ID                primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title             string               `bson:"title" json:"title" validate:"required"`
	Description       string               `bson:"description" json:"description"`
	Category          string               `bson:"category" json:"category"`
	Priority          string               `bson:"priority" json:"priority"`
	Status            string               `bson:"status" json:"status"`
	RequiresSignature bool                 `bson:"requires_signature" json:"requires_signature"`
	FolderID          *primitive.ObjectID  `bson:"folder_id,omitempty" json:"folder_id,omitempty"`
	Object            StoredObject         `bson:"object" json:"object"`
	CreatedBy         primitive.ObjectID   `bson:"created_by" json:"created_by"`
	CreatorName       string               `bson:"creator_name" json:"creator_name"`
	Departments       []primitive.ObjectID `bson:"departments" json:"departments"`
	SharedUsers       []primitive.ObjectID `bson:"shared_users" json:"shared_users"`
	CreatedAt         time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time            `bson:"updated_at" json:"updated_at"`

	// Derived per requesting user when the response is assembled,
	// never persisted or cached across users.
	Permissions      *FilePermissions `bson:"-" json:"permissions,omitempty"`
	SharedWithMe     bool             `bson:"-" json:"shared_with_me"`
	IsInPublicFolder bool             `bson:"-" json:"is_in_public_folder"`
}

// StoredObject describes the underlying blob held by a storage provider.
type StoredObject struct {
	Name        string `bson:"name" json:"name"`
	Key         string `bson:"key" json:"key"`
	URL         string `bson:"url" json:"url"`
	Size        int64  `bson:"size" json:"size"`
	ContentType string `bson:"content_type" json:"content_type"`
	Provider    string `bson:"provider" json:"provider"`
}

type FilePermissions struct {
	CanEdit   bool `json:"can_edit"`
	CanDelete bool `json:"can_delete"`
	CanShare  bool `json:"can_share"`
}
