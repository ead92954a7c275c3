package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification types emitted by the services.
const (
	NotificationFileShared   = "file_shared"
	NotificationFolderShared = "folder_shared"
	NotificationFileStatus   = "file_status"
)

type Notification struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID  `bson:"user_id" json:"user_id"`
	Type      string              `bson:"type" json:"type"`
	Title     string              `bson:"title" json:"title"`
	Message   string              `bson:"message" json:"message"`
	RefID     *primitive.ObjectID `bson:"ref_id,omitempty" json:"ref_id,omitempty"`
	IsRead    bool                `bson:"is_read" json:"is_read"`
	ReadAt    *time.Time          `bson:"read_at,omitempty" json:"read_at,omitempty"`
	CreatedAt time.Time           `bson:"created_at" json:"created_at"`
}
