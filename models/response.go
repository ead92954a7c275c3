package models

import "time"

type APIResponse struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Error     *APIError   `json:"error,omitempty"`
	Meta      *Meta       `json:"meta,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

type Meta struct {
	Page       int `json:"page,omitempty"`
	Limit      int `json:"limit,omitempty"`
	Total      int `json:"total,omitempty"`
	TotalPages int `json:"total_pages,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Username     string `json:"username" validate:"required,min=3,max=50"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=6"`
	FirstName    string `json:"first_name" validate:"required"`
	LastName     string `json:"last_name" validate:"required"`
	DepartmentID string `json:"department_id,omitempty"`
	Position     string `json:"position"`
}

type FolderCreateRequest struct {
	Name        string `json:"name" validate:"required,folder_name"`
	ParentID    string `json:"parent_id,omitempty"`
	Description string `json:"description"`
	// Honored for admin and director only; everyone else gets the
	// level derived from the parent context.
	AccessLevel string   `json:"access_level,omitempty" validate:"omitempty,access_level"`
	Departments []string `json:"departments,omitempty"`
}

type FileUploadRequest struct {
	FolderID          string `form:"folder_id"`
	Title             string `form:"title"`
	Description       string `form:"description"`
	Category          string `form:"category"`
	Priority          string `form:"priority"`
	RequiresSignature bool   `form:"requires_signature"`
}

type FileUpdateRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Priority    *string  `json:"priority,omitempty"`
	Status      *string  `json:"status,omitempty"`
	Departments []string `json:"departments,omitempty"`
}

type MoveFileRequest struct {
	TargetFolderID string `json:"target_folder_id"`
}

type ShareRequest struct {
	Departments []string `json:"departments"`
	Users       []string `json:"users"`
	Message     string   `json:"message"`
}

type BulkRequest struct {
	FileIDs        []string `json:"file_ids" validate:"required,min=1"`
	TargetFolderID string   `json:"target_folder_id,omitempty"`
}

// BulkResult reports per-item outcomes of a bulk operation. A bulk call
/// never collapses to a single all-or-nothing verdict: callers can tell
// exactly which ids went through.
type BulkResult struct {
	Succeeded []string    `json:"succeeded"`
	Failed    []BulkError `json:"failed"`
}

type BulkError struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

// Ok reports whether every item in the batch succeeded.
func (r *BulkResult) Ok() bool { return len(r.Failed) == 0 }

type CheckInRequest struct {
	Location string `json:"location"`
	Notes    string `json:"notes"`
}

type CheckOutRequest struct {
	Notes string `json:"notes"`
}
