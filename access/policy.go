// Package access holds the pure authorization predicates shared by every
// navigation and mutation path. The predicates take the requesting user and
// already-fetched documents and answer yes or no; they never touch the
// database. Server-side handlers remain the authority boundary - these
// checks gate what a caller is offered, the query filters enforce it.
package access

import (
	"opsdesk/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IsPrivileged reports whether the role bypasses department and ownership
// checks entirely.
func IsPrivileged(user *models.User) bool {
	if user == nil {
		return false
	}
	return user.Role == models.RoleAdmin || user.Role == models.RoleDirector
}

func isKnownRole(role string) bool {
	switch role {
	case models.RoleAdmin, models.RoleDirector, models.RoleDepartment, models.RoleUser:
		return true
	}
	return false
}

// IsPublicRoot reports whether f is the distinguished server-seeded public
// folder every department tree hangs off of.
func IsPublicRoot(f *models.Folder) bool {
	return f != nil && f.IsDefault && f.IsPublic && f.Parent == nil
}

func hasParentPublicRoot(f *models.Folder) bool {
	return f.Parent != nil && f.Parent.IsDefault && f.Parent.IsPublic
}

func deptIn(user *models.User, departments []primitive.ObjectID) bool {
	if user == nil || user.DepartmentID == nil {
		return false
	}
	for _, id := range departments {
		if id == *user.DepartmentID {
			return true
		}
	}
	return false
}

// CanCreateFolder decides whether user may create a subfolder in the given
// context. A nil current folder means the root listing.
func CanCreateFolder(user *models.User, current *models.Folder) bool {
	if user == nil || !isKnownRole(user.Role) {
		return false
	}
	if IsPrivileged(user) {
		return true
	}
	if current == nil {
		// Root: anyone may start a private folder.
		return true
	}
	if IsPublicRoot(current) {
		// The new folder becomes department-scoped, so the creator must
		// belong to a department or they would never see it again.
		return user.DepartmentID != nil
	}
	if current.AccessLevel == models.AccessPublic && hasParentPublicRoot(current) {
		// May only extend their own department's branch.
		return deptIn(user, current.Departments)
	}
	if current.AccessLevel == models.AccessPrivate {
		return current.CreatedBy == user.ID
	}
	return false
}

// CanUploadFiles decides whether user may upload into the given folder.
// Uploads are never allowed at root.
func CanUploadFiles(user *models.User, current *models.Folder) bool {
	if user == nil || !isKnownRole(user.Role) {
		return false
	}
	if IsPrivileged(user) {
		return true
	}
	if current == nil {
		return false
	}
	if current.IsDefault && current.IsPublic {
		return true
	}
	switch current.AccessLevel {
	case models.AccessDepartment:
		return deptIn(user, current.Departments)
	case models.AccessPrivate:
		return current.CreatedBy == user.ID
	}
	return false
}

// ResolveAccessLevelForNewFolder derives the access level and owning
// departments of a folder created under current. The ladder mirrors
// CanCreateFolder case for case, so a creation the gate admitted never
// produces a folder its creator cannot see afterwards.
func ResolveAccessLevelForNewFolder(user *models.User, current *models.Folder) (string, []primitive.ObjectID) {
	ownDept := func() []primitive.ObjectID {
		if user == nil || user.DepartmentID == nil {
			return nil
		}
		return []primitive.ObjectID{*user.DepartmentID}
	}

	switch {
	case current == nil:
		return models.AccessPrivate, nil
	case IsPublicRoot(current):
		return models.AccessDepartment, ownDept()
	case current.AccessLevel == models.AccessPublic && hasParentPublicRoot(current):
		return models.AccessPublic, ownDept()
	case current.AccessLevel == models.AccessDepartment:
		return models.AccessPublic, ownDept()
	default:
		return models.AccessPrivate, nil
	}
}

// CanSeeFolderAtRoot decides whether a folder appears in the user's root
// listing. Evaluated against the requesting user on every call, never
// cached across users.
func CanSeeFolderAtRoot(user *models.User, f *models.Folder) bool {
	if user == nil || f == nil {
		return false
	}
	if IsPrivileged(user) {
		return true
	}
	if f.IsPublic || f.AccessLevel == models.AccessPublic {
		return true
	}
	if f.AccessLevel == models.AccessDepartment && deptIn(user, f.Departments) {
		return true
	}
	if f.AccessLevel == models.AccessPrivate && f.CreatedBy == user.ID {
		return true
	}
	return false
}

// CanSeeFileInFolder decides whether a file already matched to the current
// folder is visible to the user. Folder membership is checked by the caller.
func CanSeeFileInFolder(user *models.User, f *models.File, current *models.Folder) bool {
	if user == nil || f == nil {
		return false
	}
	if IsPrivileged(user) {
		return true
	}
	if f.CreatedBy == user.ID {
		return true
	}
	if f.IsInPublicFolder || (current != nil && (current.IsPublic || current.AccessLevel == models.AccessPublic)) {
		return true
	}
	if deptIn(user, f.Departments) {
		return true
	}
	if f.SharedWithMe || containsID(f.SharedUsers, user.ID) {
		return true
	}
	return false
}

// CanEditFile covers the title/description/category/priority/departments
// patch path: creator, privileged roles, or same-department users.
func CanEditFile(user *models.User, f *models.File) bool {
	if user == nil || f == nil {
		return false
	}
	if IsPrivileged(user) || f.CreatedBy == user.ID {
		return true
	}
	return deptIn(user, f.Departments)
}

// CanDeleteFile allows only the creator and privileged roles.
func CanDeleteFile(user *models.User, f *models.File) bool {
	if user == nil || f == nil {
		return false
	}
	return IsPrivileged(user) || f.CreatedBy == user.ID
}

// CanShareFile allows only the creator and privileged roles.
func CanShareFile(user *models.User, f *models.File) bool {
	return CanDeleteFile(user, f)
}

// CanDeleteFolder refuses the default folder for everyone; otherwise
// privileged roles and the folder's creator may delete.
func CanDeleteFolder(user *models.User, f *models.Folder) bool {
	if user == nil || f == nil || f.IsDefault {
		return false
	}
	return IsPrivileged(user) || f.CreatedBy == user.ID
}

// CanShareFolder mirrors folder deletion minus the default-folder refusal:
// the public root may be shared, just never removed.
func CanShareFolder(user *models.User, f *models.Folder) bool {
	if user == nil || f == nil {
		return false
	}
	return IsPrivileged(user) || f.CreatedBy == user.ID
}

// FolderPermissions computes the per-requester action flags attached to a
// folder in API responses.
func FolderPermissions(user *models.User, f *models.Folder) *models.FolderPermissions {
	canOwn := user != nil && f != nil && (IsPrivileged(user) || f.CreatedBy == user.ID)
	return &models.FolderPermissions{
		CanEdit:            canOwn && !f.IsDefault,
		CanDelete:          CanDeleteFolder(user, f),
		CanShare:           CanShareFolder(user, f),
		CanUpload:          CanUploadFiles(user, f),
		CanCreateSubfolder: CanCreateFolder(user, f),
	}
}

// FilePermissions computes the per-requester action flags for a file.
func FilePermissions(user *models.User, f *models.File) *models.FilePermissions {
	return &models.FilePermissions{
		CanEdit:   CanEditFile(user, f),
		CanDelete: CanDeleteFile(user, f),
		CanShare:  CanShareFile(user, f),
	}
}

func containsID(ids []primitive.ObjectID, id primitive.ObjectID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
