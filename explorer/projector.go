package explorer

import (
	"opsdesk/access"
	"opsdesk/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxBreadcrumbDepth bounds the parent walk. Well-formed trees never get
// close; a revisit or deeper chain truncates instead of looping.
const MaxBreadcrumbDepth = 64

// Project computes the item set visible to user in the given navigation
// context. At root (current == nil) only access-filtered folders are
// listed, never files. Inside a folder, subfolders are admitted by parent
// match alone - the parent's own gate already admitted the user - and
// files go through the per-file visibility check. Folders always precede
// files in the returned slice.
func Project(user *models.User, folders []models.Folder, files []models.File, current *models.Folder) []Item {
	var items []Item

	if current == nil {
		for i := range folders {
			if access.CanSeeFolderAtRoot(user, &folders[i]) {
				items = append(items, FolderItem(&folders[i]))
			}
		}
		return items
	}

	for i := range folders {
		if folders[i].Parent != nil && folders[i].Parent.ID == current.ID {
			items = append(items, FolderItem(&folders[i]))
		}
	}
	for i := range files {
		if files[i].FolderID == nil || *files[i].FolderID != current.ID {
			continue
		}
		if access.CanSeeFileInFolder(user, &files[i], current) {
			items = append(items, FileItem(&files[i]))
		}
	}
	return items
}

// FolderIndex builds the id lookup Breadcrumb walks over.
func FolderIndex(folders []models.Folder) map[primitive.ObjectID]*models.Folder {
	index := make(map[primitive.ObjectID]*models.Folder, len(folders))
	for i := range folders {
		index[folders[i].ID] = &folders[i]
	}
	return index
}

// Breadcrumb walks parent references from current up to the root and
// returns the trail in root-to-leaf order. A parent missing from the index
// (stale cache) or a revisited id ends the walk there; the trail is
// truncated, never an error.
func Breadcrumb(index map[primitive.ObjectID]*models.Folder, current *models.Folder) []models.BreadcrumbItem {
	if current == nil {
		return nil
	}

	var reversed []models.BreadcrumbItem
	visited := make(map[primitive.ObjectID]bool)

	node := current
	for depth := 0; node != nil && depth < MaxBreadcrumbDepth; depth++ {
		if visited[node.ID] {
			break
		}
		visited[node.ID] = true
		reversed = append(reversed, models.BreadcrumbItem{ID: node.ID, Name: node.Name})

		if node.Parent == nil {
			break
		}
		node = index[node.Parent.ID]
	}

	trail := make([]models.BreadcrumbItem, len(reversed))
	for i, item := range reversed {
		trail[len(reversed)-1-i] = item
	}
	return trail
}
