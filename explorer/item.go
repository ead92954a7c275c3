// Package explorer turns the raw folder and file sets into what a given
// user actually sees in a navigation context: the projected item set, the
// breadcrumb trail, and the filtered, sorted, paginated page.
package explorer

import (
	"strings"
	"time"

	"opsdesk/models"
)

type ItemKind string

const (
	KindFolder ItemKind = "folder"
	KindFile   ItemKind = "file"
)

// Item is the tagged variant listed in folder contents. Exactly one of
// Folder and File is set, discriminated by Kind.
type Item struct {
	Kind   ItemKind       `json:"kind"`
	Folder *models.Folder `json:"folder,omitempty"`
	File   *models.File   `json:"file,omitempty"`
}

func FolderItem(f *models.Folder) Item { return Item{Kind: KindFolder, Folder: f} }
func FileItem(f *models.File) Item     { return Item{Kind: KindFile, File: f} }

// Name returns the display name used for search and name sorting.
func (it Item) Name() string {
	switch it.Kind {
	case KindFolder:
		return it.Folder.Name
	case KindFile:
		if it.File.Title != "" {
			return it.File.Title
		}
		return it.File.Object.Name
	}
	return ""
}

func (it Item) Description() string {
	switch it.Kind {
	case KindFolder:
		return it.Folder.Description
	case KindFile:
		return it.File.Description
	}
	return ""
}

func (it Item) CreatorName() string {
	switch it.Kind {
	case KindFolder:
		return it.Folder.CreatorName
	case KindFile:
		return it.File.CreatorName
	}
	return ""
}

func (it Item) CreatedAt() time.Time {
	switch it.Kind {
	case KindFolder:
		return it.Folder.CreatedAt
	case KindFile:
		return it.File.CreatedAt
	}
	return time.Time{}
}

// Size returns the byte size used for size sorting. Folders sort as zero.
func (it Item) Size() int64 {
	if it.Kind == KindFile {
		return it.File.Object.Size
	}
	return 0
}

// TypeKey returns the key used for type sorting: folders are the literal
// "folder", files their lower-cased content type.
func (it Item) TypeKey() string {
	if it.Kind == KindFile {
		return strings.ToLower(it.File.Object.ContentType)
	}
	return "folder"
}
