package explorer

import (
	"fmt"
	"testing"
	"time"

	"opsdesk/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func folderNamed(name string) Item {
	return FolderItem(&models.Folder{
		ID:        primitive.NewObjectID(),
		Name:      name,
		CreatedAt: time.Now(),
	})
}

func fileSized(title string, size int64) Item {
	return FileItem(&models.File{
		ID:    primitive.NewObjectID(),
		Title: title,
		Object: models.StoredObject{
			Size:        size,
			ContentType: "application/pdf",
		},
		CreatedAt: time.Now(),
	})
}

// TestFoldersAlwaysPrecedeFiles drives every sort field in both directions
// over a mixed set and checks that no file ever lands before a folder.
func TestFoldersAlwaysPrecedeFiles(t *testing.T) {
	items := []Item{
		fileSized("zzz.pdf", 10),
		folderNamed("Aardvark"),
		fileSized("aaa.pdf", 999),
		folderNamed("Zebra"),
	}

	fields := []SortField{SortByName, SortByDate, SortBySize, SortByType}
	directions := []SortDirection{Ascending, Descending}

	for _, field := range fields {
		for _, dir := range directions {
			result := View(items, Query{SortBy: field, Direction: dir})

			seenFile := false
			for _, it := range result.Items {
				if it.Kind == KindFile {
					seenFile = true
				} else {
					assert.False(t, seenFile,
						"folder after a file with sort %s %s", field, dir)
				}
			}
		}
	}
}

// TestSizeSortWithinKinds checks that size ordering applies within files
// while folders keep their block up front.
func TestSizeSortWithinKinds(t *testing.T) {
	items := []Item{
		fileSized("small", 10),
		folderNamed("A"),
		fileSized("large", 100),
	}

	result := View(items, Query{SortBy: SortBySize, Direction: Descending})

	assert.Equal(t, "A", result.Items[0].Name())
	assert.Equal(t, "large", result.Items[1].Name())
	assert.Equal(t, "small", result.Items[2].Name())
}

func TestNameSortCaseInsensitive(t *testing.T) {
	items := []Item{
		fileSized("banana", 1),
		fileSized("Apple", 1),
		fileSized("cherry", 1),
	}

	result := View(items, Query{SortBy: SortByName})

	assert.Equal(t, "Apple", result.Items[0].Name())
	assert.Equal(t, "banana", result.Items[1].Name())
	assert.Equal(t, "cherry", result.Items[2].Name())
}

// TestPaginationCoversEveryItem pages through result sets around the page
// boundary and checks no item is dropped or duplicated.
func TestPaginationCoversEveryItem(t *testing.T) {
	for _, total := range []int{0, 1, PageSize - 1, PageSize, PageSize + 1, 2 * PageSize, 2*PageSize + 7} {
		items := make([]Item, 0, total)
		for i := 0; i < total; i++ {
			items = append(items, fileSized(fmt.Sprintf("file-%04d", i), int64(i)))
		}

		first := View(items, Query{Page: 1})
		assert.Equal(t, total, first.TotalItems)

		seen := make(map[string]bool)
		for page := 1; page <= first.TotalPages; page++ {
			result := View(items, Query{Page: page})
			assert.LessOrEqual(t, len(result.Items), PageSize)
			for _, it := range result.Items {
				assert.False(t, seen[it.Name()], "item %s repeated (total %d)", it.Name(), total)
				seen[it.Name()] = true
			}
		}
		assert.Len(t, seen, total, "pages did not cover the set (total %d)", total)
	}
}

// TestPageOverflowResets asks for a page past the end and expects page 1
// with the reset flag rather than an empty page.
func TestPageOverflowResets(t *testing.T) {
	items := []Item{fileSized("only", 1)}

	result := View(items, Query{Page: 5})

	assert.Equal(t, 1, result.Page)
	assert.True(t, result.PageReset)
	assert.Len(t, result.Items, 1)

	// An empty set never signals a reset.
	empty := View(nil, Query{Page: 3})
	assert.Equal(t, 1, empty.Page)
	assert.False(t, empty.PageReset)
	assert.Empty(t, empty.Items)
}

// TestSearchNarrowsOnly checks that every search hit is also present in the
// unfiltered set and matches on name, description or creator.
func TestSearchNarrowsOnly(t *testing.T) {
	report := FileItem(&models.File{
		ID:          primitive.NewObjectID(),
		Title:       "Quarterly Report",
		Description: "numbers",
		CreatorName: "Dana Smith",
	})
	memo := FileItem(&models.File{
		ID:          primitive.NewObjectID(),
		Title:       "Memo",
		Description: "quarterly figures attached",
		CreatorName: "Lee Jones",
	})
	photo := FileItem(&models.File{
		ID:          primitive.NewObjectID(),
		Title:       "Offsite Photo",
		CreatorName: "Dana Smith",
	})
	items := []Item{report, memo, photo}

	byTitle := View(items, Query{Search: "quarterly"})
	assert.Len(t, byTitle.Items, 2, "matches in title and description")

	byCreator := View(items, Query{Search: "dana"})
	assert.Len(t, byCreator.Items, 2)

	none := View(items, Query{Search: "nonexistent"})
	assert.Empty(t, none.Items)
	assert.Equal(t, 0, none.TotalItems)
}

// TestStableSortKeepsTies verifies equal keys keep their original relative
// order across repeated renders.
func TestStableSortKeepsTies(t *testing.T) {
	when := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	first := FileItem(&models.File{ID: primitive.NewObjectID(), Title: "first", CreatedAt: when})
	second := FileItem(&models.File{ID: primitive.NewObjectID(), Title: "second", CreatedAt: when})
	items := []Item{first, second}

	for i := 0; i < 3; i++ {
		result := View(items, Query{SortBy: SortByDate})
		assert.Equal(t, "first", result.Items[0].Name())
		assert.Equal(t, "second", result.Items[1].Name())
	}
}
