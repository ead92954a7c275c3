package explorer

import (
	"testing"

	"opsdesk/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testUser(role string, dept *primitive.ObjectID) *models.User {
	return &models.User{ID: primitive.NewObjectID(), Role: role, DepartmentID: dept}
}

func testPublicRoot() models.Folder {
	return models.Folder{
		ID:          primitive.NewObjectID(),
		Name:        "Public Documents",
		AccessLevel: models.AccessPublic,
		IsDefault:   true,
		IsPublic:    true,
	}
}

// TestProjectRoot covers the root listing: a department user sees the
// public root and their own department's folder but not a foreign
// department's or a stranger's private folder. Files never appear at root.
func TestProjectRoot(t *testing.T) {
	deptA := primitive.NewObjectID()
	deptB := primitive.NewObjectID()
	user := testUser(models.RoleUser, &deptA)

	root := testPublicRoot()
	folders := []models.Folder{
		root,
		{ID: primitive.NewObjectID(), Name: "Engineering", AccessLevel: models.AccessDepartment, Departments: []primitive.ObjectID{deptA}},
		{ID: primitive.NewObjectID(), Name: "Finance", AccessLevel: models.AccessDepartment, Departments: []primitive.ObjectID{deptB}},
		{ID: primitive.NewObjectID(), Name: "Private Notes", AccessLevel: models.AccessPrivate, CreatedBy: primitive.NewObjectID()},
	}
	files := []models.File{
		{ID: primitive.NewObjectID(), Title: "stray", FolderID: &root.ID},
	}

	items := Project(user, folders, files, nil)

	names := make([]string, 0, len(items))
	for _, it := range items {
		assert.Equal(t, KindFolder, it.Kind, "root listings contain folders only")
		names = append(names, it.Name())
	}
	assert.ElementsMatch(t, []string{"Public Documents", "Engineering"}, names)
}

// TestProjectInsideFolder checks that only direct children and visible
// files of the current folder are listed, folders first.
func TestProjectInsideFolder(t *testing.T) {
	dept := primitive.NewObjectID()
	user := testUser(models.RoleUser, &dept)

	root := testPublicRoot()
	child := models.Folder{
		ID:          primitive.NewObjectID(),
		Name:        "Reports",
		AccessLevel: models.AccessDepartment,
		Departments: []primitive.ObjectID{dept},
		Parent:      root.Ref(),
	}
	grandchild := models.Folder{
		ID:     primitive.NewObjectID(),
		Name:   "Archive",
		Parent: child.Ref(),
	}
	folders := []models.Folder{root, child, grandchild}

	otherFolderID := primitive.NewObjectID()
	files := []models.File{
		{ID: primitive.NewObjectID(), Title: "in public root", FolderID: &root.ID, CreatedBy: primitive.NewObjectID()},
		{ID: primitive.NewObjectID(), Title: "elsewhere", FolderID: &otherFolderID, CreatedBy: primitive.NewObjectID()},
		{ID: primitive.NewObjectID(), Title: "orphan", FolderID: nil, CreatedBy: primitive.NewObjectID()},
	}

	items := Project(user, folders, files, &root)

	assert.Len(t, items, 2)
	assert.Equal(t, KindFolder, items[0].Kind)
	assert.Equal(t, "Reports", items[0].Name())
	assert.Equal(t, KindFile, items[1].Kind)
	assert.Equal(t, "in public root", items[1].Name())
}

func TestBreadcrumbWellFormed(t *testing.T) {
	root := testPublicRoot()
	mid := models.Folder{ID: primitive.NewObjectID(), Name: "Engineering", Parent: root.Ref()}
	leaf := models.Folder{ID: primitive.NewObjectID(), Name: "Specs", Parent: mid.Ref()}

	index := FolderIndex([]models.Folder{root, mid, leaf})
	trail := Breadcrumb(index, &leaf)

	assert.Len(t, trail, 3)
	assert.Equal(t, "Public Documents", trail[0].Name)
	assert.Equal(t, "Engineering", trail[1].Name)
	assert.Equal(t, "Specs", trail[2].Name)
}

// TestBreadcrumbCycle feeds a parent loop into the walk and expects a
// truncated trail instead of a hang.
func TestBreadcrumbCycle(t *testing.T) {
	a := models.Folder{ID: primitive.NewObjectID(), Name: "A"}
	b := models.Folder{ID: primitive.NewObjectID(), Name: "B"}
	a.Parent = b.Ref()
	b.Parent = a.Ref()

	index := FolderIndex([]models.Folder{a, b})
	trail := Breadcrumb(index, &a)

	assert.Len(t, trail, 2)
	assert.Equal(t, "B", trail[0].Name)
	assert.Equal(t, "A", trail[1].Name)
}

// TestBreadcrumbDanglingParent ends the walk at a parent missing from the
// index; the partial trail still ends at the requested folder.
func TestBreadcrumbDanglingParent(t *testing.T) {
	ghost := models.Folder{ID: primitive.NewObjectID(), Name: "Deleted"}
	leaf := models.Folder{ID: primitive.NewObjectID(), Name: "Orphan", Parent: ghost.Ref()}

	index := FolderIndex([]models.Folder{leaf})
	trail := Breadcrumb(index, &leaf)

	assert.Len(t, trail, 1)
	assert.Equal(t, "Orphan", trail[0].Name)
}

func TestBreadcrumbNil(t *testing.T) {
	assert.Nil(t, Breadcrumb(map[primitive.ObjectID]*models.Folder{}, nil))
}
