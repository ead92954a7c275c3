package access

import (
	"testing"

	"opsdesk/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newUser(role string, dept *primitive.ObjectID) *models.User {
	return &models.User{
		ID:           primitive.NewObjectID(),
		Role:         role,
		DepartmentID: dept,
	}
}

func publicRoot() *models.Folder {
	return &models.Folder{
		ID:          primitive.NewObjectID(),
		Name:        "Public Documents",
		AccessLevel: models.AccessPublic,
		IsDefault:   true,
		IsPublic:    true,
	}
}

func departmentFolder(root *models.Folder, depts ...primitive.ObjectID) *models.Folder {
	return &models.Folder{
		ID:          primitive.NewObjectID(),
		Name:        "Department Branch",
		AccessLevel: models.AccessDepartment,
		Departments: depts,
		Parent:      root.Ref(),
	}
}

func TestIsPublicRoot(t *testing.T) {
	root := publicRoot()
	assert.True(t, IsPublicRoot(root))

	// A public folder that is not the seeded default does not qualify.
	assert.False(t, IsPublicRoot(&models.Folder{IsPublic: true}))

	// Neither does a default public folder that has a parent.
	nested := publicRoot()
	nested.Parent = root.Ref()
	assert.False(t, IsPublicRoot(nested))

	assert.False(t, IsPublicRoot(nil))
}

func TestCanCreateFolder(t *testing.T) {
	dept := primitive.NewObjectID()
	otherDept := primitive.NewObjectID()
	root := publicRoot()
	deptUser := newUser(models.RoleUser, &dept)

	branch := departmentFolder(root, dept)
	branch.AccessLevel = models.AccessPublic

	tests := []struct {
		name    string
		user    *models.User
		current *models.Folder
		want    bool
	}{
		{"nil user", nil, nil, false},
		{"unknown role", newUser("intern", &dept), nil, false},
		{"admin anywhere", newUser(models.RoleAdmin, nil), departmentFolder(root, otherDept), true},
		{"director anywhere", newUser(models.RoleDirector, nil), nil, true},
		{"regular user at root", deptUser, nil, true},
		{"regular user in public root", deptUser, root, true},
		{"own department branch", deptUser, branch, true},
		{"foreign department branch", deptUser, func() *models.Folder {
			f := departmentFolder(root, otherDept)
			f.AccessLevel = models.AccessPublic
			return f
		}(), false},
		{"own private folder", deptUser, &models.Folder{
			AccessLevel: models.AccessPrivate,
			CreatedBy:   deptUser.ID,
		}, true},
		{"someone else's private folder", deptUser, &models.Folder{
			AccessLevel: models.AccessPrivate,
			CreatedBy:   primitive.NewObjectID(),
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanCreateFolder(tt.user, tt.current))
		})
	}
}

// TestCreateGateMatchesDerivation checks that any creation the gate admits
// yields a folder the creator can still see at root afterwards.
func TestCreateGateMatchesDerivation(t *testing.T) {
	dept := primitive.NewObjectID()
	root := publicRoot()
	branch := departmentFolder(root, dept)
	publicBranch := departmentFolder(root, dept)
	publicBranch.AccessLevel = models.AccessPublic

	users := []*models.User{
		newUser(models.RoleAdmin, nil),
		newUser(models.RoleDirector, &dept),
		newUser(models.RoleDepartment, &dept),
		newUser(models.RoleUser, &dept),
		newUser(models.RoleUser, nil),
	}
	contexts := []*models.Folder{nil, root, branch, publicBranch}

	for _, user := range users {
		for _, current := range contexts {
			if !CanCreateFolder(user, current) {
				continue
			}
			level, depts := ResolveAccessLevelForNewFolder(user, current)
			created := &models.Folder{
				ID:          primitive.NewObjectID(),
				AccessLevel: level,
				Departments: depts,
				IsPublic:    level == models.AccessPublic,
				CreatedBy:   user.ID,
			}
			if current != nil {
				created.Parent = current.Ref()
			}
			assert.True(t, CanSeeFolderAtRoot(user, created),
				"user role %s lost sight of a folder it just created (level %s)", user.Role, level)
		}
	}
}

func TestResolveAccessLevelForNewFolder(t *testing.T) {
	dept := primitive.NewObjectID()
	user := newUser(models.RoleUser, &dept)
	root := publicRoot()

	level, depts := ResolveAccessLevelForNewFolder(user, nil)
	assert.Equal(t, models.AccessPrivate, level)
	assert.Empty(t, depts)

	level, depts = ResolveAccessLevelForNewFolder(user, root)
	assert.Equal(t, models.AccessDepartment, level)
	assert.Equal(t, []primitive.ObjectID{dept}, depts)

	branch := departmentFolder(root, dept)
	branch.AccessLevel = models.AccessPublic
	level, depts = ResolveAccessLevelForNewFolder(user, branch)
	assert.Equal(t, models.AccessPublic, level)
	assert.Equal(t, []primitive.ObjectID{dept}, depts)

	deptBranch := departmentFolder(root, dept)
	level, _ = ResolveAccessLevelForNewFolder(user, deptBranch)
	assert.Equal(t, models.AccessPublic, level)
}

func TestCanSeeFolderAtRoot(t *testing.T) {
	deptA := primitive.NewObjectID()
	deptB := primitive.NewObjectID()
	userA := newUser(models.RoleUser, &deptA)

	visible := []*models.Folder{
		publicRoot(),
		{AccessLevel: models.AccessPublic},
		{AccessLevel: models.AccessDepartment, Departments: []primitive.ObjectID{deptA}},
		{AccessLevel: models.AccessPrivate, CreatedBy: userA.ID},
	}
	hidden := []*models.Folder{
		{AccessLevel: models.AccessDepartment, Departments: []primitive.ObjectID{deptB}},
		{AccessLevel: models.AccessPrivate, CreatedBy: primitive.NewObjectID()},
	}

	for _, f := range visible {
		assert.True(t, CanSeeFolderAtRoot(userA, f), "folder %q should be visible", f.Name)
	}
	for _, f := range hidden {
		assert.False(t, CanSeeFolderAtRoot(userA, f), "folder %q should be hidden", f.Name)
	}

	admin := newUser(models.RoleAdmin, nil)
	for _, f := range append(visible, hidden...) {
		assert.True(t, CanSeeFolderAtRoot(admin, f))
	}
}

func TestCanSeeFileInFolder(t *testing.T) {
	dept := primitive.NewObjectID()
	user := newUser(models.RoleUser, &dept)
	stranger := newUser(models.RoleUser, nil)

	own := &models.File{CreatedBy: user.ID}
	assert.True(t, CanSeeFileInFolder(user, own, nil))

	deptFile := &models.File{
		CreatedBy:   primitive.NewObjectID(),
		Departments: []primitive.ObjectID{dept},
	}
	assert.True(t, CanSeeFileInFolder(user, deptFile, nil))
	assert.False(t, CanSeeFileInFolder(stranger, deptFile, nil))

	shared := &models.File{
		CreatedBy:   primitive.NewObjectID(),
		SharedUsers: []primitive.ObjectID{stranger.ID},
	}
	assert.True(t, CanSeeFileInFolder(stranger, shared, nil))

	inPublic := &models.File{CreatedBy: primitive.NewObjectID()}
	assert.True(t, CanSeeFileInFolder(stranger, inPublic, publicRoot()))
	assert.False(t, CanSeeFileInFolder(stranger, inPublic, nil))
}

func TestCanDeleteFolderRefusesDefault(t *testing.T) {
	admin := newUser(models.RoleAdmin, nil)
	root := publicRoot()

	assert.False(t, CanDeleteFolder(admin, root), "the seeded public folder must survive even admins")
	assert.True(t, CanShareFolder(admin, root))

	owned := &models.Folder{CreatedBy: admin.ID}
	assert.True(t, CanDeleteFolder(admin, owned))
}

func TestFilePermissionFlags(t *testing.T) {
	dept := primitive.NewObjectID()
	user := newUser(models.RoleUser, &dept)

	deptFile := &models.File{
		CreatedBy:   primitive.NewObjectID(),
		Departments: []primitive.ObjectID{dept},
	}

	perms := FilePermissions(user, deptFile)
	assert.True(t, perms.CanEdit, "department members may edit")
	assert.False(t, perms.CanDelete, "only the creator may delete")
	assert.False(t, perms.CanShare)

	own := &models.File{CreatedBy: user.ID}
	perms = FilePermissions(user, own)
	assert.True(t, perms.CanEdit)
	assert.True(t, perms.CanDelete)
	assert.True(t, perms.CanShare)
}
