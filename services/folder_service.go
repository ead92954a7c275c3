package services

import (
	"context"
	"fmt"
	"time"

	"opsdesk/access"
	"opsdesk/database"
	"opsdesk/explorer"
	"opsdesk/models"
	"opsdesk/storage"
	"opsdesk/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FolderService struct {
	folderCollection *mongo.Collection
	fileCollection   *mongo.Collection
	notifications    *NotificationService
	users            *UserService
}

func NewFolderService() *FolderService {
	return &FolderService{
		folderCollection: database.Folders(),
		fileCollection:   database.Files(),
		notifications:    NewNotificationService(),
		users:            NewUserService(),
	}
}

// FolderContents is one rendered navigation context: the current folder
// (nil at root), the trail to it, and the requested listing page.
type FolderContents struct {
	Folder     *models.Folder          `json:"folder,omitempty"`
	Breadcrumb []models.BreadcrumbItem `json:"breadcrumb"`
	Listing    explorer.Result         `json:"listing"`
}

// Contents projects the navigation context visible to user and renders
// the requested page. The full folder set is fetched and projected on
// every call; visibility is always evaluated against the requesting user.
func (fs *FolderService) Contents(user *models.User, folderID *primitive.ObjectID, q explorer.Query) (*FolderContents, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	allFolders, err := fs.listAllFolders(ctx)
	if err != nil {
		return nil, err
	}
	index := explorer.FolderIndex(allFolders)

	var current *models.Folder
	if folderID != nil {
		current = index[*folderID]
		if current == nil {
			return nil, fmt.Errorf("folder %s: %w", folderID.Hex(), ErrNotFound)
		}
		if !access.CanSeeFolderAtRoot(user, current) {
			return nil, fmt.Errorf("folder %s: %w", folderID.Hex(), ErrForbidden)
		}
		current.Permissions = access.FolderPermissions(user, current)
	}

	var files []models.File
	if current != nil {
		files, err = fs.listFolderFiles(ctx, current.ID)
		if err != nil {
			return nil, err
		}
		decorateFiles(files, user, current)
	}

	items := explorer.Project(user, allFolders, files, current)
	for _, it := range items {
		if it.Kind == explorer.KindFolder {
			it.Folder.Permissions = access.FolderPermissions(user, it.Folder)
		}
	}

	return &FolderContents{
		Folder:     current,
		Breadcrumb: explorer.Breadcrumb(index, current),
		Listing:    explorer.View(items, q),
	}, nil
}

// GetFolder returns a single folder with per-user permission flags.
func (fs *FolderService) GetFolder(user *models.User, folderID primitive.ObjectID) (*models.Folder, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	folder, err := fs.findFolder(ctx, folderID)
	if err != nil {
		return nil, err
	}
	if !access.CanSeeFolderAtRoot(user, folder) {
		return nil, fmt.Errorf("folder %s: %w", folderID.Hex(), ErrForbidden)
	}

	folder.Permissions = access.FolderPermissions(user, folder)
	return folder, nil
}

// Breadcrumb returns the root-to-folder trail. Dangling parents truncate
// the trail rather than failing the request.
func (fs *FolderService) Breadcrumb(user *models.User, folderID primitive.ObjectID) ([]models.BreadcrumbItem, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	allFolders, err := fs.listAllFolders(ctx)
	if err != nil {
		return nil, err
	}
	index := explorer.FolderIndex(allFolders)

	current := index[folderID]
	if current == nil {
		return nil, fmt.Errorf("folder %s: %w", folderID.Hex(), ErrNotFound)
	}
	if !access.CanSeeFolderAtRoot(user, current) {
		return nil, fmt.Errorf("folder %s: %w", folderID.Hex(), ErrForbidden)
	}

	return explorer.Breadcrumb(index, current), nil
}

// CreateFolder creates a folder in the given parent context. Non-privileged
// roles never choose the access level; it is derived from the parent so the
// creator can always see what they just created.
func (fs *FolderService) CreateFolder(user *models.User, req *models.FolderCreateRequest) (*models.Folder, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var parent *models.Folder
	if req.ParentID != "" {
		parentID, err := primitive.ObjectIDFromHex(req.ParentID)
		if err != nil {
			return nil, fmt.Errorf("invalid parent folder id: %w", ErrNotFound)
		}
		parent, err = fs.findFolder(ctx, parentID)
		if err != nil {
			return nil, fmt.Errorf("parent folder: %w", err)
		}
	}

	if !access.CanCreateFolder(user, parent) {
		return nil, fmt.Errorf("create folder: %w", ErrForbidden)
	}

	accessLevel, departments := access.ResolveAccessLevelForNewFolder(user, parent)
	if access.IsPrivileged(user) && req.AccessLevel != "" {
		accessLevel = req.AccessLevel
		departments = utils.StringsToObjectIDs(req.Departments)
	}
	if departments == nil {
		departments = []primitive.ObjectID{}
	}

	if err := fs.checkDuplicateName(ctx, req.Name, parent); err != nil {
		return nil, err
	}

	now := time.Now()
	folder := &models.Folder{
		ID:          primitive.NewObjectID(),
		Name:        req.Name,
		Description: req.Description,
		AccessLevel: accessLevel,
		Departments: departments,
		IsPublic:    accessLevel == models.AccessPublic,
		CreatedBy:   user.ID,
		CreatorName: user.DisplayName(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if parent != nil {
		folder.Parent = parent.Ref()
	}

	if _, err := fs.folderCollection.InsertOne(ctx, folder); err != nil {
		return nil, fmt.Errorf("failed to create folder: %v", err)
	}

	if parent != nil {
		fs.adjustFolderCount(ctx, parent.ID, 1)
	}

	folder.Permissions = access.FolderPermissions(user, folder)
	return folder, nil
}

// DeleteFolder removes a folder and everything under it. The default
// public folder is never deletable; non-privileged users may only delete
// folders they created.
func (fs *FolderService) DeleteFolder(user *models.User, folderID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	folder, err := fs.findFolder(ctx, folderID)
	if err != nil {
		return err
	}

	if folder.IsDefault {
		return ErrDefaultFolder
	}
	if !access.CanDeleteFolder(user, folder) {
		return fmt.Errorf("delete folder %s: %w", folderID.Hex(), ErrForbidden)
	}

	if err := fs.deleteFolderTree(ctx, folderID); err != nil {
		return err
	}

	if folder.Parent != nil {
		fs.adjustFolderCount(ctx, folder.Parent.ID, -1)
	}
	return nil
}

// ShareFolder grants additional departments access to a department-scoped
// folder and notifies the affected users.
func (fs *FolderService) ShareFolder(user *models.User, folderID primitive.ObjectID, req *models.ShareRequest) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	folder, err := fs.findFolder(ctx, folderID)
	if err != nil {
		return err
	}
	if !access.CanShareFolder(user, folder) {
		return fmt.Errorf("share folder %s: %w", folderID.Hex(), ErrForbidden)
	}

	departmentIDs := utils.StringsToObjectIDs(req.Departments)
	if len(departmentIDs) > 0 {
		_, err = fs.folderCollection.UpdateOne(ctx,
			bson.M{"_id": folderID},
			bson.M{
				"$addToSet": bson.M{"departments": bson.M{"$each": departmentIDs}},
				"$set":      bson.M{"updated_at": time.Now()},
			},
		)
		if err != nil {
			return fmt.Errorf("failed to share folder: %v", err)
		}
	}

	recipients, err := fs.users.ResolveRecipients(ctx, utils.StringsToObjectIDs(req.Users), departmentIDs)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("%s shared the folder %q with you", user.DisplayName(), folder.Name)
	fs.notifications.NotifyUsers(ctx, recipients, models.NotificationFolderShared, title, req.Message, &folder.ID)
	return recordShareGrant(ctx, "folder", folderID, user.ID, req)
}

// Helper methods

func (fs *FolderService) listAllFolders(ctx context.Context) ([]models.Folder, error) {
	cursor, err := fs.folderCollection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.M{"name": 1}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var folders []models.Folder
	if err = cursor.All(ctx, &folders); err != nil {
		return nil, err
	}
	return folders, nil
}

func (fs *FolderService) listFolderFiles(ctx context.Context, folderID primitive.ObjectID) ([]models.File, error) {
	cursor, err := fs.fileCollection.Find(ctx,
		bson.M{"folder_id": folderID},
		options.Find().SetSort(bson.M{"title": 1}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var files []models.File
	if err = cursor.All(ctx, &files); err != nil {
		return nil, err
	}
	return files, nil
}

func (fs *FolderService) findFolder(ctx context.Context, folderID primitive.ObjectID) (*models.Folder, error) {
	var folder models.Folder
	err := fs.folderCollection.FindOne(ctx, bson.M{"_id": folderID}).Decode(&folder)
	if err != nil {
		return nil, fmt.Errorf("folder %s: %w", folderID.Hex(), ErrNotFound)
	}
	return &folder, nil
}

func (fs *FolderService) checkDuplicateName(ctx context.Context, name string, parent *models.Folder) error {
	filter := bson.M{"name": name}
	if parent != nil {
		filter["parent._id"] = parent.ID
	} else {
		filter["parent"] = bson.M{"$exists": false}
	}

	count, err := fs.folderCollection.CountDocuments(ctx, filter)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateName
	}
	return nil
}

// deleteFolderTree removes the folder, its files and stored objects, and
// recurses into subfolders. Stored-object deletion is best effort.
func (fs *FolderService) deleteFolderTree(ctx context.Context, folderID primitive.ObjectID) error {
	cursor, err := fs.fileCollection.Find(ctx, bson.M{"folder_id": folderID})
	if err != nil {
		return err
	}
	var files []models.File
	if err = cursor.All(ctx, &files); err != nil {
		return err
	}
	for i := range files {
		if files[i].Object.Key != "" {
			storage.GetProvider().Delete(ctx, files[i].Object.Key)
		}
	}
	if _, err := fs.fileCollection.DeleteMany(ctx, bson.M{"folder_id": folderID}); err != nil {
		return err
	}

	subCursor, err := fs.folderCollection.Find(ctx, bson.M{"parent._id": folderID})
	if err != nil {
		return err
	}
	var subfolders []models.Folder
	if err = subCursor.All(ctx, &subfolders); err != nil {
		return err
	}
	for i := range subfolders {
		if err := fs.deleteFolderTree(ctx, subfolders[i].ID); err != nil {
			return err
		}
	}

	_, err = fs.folderCollection.DeleteOne(ctx, bson.M{"_id": folderID})
	return err
}

func (fs *FolderService) adjustFolderCount(ctx context.Context, folderID primitive.ObjectID, change int) {
	fs.folderCollection.UpdateOne(ctx,
		bson.M{"_id": folderID},
		bson.M{"$inc": bson.M{"folder_count": change}},
	)
}

// decorateFiles fills the per-requester derived fields before projection.
func decorateFiles(files []models.File, user *models.User, current *models.Folder) {
	inPublic := current != nil && (current.IsPublic || current.AccessLevel == models.AccessPublic)
	for i := range files {
		files[i].IsInPublicFolder = inPublic
		files[i].SharedWithMe = user != nil && utils.ContainsObjectID(files[i].SharedUsers, user.ID)
		files[i].Permissions = access.FilePermissions(user, &files[i])
	}
}
