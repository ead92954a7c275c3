package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"opsdesk/access"
	"opsdesk/config"
	"opsdesk/database"
	"opsdesk/models"
	"opsdesk/storage"
	"opsdesk/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FileService struct {
	fileCollection   *mongo.Collection
	folderCollection *mongo.Collection
	notifications    *NotificationService
	users            *UserService
}

func NewFileService() *FileService {
	return &FileService{
		fileCollection:   database.Files(),
		folderCollection: database.Folders(),
		notifications:    NewNotificationService(),
		users:            NewUserService(),
	}
}

// Upload stores the document and its metadata. Missing metadata fields
// are normalized to placeholders so listings never render blanks.
func (s *FileService) Upload(user *models.User, req *models.FileUploadRequest, header *multipart.FileHeader) (*models.File, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if header.Size > config.AppConfig.MaxUploadSize {
		return nil, fmt.Errorf("file exceeds maximum size of %s", utils.FormatFileSize(config.AppConfig.MaxUploadSize))
	}

	folderID, err := primitive.ObjectIDFromHex(req.FolderID)
	if err != nil {
		return nil, fmt.Errorf("invalid folder id: %w", ErrNotFound)
	}
	folder, err := s.findFolder(ctx, folderID)
	if err != nil {
		return nil, err
	}
	if !access.CanUploadFiles(user, folder) {
		return nil, fmt.Errorf("upload to folder %s: %w", folderID.Hex(), ErrForbidden)
	}

	src, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %v", err)
	}
	defer src.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := storage.MakeObjectKey(header.Filename)
	provider := storage.GetProvider()
	if err := provider.Upload(ctx, key, src, header.Size, contentType); err != nil {
		return nil, fmt.Errorf("failed to store file: %v", err)
	}

	now := time.Now()
	file := &models.File{
		ID:                primitive.NewObjectID(),
		Title:             utils.DefaultString(req.Title, "Untitled"),
		Description:       utils.DefaultString(req.Description, "No description"),
		Category:          utils.DefaultString(req.Category, "Uncategorized"),
		Priority:          req.Priority,
		Status:            models.FileStatusPending,
		RequiresSignature: req.RequiresSignature,
		FolderID:          &folderID,
		Object: models.StoredObject{
			Name:        header.Filename,
			Key:         key,
			URL:         provider.URL(key),
			Size:        header.Size,
			ContentType: contentType,
			Provider:    provider.Name(),
		},
		CreatedBy:   user.ID,
		CreatorName: user.DisplayName(),
		Departments: []primitive.ObjectID{},
		SharedUsers: []primitive.ObjectID{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := s.fileCollection.InsertOne(ctx, file); err != nil {
		provider.Delete(ctx, key)
		return nil, fmt.Errorf("failed to save file metadata: %v", err)
	}

	s.adjustFileCount(ctx, folderID, 1)

	s.decorate(file, user, folder)
	return file, nil
}

// GetFile returns a single file if it is visible to the user.
func (s *FileService) GetFile(user *models.User, fileID primitive.ObjectID) (*models.File, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	file, folder, err := s.findFileWithFolder(ctx, fileID)
	if err != nil {
		return nil, err
	}

	s.decorate(file, user, folder)
	if !access.CanSeeFileInFolder(user, file, folder) {
		return nil, fmt.Errorf("file %s: %w", fileID.Hex(), ErrForbidden)
	}
	return file, nil
}

// UpdateFile applies a partial metadata update. Only set fields change.
// A status change notifies the file's creator.
func (s *FileService) UpdateFile(user *models.User, fileID primitive.ObjectID, req *models.FileUpdateRequest) (*models.File, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	file, folder, err := s.findFileWithFolder(ctx, fileID)
	if err != nil {
		return nil, err
	}
	if !access.CanEditFile(user, file) {
		return nil, fmt.Errorf("update file %s: %w", fileID.Hex(), ErrForbidden)
	}

	update := bson.M{"updated_at": time.Now()}
	if req.Title != nil {
		update["title"] = *req.Title
	}
	if req.Description != nil {
		update["description"] = *req.Description
	}
	if req.Category != nil {
		update["category"] = *req.Category
	}
	if req.Priority != nil {
		update["priority"] = *req.Priority
	}
	statusChanged := false
	if req.Status != nil && *req.Status != file.Status {
		update["status"] = *req.Status
		statusChanged = true
	}
	if req.Departments != nil {
		update["departments"] = utils.StringsToObjectIDs(req.Departments)
	}

	_, err = s.fileCollection.UpdateOne(ctx, bson.M{"_id": fileID}, bson.M{"$set": update})
	if err != nil {
		return nil, fmt.Errorf("failed to update file: %v", err)
	}

	if statusChanged && file.CreatedBy != user.ID {
		title := fmt.Sprintf("%q is now %s", file.Title, *req.Status)
		s.notifications.NotifyUsers(ctx, []primitive.ObjectID{file.CreatedBy},
			models.NotificationFileStatus, title, "", &file.ID)
	}

	updated, folder, err := s.findFileWithFolder(ctx, fileID)
	if err != nil {
		return nil, err
	}
	s.decorate(updated, user, folder)
	return updated, nil
}

// DeleteFile removes the metadata record and the stored object.
func (s *FileService) DeleteFile(user *models.User, fileID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	file, _, err := s.findFileWithFolder(ctx, fileID)
	if err != nil {
		return err
	}
	if !access.CanDeleteFile(user, file) {
		return fmt.Errorf("delete file %s: %w", fileID.Hex(), ErrForbidden)
	}

	if _, err := s.fileCollection.DeleteOne(ctx, bson.M{"_id": fileID}); err != nil {
		return fmt.Errorf("failed to delete file: %v", err)
	}
	if file.Object.Key != "" {
		storage.GetProvider().Delete(ctx, file.Object.Key)
	}
	if file.FolderID != nil {
		s.adjustFileCount(ctx, *file.FolderID, -1)
	}
	return nil
}

// MoveFile relocates a file into another folder. The user must be able
// to edit the file and upload into the destination.
func (s *FileService) MoveFile(user *models.User, fileID, targetFolderID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	file, _, err := s.findFileWithFolder(ctx, fileID)
	if err != nil {
		return err
	}
	target, err := s.findFolder(ctx, targetFolderID)
	if err != nil {
		return fmt.Errorf("target folder: %w", err)
	}

	if !access.CanEditFile(user, file) || !access.CanUploadFiles(user, target) {
		return fmt.Errorf("move file %s: %w", fileID.Hex(), ErrForbidden)
	}

	_, err = s.fileCollection.UpdateOne(ctx,
		bson.M{"_id": fileID},
		bson.M{"$set": bson.M{"folder_id": targetFolderID, "updated_at": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to move file: %v", err)
	}

	if file.FolderID != nil && *file.FolderID != targetFolderID {
		s.adjustFileCount(ctx, *file.FolderID, -1)
		s.adjustFileCount(ctx, targetFolderID, 1)
	}
	return nil
}

// BulkDelete deletes each file independently and reports per-file outcomes.
func (s *FileService) BulkDelete(user *models.User, fileIDs []primitive.ObjectID) *models.BulkResult {
	return applyBulk(fileIDs, func(id primitive.ObjectID) error {
		return s.DeleteFile(user, id)
	})
}

// BulkMove moves each file independently and reports per-file outcomes.
func (s *FileService) BulkMove(user *models.User, fileIDs []primitive.ObjectID, targetFolderID primitive.ObjectID) *models.BulkResult {
	return applyBulk(fileIDs, func(id primitive.ObjectID) error {
		return s.MoveFile(user, id, targetFolderID)
	})
}

// ShareFile grants departments and individual users access to a file and
// notifies the recipients.
func (s *FileService) ShareFile(user *models.User, fileID primitive.ObjectID, req *models.ShareRequest) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	file, _, err := s.findFileWithFolder(ctx, fileID)
	if err != nil {
		return err
	}
	if !access.CanShareFile(user, file) {
		return fmt.Errorf("share file %s: %w", fileID.Hex(), ErrForbidden)
	}

	departmentIDs := utils.StringsToObjectIDs(req.Departments)
	userIDs := utils.StringsToObjectIDs(req.Users)

	update := bson.M{"$set": bson.M{"updated_at": time.Now()}}
	addToSet := bson.M{}
	if len(departmentIDs) > 0 {
		addToSet["departments"] = bson.M{"$each": departmentIDs}
	}
	if len(userIDs) > 0 {
		addToSet["shared_users"] = bson.M{"$each": userIDs}
	}
	if len(addToSet) > 0 {
		update["$addToSet"] = addToSet
	}

	if _, err := s.fileCollection.UpdateOne(ctx, bson.M{"_id": fileID}, update); err != nil {
		return fmt.Errorf("failed to share file: %v", err)
	}

	recipients, err := s.users.ResolveRecipients(ctx, userIDs, departmentIDs)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("%s shared %q with you", user.DisplayName(), file.Title)
	s.notifications.NotifyUsers(ctx, recipients, models.NotificationFileShared, title, req.Message, &file.ID)
	return recordShareGrant(ctx, "file", fileID, user.ID, req)
}

// Helper methods

func (s *FileService) findFileWithFolder(ctx context.Context, fileID primitive.ObjectID) (*models.File, *models.Folder, error) {
	var file models.File
	err := s.fileCollection.FindOne(ctx, bson.M{"_id": fileID}).Decode(&file)
	if err != nil {
		return nil, nil, fmt.Errorf("file %s: %w", fileID.Hex(), ErrNotFound)
	}

	var folder *models.Folder
	if file.FolderID != nil {
		folder, err = s.findFolder(ctx, *file.FolderID)
		if err != nil {
			folder = nil
		}
	}
	return &file, folder, nil
}

func (s *FileService) findFolder(ctx context.Context, folderID primitive.ObjectID) (*models.Folder, error) {
	var folder models.Folder
	err := s.folderCollection.FindOne(ctx, bson.M{"_id": folderID}).Decode(&folder)
	if err != nil {
		return nil, fmt.Errorf("folder %s: %w", folderID.Hex(), ErrNotFound)
	}
	return &folder, nil
}

func (s *FileService) adjustFileCount(ctx context.Context, folderID primitive.ObjectID, change int) {
	s.folderCollection.UpdateOne(ctx,
		bson.M{"_id": folderID},
		bson.M{"$inc": bson.M{"file_count": change}},
	)
}

func (s *FileService) decorate(file *models.File, user *models.User, folder *models.Folder) {
	file.IsInPublicFolder = folder != nil && (folder.IsPublic || folder.AccessLevel == models.AccessPublic)
	file.SharedWithMe = user != nil && utils.ContainsObjectID(file.SharedUsers, user.ID)
	file.Permissions = access.FilePermissions(user, file)
}
