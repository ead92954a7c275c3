package database

import "go.mongodb.org/mongo-driver/mongo"

// Collection names used across the services.
const (
	UsersCollection         = "users"
	DepartmentsCollection   = "departments"
	FoldersCollection       = "folders"
	FilesCollection         = "files"
	AttendanceCollection    = "attendance_records"
	NotificationsCollection = "notifications"
	ShareGrantsCollection   = "share_grants"
)

func Users() *mongo.Collection         { return GetCollection(UsersCollection) }
func Departments() *mongo.Collection   { return GetCollection(DepartmentsCollection) }
func Folders() *mongo.Collection       { return GetCollection(FoldersCollection) }
func Files() *mongo.Collection         { return GetCollection(FilesCollection) }
func Attendance() *mongo.Collection    { return GetCollection(AttendanceCollection) }
func Notifications() *mongo.Collection { return GetCollection(NotificationsCollection) }
func ShareGrants() *mongo.Collection   { return GetCollection(ShareGrantsCollection) }
