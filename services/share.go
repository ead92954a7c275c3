package services

import (
	"context"
	"time"

	"opsdesk/database"
	"opsdesk/models"
	"opsdesk/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/google/uuid"
)

// recordShareGrant appends an audit entry for a share action. Failures
// here never fail the share itself.
func recordShareGrant(ctx context.Context, targetKind string, targetID primitive.ObjectID, grantedBy primitive.ObjectID, req *models.ShareRequest) error {
	grant := bson.M{
		"grant_id":    uuid.NewString(),
		"target_kind": targetKind,
		"target_id":   targetID,
		"granted_by":  grantedBy,
		"departments": utils.StringsToObjectIDs(req.Departments),
		"users":       utils.StringsToObjectIDs(req.Users),
		"created_at":  time.Now(),
	}
	database.ShareGrants().InsertOne(ctx, grant)
	return nil
}
