package services

import (
	"opsdesk/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// applyBulk runs op over every id independently and collects per-item
// outcomes. One failing item never aborts the rest, and the caller can
// tell exactly which ids succeeded - a bulk call must not pretend all
// items went through when the backend only confirmed some.
func applyBulk(ids []primitive.ObjectID, op func(primitive.ObjectID) error) *models.BulkResult {
	result := &models.BulkResult{
		Succeeded: []string{},
		Failed:    []models.BulkError{},
	}

	for _, id := range ids {
		if err := op(id); err != nil {
			result.Failed = append(result.Failed, models.BulkError{
				ID:    id.Hex(),
				Error: err.Error(),
			})
			continue
		}
		result.Succeeded = append(result.Succeeded, id.Hex())
	}

	return result
}
