package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TestApplyBulkPartialFailure checks that one failing item neither aborts
// the batch nor gets reported as succeeded.
func TestApplyBulkPartialFailure(t *testing.T) {
	ids := []primitive.ObjectID{
		primitive.NewObjectID(),
		primitive.NewObjectID(),
		primitive.NewObjectID(),
	}
	failing := ids[1]

	result := applyBulk(ids, func(id primitive.ObjectID) error {
		if id == failing {
			return fmt.Errorf("delete %s: %w", id.Hex(), ErrForbidden)
		}
		return nil
	})

	assert.Equal(t, []string{ids[0].Hex(), ids[2].Hex()}, result.Succeeded)
	assert.Len(t, result.Failed, 1)
	assert.Equal(t, failing.Hex(), result.Failed[0].ID)
	assert.False(t, result.Ok())
}

func TestApplyBulkAllSucceed(t *testing.T) {
	ids := []primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID()}

	result := applyBulk(ids, func(primitive.ObjectID) error { return nil })

	assert.Len(t, result.Succeeded, 2)
	assert.Empty(t, result.Failed)
	assert.True(t, result.Ok())
}

func TestApplyBulkEmpty(t *testing.T) {
	result := applyBulk(nil, func(primitive.ObjectID) error {
		t.Fatal("op must not run for an empty batch")
		return nil
	})

	assert.Empty(t, result.Succeeded)
	assert.Empty(t, result.Failed)
	assert.True(t, result.Ok())
}
