package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFormatFileSize(t *testing.T) {
	assert.Equal(t, "512 B", FormatFileSize(512))
	assert.Equal(t, "1.0 KB", FormatFileSize(1024))
	assert.Equal(t, "1.5 MB", FormatFileSize(1536*1024))
	assert.Equal(t, "2.0 GB", FormatFileSize(2*1024*1024*1024))
}

func TestStringsToObjectIDsSkipsInvalid(t *testing.T) {
	valid := primitive.NewObjectID()

	ids := StringsToObjectIDs([]string{valid.Hex(), "garbage", ""})

	assert.Equal(t, []primitive.ObjectID{valid}, ids)
}

func TestDefaultString(t *testing.T) {
	assert.Equal(t, "Untitled", DefaultString("", "Untitled"))
	assert.Equal(t, "Report", DefaultString("Report", "Untitled"))
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter22")
	assert.NoError(t, err)
	assert.True(t, CheckPasswordHash("hunter22", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
