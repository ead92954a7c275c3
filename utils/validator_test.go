package utils

import (
	"testing"

	"opsdesk/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateFolderCreateRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     models.FolderCreateRequest
		wantErr bool
	}{
		{"valid", models.FolderCreateRequest{Name: "Reports 2026"}, false},
		{"empty name", models.FolderCreateRequest{Name: ""}, true},
		{"slash in name", models.FolderCreateRequest{Name: "a/b"}, true},
		{"backslash in name", models.FolderCreateRequest{Name: `a\b`}, true},
		{"valid access level", models.FolderCreateRequest{Name: "x", AccessLevel: "department"}, false},
		{"bad access level", models.FolderCreateRequest{Name: "x", AccessLevel: "secret"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateRegisterRequest(t *testing.T) {
	valid := models.RegisterRequest{
		Username:  "dsmith",
		Email:     "dana@example.com",
		Password:  "secret123",
		FirstName: "Dana",
		LastName:  "Smith",
	}
	assert.NoError(t, ValidateStruct(&valid))

	bad := valid
	bad.Email = "not-an-email"
	assert.Error(t, ValidateStruct(&bad))

	short := valid
	short.Password = "abc"
	assert.Error(t, ValidateStruct(&short))
}
