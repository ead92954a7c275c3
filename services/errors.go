package services

import "errors"

// Sentinel errors services return so controllers can map them onto the
// right HTTP status. Wrapped errors stay inspectable with errors.Is.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("access denied")
	ErrDuplicateName      = errors.New("an item with this name already exists here")
	ErrDefaultFolder      = errors.New("the default folder cannot be modified")
	ErrAlreadyCheckedIn   = errors.New("an active attendance session already exists")
	ErrNotCheckedIn       = errors.New("no active attendance session to close")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrUsernameTaken      = errors.New("username is already taken")
)
