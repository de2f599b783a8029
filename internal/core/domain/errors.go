package domain

import "errors"

var ErrPermissionDenied = errors.New("permission denied")
var ErrValidation = errors.New("validation failed")
var ErrProjectNotFound = errors.New("project not found")
var ErrTaskNotFound = errors.New("task not found")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrCollaborator = errors.New("collaborator request failed")
