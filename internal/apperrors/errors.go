package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrAccountNotLinked indicates an OAuth identity with no matching user record.
// Callbacks translate it into a redirect to the registration page.
var ErrAccountNotLinked = errors.New("account not linked")

// ErrNoRefreshToken indicates a user without a stored mail-provider refresh
// credential; email sends to that user fail until the account is re-linked.
var ErrNoRefreshToken = errors.New("no refresh token on record")
