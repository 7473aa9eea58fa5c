package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConfig indicates that a required configuration value (credential, key, endpoint) is missing.
// It is fatal for the request that needs the value, not for the process.
var ErrConfig = errors.New("configuration error")

// ErrUpstream indicates that an external collaborator (document store, data provider) failed.
var ErrUpstream = errors.New("upstream error")
