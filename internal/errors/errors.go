package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity does not resolve by id.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// InvalidReferenceError represents a supplied foreign key that does not
// resolve to an existing entity (e.g. assigning a task to an unknown user).
type InvalidReferenceError struct {
	Entity string
	ID     int
}

func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("referenced %s %d does not exist", e.Entity, e.ID)
}

// Is enables errors.Is() comparison regardless of the offending id.
func (e *InvalidReferenceError) Is(target error) bool {
	_, ok := target.(*InvalidReferenceError)
	return ok
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a malformed or out-of-range field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Is enables errors.Is() comparison for ValidationError
func (e *ValidationError) Is(target error) bool {
	_, ok := target.(*ValidationError)
	return ok
}

// UnauthorizedError represents an attribution-requiring operation invoked
// without a current session.
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string {
	return e.Message
}

// NetworkError represents a failed round trip on the network-backed path.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error calling %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// TimeoutError represents a request that exceeded the client's bounded
// timeout. Distinct from NetworkError so callers can retry selectively.
type TimeoutError struct {
	URL string
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request to %s timed out", e.URL)
}

// Entity Not Found Errors
var (
	ErrUserNotFound         = &NotFoundError{Entity: "user"}
	ErrProjectNotFound      = &NotFoundError{Entity: "project"}
	ErrTaskNotFound         = &NotFoundError{Entity: "task"}
	ErrCommentNotFound      = &NotFoundError{Entity: "comment"}
	ErrNotificationNotFound = &NotFoundError{Entity: "notification"}
	ErrActivityNotFound     = &NotFoundError{Entity: "activity"}
	ErrMemberNotFound       = &NotFoundError{Entity: "project member"}
)

// Already Exists Errors
var (
	ErrEmailExists  = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrMemberExists = &AlreadyExistsError{Entity: "project member", Context: "for this user"}
)

// Business Logic Errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserHasDependents  = errors.New("user still manages projects, holds open tasks or active memberships")
	ErrParentTaskCycle    = errors.New("parent task chain would form a cycle")
)

// Session Errors
var (
	ErrNoSession      = &UnauthorizedError{Message: "no active session"}
	ErrSessionExpired = &UnauthorizedError{Message: "session has expired"}
	ErrInvalidToken   = &UnauthorizedError{Message: "invalid session token"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsInvalidReference checks if an error is an InvalidReferenceError
func IsInvalidReference(err error) bool {
	var refErr *InvalidReferenceError
	return errors.As(err, &refErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsUnauthorized checks if an error is an UnauthorizedError
func IsUnauthorized(err error) bool {
	var unauthorizedErr *UnauthorizedError
	return errors.As(err, &unauthorizedErr)
}

// IsTimeout checks if an error is a TimeoutError
func IsTimeout(err error) bool {
	var timeoutErr *TimeoutError
	return errors.As(err, &timeoutErr)
}

// IsNetwork checks if an error is a NetworkError (timeouts excluded)
func IsNetwork(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewInvalidReferenceError creates a new InvalidReferenceError
func NewInvalidReferenceError(entity string, id int) error {
	return &InvalidReferenceError{Entity: entity, ID: id}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewUnauthorizedError creates a new UnauthorizedError
func NewUnauthorizedError(message string) error {
	return &UnauthorizedError{Message: message}
}
