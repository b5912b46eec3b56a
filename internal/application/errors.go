package application

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation wraps every input problem; the wrapped message is safe to show.
	ErrValidation = errors.New("validation failed")
	ErrEmailTaken = fmt.Errorf("%w: email already registered", ErrValidation)

	// ErrUnknownUser and ErrInvalidCredentials share their text but map to
	// different status codes (422 and 401).
	ErrUnknownUser        = errors.New("invalid credentials")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrForbidden      = errors.New("you do not have permission to access this user")
	ErrUserNotFound   = errors.New("user not found")
	ErrRecipeNotFound = errors.New("recipe not found")
	// ErrRecipeUnavailable is returned for mutations when the recipe does not
	// exist or belongs to someone else; callers cannot tell which.
	ErrRecipeUnavailable = errors.New("recipe not found or no permission")

	ErrImagesUnavailable = errors.New("image storage is not configured")
)

func validationf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}
