package v1

import (
	"errors"

	"github.com/pocketbook-app/backend/internal/httperror"
)

// status returns the appropriate HTTP status for an error
func status(err error) int {
	return httperror.Status(err)
}

// Cleanup errors
var (
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
)
