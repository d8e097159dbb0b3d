package service

import (
	"errors"

	"quill/internal/models"

	"gorm.io/gorm"
)

// storeLookupError translates a repository read failure into the error
// taxonomy: a missing row is NOT_FOUND, everything else is internal.
func storeLookupError(err error, resource string, id any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewNotFoundError(resource, id)
	}
	return models.NewInternalError(err)
}
