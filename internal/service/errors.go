package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Skotchmaster/clothing_store/internal/apperr"
)

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// storeErr maps a repository error onto the application error kinds.
func storeErr(err error, notFoundMsg string) error {
	switch {
	case err == nil:
		return nil
	case isNotFound(err):
		return apperr.NotFound(notFoundMsg)
	default:
		var ae *apperr.Error
		if errors.As(err, &ae) {
			return ae
		}
		return apperr.Internal("database error", err)
	}
}
