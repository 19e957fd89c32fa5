package service

import (
	"errors"

	"github.com/noah-isme/saarthi-api/internal/store"
	appErrors "github.com/noah-isme/saarthi-api/pkg/errors"
)

// lookupError maps a repository failure to a 404 when the record is missing and a 500 otherwise.
func lookupError(err error, notFound, failure string) error {
	if errors.Is(err, store.ErrNotFound) {
		return appErrors.Clone(appErrors.ErrNotFound, notFound)
	}
	return appErrors.Internal(err, failure)
}
