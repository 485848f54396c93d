package impl

import (
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"

	"github.com/pkg/errors"
)

// repoErrorMappings translates persistence sentinels into the errors callers see.
var repoErrorMappings = []struct {
	repoErr   error
	domainErr *domainerrors.BaseError
}{
	{repository.ErrProductNotFound, domainerrors.ErrProductNotFound},
	{repository.ErrVariantNotFound, domainerrors.ErrVariantNotFound},
	{repository.ErrAttributeNotFound, domainerrors.ErrAttributeNotFound},
	{repository.ErrDuplicateSKU, domainerrors.ErrDuplicateSKU},
	{repository.ErrDuplicateAttribute, domainerrors.ErrAttributeAlreadyExists},
	{repository.ErrRequiredAttributeNotFound, domainerrors.ErrRequiredAttributeNotFound},
	{repository.ErrDuplicateRequiredAttribute, domainerrors.ErrRequiredAttributeAlreadyExists},
	{repository.ErrDuplicateSlug, domainerrors.ErrConflict},
	{repository.ErrInvalidVariantReference, domainerrors.ErrConflict},
}

// translateRepoError wraps err with message, swapping a known repository
// sentinel for its domain error so handlers can map it to a status code.
func translateRepoError(err error, message string) error {
	if err == nil {
		return nil
	}

	for _, mapping := range repoErrorMappings {
		if errors.Is(err, mapping.repoErr) {
			return errors.Wrap(mapping.domainErr, message)
		}
	}

	return errors.Wrap(err, message)
}

func validationError(message string) error {
	return errors.Wrap(domainerrors.ErrValidationFailed, message)
}
