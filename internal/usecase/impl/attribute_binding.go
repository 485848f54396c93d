package impl

import (
	"context"
	"fmt"
	"slices"
	"unicode/utf8"

	"catalog/internal/domain/constants"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/usecase"

	"github.com/pkg/errors"
)

// resolveAttributeValue finds or creates the row for (attributeID, value) using
// repositories bound to the caller's transaction. The unique index on the pair
// makes a concurrent insert lose quietly, after which the winner's row is read back.
func resolveAttributeValue(ctx context.Context, attributeRepo repository.AttributeRepository, attributeID int64, value string) (int64, error) {
	if attributeID <= 0 {
		return 0, validationError("attribute id must be positive")
	}
	if value == "" {
		return 0, validationError("attribute value must not be empty")
	}
	if utf8.RuneCountInString(value) > constants.MaxAttributeValueLength {
		return 0, validationError(fmt.Sprintf("attribute value must be at most %d characters", constants.MaxAttributeValueLength))
	}

	existing, err := attributeRepo.FindValue(ctx, attributeID, value)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, repository.ErrAttributeValueNotFound) {
		return 0, errors.Wrap(err, "failed to find attribute value")
	}

	if _, err := attributeRepo.FindAttributeByID(ctx, attributeID); err != nil {
		return 0, translateRepoError(err, fmt.Sprintf("attribute %d", attributeID))
	}

	created := &entity.AttributeValue{AttributeID: attributeID, Value: value}
	inserted, err := attributeRepo.CreateValueIfAbsent(ctx, created)
	if err != nil {
		return 0, translateRepoError(err, "failed to create attribute value")
	}
	if inserted {
		return created.ID, nil
	}

	winner, err := attributeRepo.FindValue(ctx, attributeID, value)
	if errors.Is(err, repository.ErrAttributeValueNotFound) {
		return 0, errors.Wrap(domainerrors.ErrConflict, "attribute value vanished after conflicting insert")
	}
	if err != nil {
		return 0, errors.Wrap(err, "failed to re-read attribute value")
	}

	return winner.ID, nil
}

// attributeBinder replaces the attribute values bound to a variant.
type attributeBinder struct {
	enforceRequired bool
}

// bind makes the variant's join rows exactly match inputs. Required attributes
// of the product that inputs omit are filled from their default value; without
// a default they fail validation when enforcement is on. Runs inside the
// caller's transaction, so any failure leaves the previous bindings intact.
func (b *attributeBinder) bind(ctx context.Context, repoFactory repository.RepositoryFactory, variant *entity.ProductVariant, inputs []usecase.AttributeInput) error {
	complete, err := b.completeRequired(ctx, repoFactory.ProductRepo(), variant.ProductID, inputs)
	if err != nil {
		return err
	}

	attributeRepo := repoFactory.AttributeRepo()
	valueIDs := make([]int64, 0, len(complete))
	for _, input := range complete {
		valueID, err := resolveAttributeValue(ctx, attributeRepo, input.AttributeID, input.Value)
		if err != nil {
			return err
		}
		valueIDs = append(valueIDs, valueID)
	}

	variantRepo := repoFactory.VariantRepo()
	if err := variantRepo.DeleteValues(ctx, variant.ID); err != nil {
		return errors.Wrap(err, "failed to clear variant attributes")
	}
	if err := variantRepo.InsertValues(ctx, variant.ID, valueIDs); err != nil {
		return translateRepoError(err, "failed to bind variant attributes")
	}

	return nil
}

func (b *attributeBinder) completeRequired(ctx context.Context, productRepo repository.ProductRepository, productID int64, inputs []usecase.AttributeInput) ([]usecase.AttributeInput, error) {
	seen := make(map[int64]struct{}, len(inputs))
	for _, input := range inputs {
		if _, dup := seen[input.AttributeID]; dup {
			return nil, validationError(fmt.Sprintf("attribute %d given more than once", input.AttributeID))
		}
		seen[input.AttributeID] = struct{}{}
	}

	required, err := productRepo.ListRequiredAttributes(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list required attributes")
	}

	complete := slices.Clone(inputs)
	var missing []string
	for _, req := range required {
		if _, ok := seen[req.AttributeID]; ok {
			continue
		}
		if req.DefaultValue != nil && *req.DefaultValue != "" {
			complete = append(complete, usecase.AttributeInput{AttributeID: req.AttributeID, Value: *req.DefaultValue})

			continue
		}
		missing = append(missing, req.AttributeName)
	}

	if len(missing) > 0 && b.enforceRequired {
		return nil, errors.Wrapf(domainerrors.ErrMissingRequiredAttribute, "missing required attributes %v", missing)
	}

	return complete, nil
}
