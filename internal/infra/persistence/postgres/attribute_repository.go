package postgres

import (
	"context"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// attributeRepository implements the repository.AttributeRepository interface.
type attributeRepository struct {
	db *gorm.DB
}

// NewAttributeRepository is the constructor for attributeRepository.
func NewAttributeRepository(db *gorm.DB) repository.AttributeRepository {
	return &attributeRepository{
		db: db,
	}
}

// CreateAttribute persists a new attribute.
func (repo *attributeRepository) CreateAttribute(ctx context.Context, attribute *entity.Attribute) error {
	attributeM := &model.AttributeModel{Name: attribute.Name}

	if err := repo.db.WithContext(ctx).Create(attributeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateAttribute
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create attribute")
	}

	attribute.ID = attributeM.ID
	attribute.CreatedAt = attributeM.CreatedAt

	return nil
}

// FindAttributeByID retrieves an attribute by its ID.
func (repo *attributeRepository) FindAttributeByID(ctx context.Context, id int64) (*entity.Attribute, error) {
	var attributeM model.AttributeModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&attributeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAttributeNotFound
		}

		return nil, errors.Wrap(err, "failed to find attribute by ID")
	}

	return toAttributeDomain(&attributeM), nil
}

// ListAttributes returns all attributes ordered by name, from a replica when one
// is configured outside a transaction.
func (repo *attributeRepository) ListAttributes(ctx context.Context) ([]*entity.Attribute, error) {
	var attributeModels []*model.AttributeModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Order("name ASC").
		Find(&attributeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list attributes")
	}

	attributes := make([]*entity.Attribute, 0, len(attributeModels))
	for _, attributeM := range attributeModels {
		attributes = append(attributes, toAttributeDomain(attributeM))
	}

	return attributes, nil
}

// FindValue looks up the row for an exact (attributeID, value) match.
func (repo *attributeRepository) FindValue(ctx context.Context, attributeID int64, value string) (*entity.AttributeValue, error) {
	var valueM model.AttributeValueModel

	if err := repo.db.WithContext(ctx).
		Where("attribute_id = ? AND value = ?", attributeID, value).
		First(&valueM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAttributeValueNotFound
		}

		return nil, errors.Wrap(err, "failed to find attribute value")
	}

	return &entity.AttributeValue{
		ID:          valueM.ID,
		AttributeID: valueM.AttributeID,
		Value:       valueM.Value,
	}, nil
}

// CreateValueIfAbsent inserts the pair and leaves an existing row untouched.
// The unique index on (attribute_id, value) turns a lost race into zero affected rows.
func (repo *attributeRepository) CreateValueIfAbsent(ctx context.Context, value *entity.AttributeValue) (bool, error) {
	valueM := &model.AttributeValueModel{
		AttributeID: value.AttributeID,
		Value:       value.Value,
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "attribute_id"}, {Name: "value"}},
			DoNothing: true,
		}).
		Create(valueM)

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return false, repository.ErrAttributeNotFound
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to create attribute value")
	}

	if result.RowsAffected == 0 || valueM.ID == 0 {
		return false, nil
	}

	value.ID = valueM.ID

	return true, nil
}

// --- Mapper Functions ---

// toAttributeDomain converts a GORM AttributeModel to a domain Attribute entity.
func toAttributeDomain(data *model.AttributeModel) *entity.Attribute {
	if data == nil {
		return nil
	}

	return &entity.Attribute{
		ID:        data.ID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
	}
}
