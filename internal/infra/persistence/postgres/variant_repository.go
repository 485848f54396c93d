package postgres

import (
	"context"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// variantRepository implements the repository.VariantRepository interface.
type variantRepository struct {
	db *gorm.DB
}

// NewVariantRepository is the constructor for variantRepository.
func NewVariantRepository(db *gorm.DB) repository.VariantRepository {
	return &variantRepository{
		db: db,
	}
}

// Create persists a new variant.
func (repo *variantRepository) Create(ctx context.Context, variant *entity.ProductVariant) error {
	variantM := fromVariantDomain(variant)

	if err := repo.db.WithContext(ctx).Create(variantM).Error; err != nil {
		return translateVariantWriteError(err, "failed to create variant")
	}

	variant.ID = variantM.ID
	variant.CreatedAt = variantM.CreatedAt
	variant.UpdatedAt = variantM.UpdatedAt

	return nil
}

// FindByID retrieves a variant by its ID.
func (repo *variantRepository) FindByID(ctx context.Context, id int64) (*entity.ProductVariant, error) {
	return repo.findOne(repo.db.WithContext(ctx).Where("id = ?", id))
}

// FindByIDForUpdate retrieves a variant with a row lock held until the transaction ends.
func (repo *variantRepository) FindByIDForUpdate(ctx context.Context, id int64) (*entity.ProductVariant, error) {
	return repo.findOne(repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id))
}

// FindByProduct returns every variant of a product ordered by ID.
func (repo *variantRepository) FindByProduct(ctx context.Context, productID int64) ([]*entity.ProductVariant, error) {
	var variantModels []*model.ProductVariantModel

	if err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("id ASC").
		Find(&variantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find variants by product")
	}

	variants := make([]*entity.ProductVariant, 0, len(variantModels))
	for _, variantM := range variantModels {
		variants = append(variants, toVariantDomain(variantM))
	}

	return variants, nil
}

// FindDefault returns the variant flagged default for a product.
func (repo *variantRepository) FindDefault(ctx context.Context, productID int64) (*entity.ProductVariant, error) {
	return repo.findOne(repo.db.WithContext(ctx).
		Where("product_id = ? AND is_default = ?", productID, true).
		Order("id ASC"))
}

// FindTopStocked returns the in-stock variant with the highest stock.
func (repo *variantRepository) FindTopStocked(ctx context.Context, productID int64) (*entity.ProductVariant, error) {
	return repo.findOne(repo.db.WithContext(ctx).
		Where("product_id = ? AND stock > ?", productID, 0).
		Order("stock DESC").
		Order("id ASC"))
}

func (repo *variantRepository) findOne(query *gorm.DB) (*entity.ProductVariant, error) {
	var variantM model.ProductVariantModel

	if err := query.Take(&variantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVariantNotFound
		}

		return nil, errors.Wrap(err, "failed to find variant")
	}

	return toVariantDomain(&variantM), nil
}

// Update overwrites every mutable column of the variant, zero values included.
func (repo *variantRepository) Update(ctx context.Context, variant *entity.ProductVariant) error {
	variantM := fromVariantDomain(variant)

	result := repo.db.WithContext(ctx).
		Model(&model.ProductVariantModel{}).
		Where("id = ?", variant.ID).
		Select("product_id", "name", "sku", "price", "stock", "image", "is_default", "status", "metadata", "updated_at").
		Updates(variantM)

	if result.Error != nil {
		return translateVariantWriteError(result.Error, "failed to update variant")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVariantNotFound
	}

	return nil
}

// Delete removes a variant row. Join rows go with it through ON DELETE CASCADE.
func (repo *variantRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductVariantModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete variant")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVariantNotFound
	}

	return nil
}

// ClearDefault unsets the default flag on every variant of a product.
func (repo *variantRepository) ClearDefault(ctx context.Context, productID int64) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.ProductVariantModel{}).
		Where("product_id = ? AND is_default = ?", productID, true).
		Update("is_default", false).Error; err != nil {
		return errors.Wrap(err, "failed to clear default variant")
	}

	return nil
}

// MarkDefault flags one variant of the product as default.
func (repo *variantRepository) MarkDefault(ctx context.Context, productID, variantID int64) error {
	return repo.updateColumn(
		repo.db.WithContext(ctx).Where("id = ? AND product_id = ?", variantID, productID),
		"is_default", true)
}

// UpdateStatus sets the variant status.
func (repo *variantRepository) UpdateStatus(ctx context.Context, id int64, status entity.Status) error {
	return repo.updateColumn(repo.db.WithContext(ctx).Where("id = ?", id), "status", string(status))
}

// UpdateStock sets the variant stock to an absolute value.
func (repo *variantRepository) UpdateStock(ctx context.Context, id int64, stock int) error {
	return repo.updateColumn(repo.db.WithContext(ctx).Where("id = ?", id), "stock", stock)
}

// UpdatePrice sets the variant price to an absolute value.
func (repo *variantRepository) UpdatePrice(ctx context.Context, id int64, price decimal.Decimal) error {
	return repo.updateColumn(repo.db.WithContext(ctx).Where("id = ?", id), "price", price)
}

func (repo *variantRepository) updateColumn(scoped *gorm.DB, column string, value any) error {
	result := scoped.Model(&model.ProductVariantModel{}).Update(column, value)

	if result.Error != nil {
		return translateVariantWriteError(result.Error, "failed to update variant "+column)
	}

	if result.RowsAffected == 0 {
		return repository.ErrVariantNotFound
	}

	return nil
}

// DeleteValues removes every attribute value bound to the variant.
func (repo *variantRepository) DeleteValues(ctx context.Context, variantID int64) error {
	if err := repo.db.WithContext(ctx).
		Where("variant_id = ?", variantID).
		Delete(&model.ProductVariantValueModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete variant values")
	}

	return nil
}

// InsertValues binds attribute values to the variant in one statement.
func (repo *variantRepository) InsertValues(ctx context.Context, variantID int64, attributeValueIDs []int64) error {
	if len(attributeValueIDs) == 0 {
		return nil
	}

	rows := make([]*model.ProductVariantValueModel, 0, len(attributeValueIDs))
	for _, valueID := range attributeValueIDs {
		rows = append(rows, &model.ProductVariantValueModel{
			VariantID:        variantID,
			AttributeValueID: valueID,
		})
	}

	if err := repo.db.WithContext(ctx).Create(&rows).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrInvalidVariantReference
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to insert variant values")
	}

	return nil
}

// FindAttributes returns the bound attributes per variant ID, ordered by attribute ID.
func (repo *variantRepository) FindAttributes(ctx context.Context, variantIDs []int64) (map[int64][]entity.VariantAttribute, error) {
	result := make(map[int64][]entity.VariantAttribute, len(variantIDs))
	if len(variantIDs) == 0 {
		return result, nil
	}

	var rows []model.VariantAttributeRow
	if err := repo.db.WithContext(ctx).
		Table("product_variant_values AS pvv").
		Select("pvv.variant_id, av.attribute_id, a.name AS attribute_name, av.id AS attribute_value_id, av.value").
		Joins("JOIN attribute_values av ON av.id = pvv.attribute_value_id").
		Joins("JOIN attributes a ON a.id = av.attribute_id").
		Where("pvv.variant_id IN ?", variantIDs).
		Order("pvv.variant_id, av.attribute_id").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find variant attributes")
	}

	for _, row := range rows {
		result[row.VariantID] = append(result[row.VariantID], entity.VariantAttribute{
			AttributeID:      row.AttributeID,
			AttributeName:    row.AttributeName,
			AttributeValueID: row.AttributeValueID,
			Value:            row.Value,
		})
	}

	return result, nil
}

func translateVariantWriteError(err error, details string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return repository.ErrDuplicateSKU
	case isForeignKeyConstraintViolation(err):
		return repository.ErrProductNotFound
	case isCheckConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WrapMessage("variant stock must not be negative")
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

// --- Mapper Functions ---

// toVariantDomain converts a GORM ProductVariantModel to a domain ProductVariant entity.
func toVariantDomain(data *model.ProductVariantModel) *entity.ProductVariant {
	if data == nil {
		return nil
	}

	var metadata map[string]any
	if len(data.Metadata) > 0 {
		metadata = map[string]any(data.Metadata)
	}

	return &entity.ProductVariant{
		ID:        data.ID,
		ProductID: data.ProductID,
		Name:      data.Name,
		SKU:       data.SKU,
		Price:     data.Price,
		Stock:     data.Stock,
		Image:     data.Image,
		IsDefault: data.IsDefault,
		Status:    entity.Status(data.Status),
		Metadata:  metadata,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromVariantDomain converts a domain ProductVariant entity to a GORM ProductVariantModel.
func fromVariantDomain(data *entity.ProductVariant) *model.ProductVariantModel {
	if data == nil {
		return nil
	}

	metadata := datatypes.JSONMap{}
	for k, v := range data.Metadata {
		metadata[k] = v
	}

	return &model.ProductVariantModel{
		ID:        data.ID,
		ProductID: data.ProductID,
		Name:      data.Name,
		SKU:       data.SKU,
		Price:     data.Price,
		Stock:     data.Stock,
		Image:     data.Image,
		IsDefault: data.IsDefault,
		Status:    string(data.Status),
		Metadata:  metadata,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
