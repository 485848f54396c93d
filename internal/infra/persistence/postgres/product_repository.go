package postgres

import (
	"context"
	"encoding/json"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM, err := fromProductDomain(product)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSlug
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// FindByID retrieves a product by its ID.
func (repo *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	return repo.findOne(repo.db.WithContext(ctx), id)
}

// FindByIDForUpdate retrieves a product with a row lock held until the transaction ends.
func (repo *productRepository) FindByIDForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	return repo.findOne(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

// FindDetailByID reads a product for storefront display. The result fills the
// product cache, so it always comes from the primary: a lagging replica would put
// the pre-recompute aggregate back right after the invalidation.
func (repo *productRepository) FindDetailByID(ctx context.Context, id int64) (*entity.Product, error) {
	return repo.findOne(repo.db.WithContext(ctx).Clauses(dbresolver.Write), id)
}

func (repo *productRepository) findOne(db *gorm.DB, id int64) (*entity.Product, error) {
	var productM model.ProductModel

	if err := db.Where("id = ?", id).First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM)
}

// UpdateDiscount replaces the product discount.
func (repo *productRepository) UpdateDiscount(ctx context.Context, id int64, discount *entity.Discount) error {
	var kind *string
	amount := decimal.NullDecimal{}
	if discount != nil {
		k := string(discount.Kind)
		kind = &k
		amount = decimal.NewNullDecimal(discount.Amount)
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"discount_kind":   kind,
			"discount_amount": amount,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update product discount")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// UpdateVariantsAggregate stores the recomputed variant summary.
func (repo *productRepository) UpdateVariantsAggregate(ctx context.Context, id int64, aggregate *entity.VariantsAggregate) error {
	raw, err := json.Marshal(aggregate)
	if err != nil {
		return errors.Wrap(err, "failed to encode variants aggregate")
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Update("variants_aggregate", datatypes.JSON(raw))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update variants aggregate")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// ListRequiredAttributes returns the product's required attributes with attribute names.
func (repo *productRepository) ListRequiredAttributes(ctx context.Context, productID int64) ([]*entity.ProductRequiredAttribute, error) {
	var rows []model.RequiredAttributeRow

	if err := repo.db.WithContext(ctx).
		Table("product_required_attributes AS pra").
		Select("pra.product_id, pra.attribute_id, a.name AS attribute_name, pra.default_value").
		Joins("JOIN attributes a ON a.id = pra.attribute_id").
		Where("pra.product_id = ?", productID).
		Order("pra.attribute_id").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list required attributes")
	}

	required := make([]*entity.ProductRequiredAttribute, 0, len(rows))
	for _, row := range rows {
		required = append(required, &entity.ProductRequiredAttribute{
			ProductID:     row.ProductID,
			AttributeID:   row.AttributeID,
			AttributeName: row.AttributeName,
			DefaultValue:  row.DefaultValue,
		})
	}

	return required, nil
}

// AddRequiredAttribute declares an attribute every variant of the product must carry.
func (repo *productRepository) AddRequiredAttribute(ctx context.Context, required *entity.ProductRequiredAttribute) error {
	requiredM := &model.ProductRequiredAttributeModel{
		ProductID:    required.ProductID,
		AttributeID:  required.AttributeID,
		DefaultValue: required.DefaultValue,
	}

	if err := repo.db.WithContext(ctx).Create(requiredM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateRequiredAttribute
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("product or attribute does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add required attribute")
	}

	return nil
}

// RemoveRequiredAttribute drops a required attribute declaration.
func (repo *productRepository) RemoveRequiredAttribute(ctx context.Context, productID, attributeID int64) error {
	result := repo.db.WithContext(ctx).
		Where("product_id = ? AND attribute_id = ?", productID, attributeID).
		Delete(&model.ProductRequiredAttributeModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to remove required attribute")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRequiredAttributeNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) (*entity.Product, error) {
	if data == nil {
		return nil, nil
	}

	product := &entity.Product{
		ID:         data.ID,
		Name:       data.Name,
		Slug:       data.Slug,
		Price:      data.Price,
		Status:     entity.Status(data.Status),
		CategoryID: data.CategoryID,
		BrandID:    data.BrandID,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}

	if data.DiscountKind != nil && data.DiscountAmount.Valid {
		product.Discount = &entity.Discount{
			Kind:   entity.DiscountKind(*data.DiscountKind),
			Amount: data.DiscountAmount.Decimal,
		}
	}

	if len(data.VariantsAggregate) > 0 && string(data.VariantsAggregate) != "null" {
		var aggregate entity.VariantsAggregate
		if err := json.Unmarshal(data.VariantsAggregate, &aggregate); err != nil {
			return nil, errors.Wrapf(err, "failed to decode variants aggregate of product %d", data.ID)
		}
		product.VariantsAggregate = &aggregate
	}

	return product, nil
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) (*model.ProductModel, error) {
	if data == nil {
		return nil, nil
	}

	productM := &model.ProductModel{
		ID:         data.ID,
		Name:       data.Name,
		Slug:       data.Slug,
		Price:      data.Price,
		Status:     string(data.Status),
		CategoryID: data.CategoryID,
		BrandID:    data.BrandID,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}

	if data.Discount != nil {
		kind := string(data.Discount.Kind)
		productM.DiscountKind = &kind
		productM.DiscountAmount = decimal.NewNullDecimal(data.Discount.Amount)
	}

	if data.VariantsAggregate != nil {
		raw, err := json.Marshal(data.VariantsAggregate)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode variants aggregate")
		}
		productM.VariantsAggregate = datatypes.JSON(raw)
	}

	return productM, nil
}
