package impl

import (
	"context"
	"sync"
	"testing"

	"catalog/internal/domain/entity"
	"catalog/internal/infra/cache"
	"catalog/internal/infra/persistence/model"
	"catalog/internal/infra/persistence/postgres"
	"catalog/internal/infra/persistence/sqlitetest"
	"catalog/internal/infra/pubsub"
	"catalog/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// recordingRecomputer forwards to the real aggregate service and remembers
// every product it was asked to rebuild.
type recordingRecomputer struct {
	next usecase.AggregateRecomputer

	mu    sync.Mutex
	calls []int64
}

func (r *recordingRecomputer) Recompute(ctx context.Context, productID int64) error {
	r.mu.Lock()
	r.calls = append(r.calls, productID)
	r.mu.Unlock()

	return r.next.Recompute(ctx, productID)
}

func (r *recordingRecomputer) reset() {
	r.mu.Lock()
	r.calls = nil
	r.mu.Unlock()
}

func (r *recordingRecomputer) recorded() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]int64(nil), r.calls...)
}

type catalogStack struct {
	db         *gorm.DB
	recomputer *recordingRecomputer
	products   usecase.ProductUsecase
	variants   usecase.VariantUsecase
	attributes usecase.AttributeUsecase
}

func newCatalogStack(t *testing.T) *catalogStack {
	t.Helper()

	db := sqlitetest.Open(t)
	logger := newDiscardLogger()
	txManager := postgres.NewTransactionManager(db)
	productRepo := postgres.NewProductRepository(db)

	recomputer := &recordingRecomputer{
		next: NewAggregateService(AggregateServiceParams{
			TxManager: txManager,
			Cache:     cache.NewNoopProductCache(),
			Publisher: pubsub.NewNoopPublisher(logger),
			Logger:    logger,
		}),
	}

	return &catalogStack{
		db:         db,
		recomputer: recomputer,
		products: NewProductService(ProductServiceParams{
			TxManager:   txManager,
			ProductRepo: productRepo,
			Cache:       cache.NewNoopProductCache(),
			Recomputer:  recomputer,
			Logger:      logger,
		}),
		variants: NewVariantService(VariantServiceParams{
			TxManager:   txManager,
			VariantRepo: postgres.NewVariantRepository(db),
			ProductRepo: productRepo,
			Recomputer:  recomputer,
			Config:      newTestConfig(true),
			Logger:      logger,
		}),
		attributes: NewAttributeService(AttributeServiceParams{
			TxManager:     txManager,
			AttributeRepo: postgres.NewAttributeRepository(db),
			Logger:        logger,
		}),
	}
}

func (s *catalogStack) createProduct(t *testing.T, slug string) *entity.Product {
	t.Helper()

	product, err := s.products.CreateProduct(context.Background(), &usecase.CreateProductInput{
		Name:  slug,
		Slug:  slug,
		Price: decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	return product
}

func (s *catalogStack) createVariant(t *testing.T, productID int64, sku string, stock int, attributes ...usecase.AttributeInput) *entity.ProductVariant {
	t.Helper()

	variant, err := s.variants.CreateVariant(context.Background(), &usecase.CreateVariantInput{
		ProductID:  productID,
		Name:       sku,
		SKU:        sku,
		Price:      decimal.NewFromInt(100),
		Stock:      stock,
		Attributes: attributes,
	})
	require.NoError(t, err)

	return variant
}

func (s *catalogStack) createAttribute(t *testing.T, name string) *entity.Attribute {
	t.Helper()

	attribute, err := s.attributes.CreateAttribute(context.Background(), name)
	require.NoError(t, err)

	return attribute
}

func (s *catalogStack) defaultFlags(t *testing.T, productID int64) map[int64]bool {
	t.Helper()

	variants, err := s.variants.ListVariants(context.Background(), productID)
	require.NoError(t, err)

	flags := make(map[int64]bool, len(variants))
	for _, v := range variants {
		flags[v.ID] = v.IsDefault
	}

	return flags
}

func boundValues(variant *entity.ProductVariant) map[string]string {
	values := make(map[string]string, len(variant.Attributes))
	for _, attr := range variant.Attributes {
		values[attr.AttributeName] = attr.Value
	}

	return values
}

func TestCatalog_ResolveAttributeValueIsIdempotent(t *testing.T) {
	s := newCatalogStack(t)
	ctx := context.Background()
	color := s.createAttribute(t, "Color")

	first, err := s.attributes.ResolveAttributeValue(ctx, color.ID, "Black")
	require.NoError(t, err)
	second, err := s.attributes.ResolveAttributeValue(ctx, color.ID, "Black")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	var count int64
	require.NoError(t, s.db.Model(&model.AttributeValueModel{}).
		Where("attribute_id = ? AND value = ?", color.ID, "Black").
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCatalog_SetVariantAttributesReplacesWholeSet(t *testing.T) {
	s := newCatalogStack(t)
	ctx := context.Background()
	product := s.createProduct(t, "phone")
	color := s.createAttribute(t, "Color")
	storage := s.createAttribute(t, "Storage")

	variant := s.createVariant(t, product.ID, "PHONE-BLK-256", 3,
		usecase.AttributeInput{AttributeID: color.ID, Value: "Black"},
		usecase.AttributeInput{AttributeID: storage.ID, Value: "256GB"},
	)
	assert.Equal(t, map[string]string{"Color": "Black", "Storage": "256GB"}, boundValues(variant))

	require.NoError(t, s.variants.SetVariantAttributes(ctx, variant.ID, []usecase.AttributeInput{}))
	cleared, err := s.variants.GetVariant(ctx, variant.ID)
	require.NoError(t, err)
	assert.Empty(t, cleared.Attributes)

	require.NoError(t, s.variants.SetVariantAttributes(ctx, variant.ID, []usecase.AttributeInput{
		{AttributeID: color.ID, Value: "Red"},
	}))
	reloaded, err := s.variants.GetVariant(ctx, variant.ID)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"Color": "Red"}, boundValues(reloaded))
}

func TestCatalog_FailedAttributeReplaceKeepsPreviousSet(t *testing.T) {
	s := newCatalogStack(t)
	ctx := context.Background()
	product := s.createProduct(t, "phone")
	color := s.createAttribute(t, "Color")
	variant := s.createVariant(t, product.ID, "PHONE-BLK", 3,
		usecase.AttributeInput{AttributeID: color.ID, Value: "Black"},
	)
	s.recomputer.reset()

	err := s.variants.SetVariantAttributes(ctx, variant.ID, []usecase.AttributeInput{
		{AttributeID: color.ID, Value: "Red"},
		{AttributeID: 999, Value: "oops"},
	})
	require.Error(t, err)

	reloaded, err := s.variants.GetVariant(ctx, variant.ID)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"Color": "Black"}, boundValues(reloaded))
	assert.Empty(t, s.recomputer.recorded())
}

func TestCatalog_SetDefaultVariantIsExclusive(t *testing.T) {
	s := newCatalogStack(t)
	ctx := context.Background()
	product := s.createProduct(t, "phone")

	v1, err := s.variants.CreateVariant(ctx, &usecase.CreateVariantInput{
		ProductID: product.ID, Name: "one", SKU: "ONE", Price: decimal.NewFromInt(1), Stock: 1, IsDefault: true,
	})
	require.NoError(t, err)
	v2 := s.createVariant(t, product.ID, "TWO", 1)
	v3 := s.createVariant(t, product.ID, "THREE", 1)

	for _, target := range []int64{v3.ID, v2.ID, v2.ID, v1.ID} {
		require.NoError(t, s.variants.SetDefaultVariant(ctx, product.ID, target))

		flags := s.defaultFlags(t, product.ID)
		defaults := 0
		for id, isDefault := range flags {
			if isDefault {
				defaults++
				assert.Equal(t, target, id)
			}
		}
		assert.Equal(t, 1, defaults)
	}
}

func TestCatalog_DeleteVariantCleansUpAndRecomputesOwner(t *testing.T) {
	s := newCatalogStack(t)
	ctx := context.Background()
	product := s.createProduct(t, "phone")
	color := s.createAttribute(t, "Color")
	keep := s.createVariant(t, product.ID, "KEEP", 2)
	gone := s.createVariant(t, product.ID, "GONE", 4,
		usecase.AttributeInput{AttributeID: color.ID, Value: "Black"},
	)
	s.recomputer.reset()

	require.NoError(t, s.variants.DeleteVariant(ctx, gone.ID))

	var count int64
	require.NoError(t, s.db.Model(&model.ProductVariantValueModel{}).Where("variant_id = ?", gone.ID).Count(&count).Error)
	assert.Zero(t, count)
	assert.Equal(t, []int64{product.ID}, s.recomputer.recorded())

	detail, err := s.products.GetProductDetail(ctx, product.ID)
	require.NoError(t, err)
	require.NotNil(t, detail.VariantsAggregate)
	require.Len(t, detail.VariantsAggregate.Variants, 1)
	assert.Equal(t, keep.ID, detail.VariantsAggregate.Variants[0].ID)
	assert.Equal(t, 2, detail.VariantsAggregate.TotalStock)
}

func TestCatalog_DefaultVariantFallsBackToHighestStock(t *testing.T) {
	s := newCatalogStack(t)
	ctx := context.Background()

	stocked := s.createProduct(t, "stocked")
	s.createVariant(t, stocked.ID, "S-LOW", 3)
	high := s.createVariant(t, stocked.ID, "S-HIGH", 10)
	s.createVariant(t, stocked.ID, "S-NONE", 0)

	got, err := s.variants.GetDefaultVariantDetail(ctx, stocked.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, high.ID, got.ID)

	empty := s.createProduct(t, "sold-out")
	s.createVariant(t, empty.ID, "E-1", 0)
	s.createVariant(t, empty.ID, "E-2", 0)

	got, err = s.variants.GetDefaultVariantDetail(ctx, empty.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCatalog_SetStockOverwrites(t *testing.T) {
	s := newCatalogStack(t)
	ctx := context.Background()
	product := s.createProduct(t, "phone")
	variant := s.createVariant(t, product.ID, "PHONE", 1)
	s.recomputer.reset()

	require.NoError(t, s.variants.SetStock(ctx, variant.ID, 5))
	require.NoError(t, s.variants.SetStock(ctx, variant.ID, 5))

	reloaded, err := s.variants.GetVariant(ctx, variant.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, reloaded.Stock)
	assert.Equal(t, []int64{product.ID, product.ID}, s.recomputer.recorded())
}

func TestCatalog_DefaultVariantScenario(t *testing.T) {
	s := newCatalogStack(t)
	ctx := context.Background()
	product := s.createProduct(t, "phone")
	v1 := s.createVariant(t, product.ID, "V1", 3)
	v2 := s.createVariant(t, product.ID, "V2", 10)

	got, err := s.variants.GetDefaultVariantDetail(ctx, product.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, v2.ID, got.ID)

	require.NoError(t, s.variants.SetDefaultVariant(ctx, product.ID, v1.ID))

	assert.Equal(t, map[int64]bool{v1.ID: true, v2.ID: false}, s.defaultFlags(t, product.ID))

	got, err = s.variants.GetDefaultVariantDetail(ctx, product.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, v1.ID, got.ID)

	detail, err := s.products.GetProductDetail(ctx, product.ID)
	require.NoError(t, err)
	require.NotNil(t, detail.VariantsAggregate)
	require.NotNil(t, detail.VariantsAggregate.DefaultVariantID)
	assert.Equal(t, v1.ID, *detail.VariantsAggregate.DefaultVariantID)
}

func TestCatalog_EveryMutationRecomputesOnce(t *testing.T) {
	s := newCatalogStack(t)
	ctx := context.Background()
	product := s.createProduct(t, "phone")
	other := s.createProduct(t, "tablet")
	variant := s.createVariant(t, product.ID, "PHONE", 1)
	s.recomputer.reset()

	_, err := s.variants.ToggleStatus(ctx, variant.ID)
	require.NoError(t, err)
	require.NoError(t, s.variants.SetPrice(ctx, variant.ID, decimal.NewFromInt(80)))
	require.NoError(t, s.products.SetProductDiscount(ctx, product.ID, &entity.Discount{
		Kind: entity.DiscountKindFixed, Amount: decimal.NewFromInt(5),
	}))
	assert.Equal(t, []int64{product.ID, product.ID, product.ID}, s.recomputer.recorded())

	s.recomputer.reset()
	_, err = s.variants.UpdateVariant(ctx, variant.ID, &usecase.UpdateVariantInput{
		ProductID: other.ID,
		Name:      "moved",
		SKU:       "PHONE",
		Price:     decimal.NewFromInt(80),
		Stock:     1,
		Status:    entity.StatusActive,
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{product.ID, other.ID}, s.recomputer.recorded())

	s.recomputer.reset()
	err = s.variants.SetStock(ctx, 999, 1)
	require.Error(t, err)
	assert.Empty(t, s.recomputer.recorded())
}
