package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"catalog/config"
	"catalog/internal/domain/repository"
	mockRepo "catalog/internal/mocks/repository"
	mockSvc "catalog/internal/mocks/service"
	mockUsecase "catalog/internal/mocks/usecase"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(enforceRequired bool) *config.Config {
	cfg := &config.Config{}
	cfg.Catalog.EnforceRequiredAttributes = enforceRequired

	return cfg
}

// catalogFixtures shares one set of repository mocks between the transaction
// factory and the services' read paths.
type catalogFixtures struct {
	txManager     *mockRepo.MockTransactionManager
	factory       *mockRepo.MockRepositoryFactory
	productRepo   *mockRepo.MockProductRepository
	variantRepo   *mockRepo.MockVariantRepository
	attributeRepo *mockRepo.MockAttributeRepository
	recomputer    *mockUsecase.MockAggregateRecomputer
	cache         *mockSvc.MockProductCache
	publisher     *mockSvc.MockEventPublisher
}

func newCatalogFixtures(t *testing.T) *catalogFixtures {
	fx := &catalogFixtures{
		txManager:     mockRepo.NewMockTransactionManager(t),
		factory:       mockRepo.NewMockRepositoryFactory(t),
		productRepo:   mockRepo.NewMockProductRepository(t),
		variantRepo:   mockRepo.NewMockVariantRepository(t),
		attributeRepo: mockRepo.NewMockAttributeRepository(t),
		recomputer:    mockUsecase.NewMockAggregateRecomputer(t),
		cache:         mockSvc.NewMockProductCache(t),
		publisher:     mockSvc.NewMockEventPublisher(t),
	}

	fx.factory.EXPECT().ProductRepo().Return(fx.productRepo).Maybe()
	fx.factory.EXPECT().VariantRepo().Return(fx.variantRepo).Maybe()
	fx.factory.EXPECT().AttributeRepo().Return(fx.attributeRepo).Maybe()

	return fx
}

// expectTx runs every Execute callback against the mock factory and returns its error.
func (fx *catalogFixtures) expectTx() {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
}

func (fx *catalogFixtures) newVariantService(enforceRequired bool) *variantService {
	return NewVariantService(VariantServiceParams{
		TxManager:   fx.txManager,
		VariantRepo: fx.variantRepo,
		ProductRepo: fx.productRepo,
		Recomputer:  fx.recomputer,
		Config:      newTestConfig(enforceRequired),
		Logger:      newDiscardLogger(),
	}).(*variantService)
}

func (fx *catalogFixtures) newProductService() *productService {
	return NewProductService(ProductServiceParams{
		TxManager:   fx.txManager,
		ProductRepo: fx.productRepo,
		Cache:       fx.cache,
		Recomputer:  fx.recomputer,
		Logger:      newDiscardLogger(),
	}).(*productService)
}

func (fx *catalogFixtures) newAttributeService() *attributeService {
	return NewAttributeService(AttributeServiceParams{
		TxManager:     fx.txManager,
		AttributeRepo: fx.attributeRepo,
		Logger:        newDiscardLogger(),
	}).(*attributeService)
}

func (fx *catalogFixtures) newAggregateService() *aggregateService {
	return NewAggregateService(AggregateServiceParams{
		TxManager: fx.txManager,
		Cache:     fx.cache,
		Publisher: fx.publisher,
		Logger:    newDiscardLogger(),
	}).(*aggregateService)
}
