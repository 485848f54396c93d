package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	"catalog/internal/domain/repository"
	"catalog/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// attributeService implements the AttributeUsecase interface.
type attributeService struct {
	txManager     repository.TransactionManager
	attributeRepo repository.AttributeRepository
	logger        *slog.Logger
}

// AttributeServiceParams holds dependencies for AttributeService, injected by Fx.
type AttributeServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	AttributeRepo repository.AttributeRepository
	Logger        *slog.Logger
}

// NewAttributeService is the constructor for attributeService.
func NewAttributeService(params AttributeServiceParams) usecase.AttributeUsecase {
	return &attributeService{
		txManager:     params.TxManager,
		attributeRepo: params.AttributeRepo,
		logger:        params.Logger,
	}
}

func (srv *attributeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateAttribute registers a new attribute name.
func (srv *attributeService) CreateAttribute(ctx context.Context, name string) (*entity.Attribute, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validationError("attribute name must not be empty")
	}

	attribute := &entity.Attribute{Name: name}
	if err := srv.attributeRepo.CreateAttribute(ctx, attribute); err != nil {
		return nil, translateRepoError(err, "failed to create attribute")
	}

	srv.log(ctx).Info("Attribute created", slog.Int64("attributeID", attribute.ID), slog.String("name", attribute.Name))

	return attribute, nil
}

// ListAttributes returns every attribute ordered by name.
func (srv *attributeService) ListAttributes(ctx context.Context) ([]*entity.Attribute, error) {
	attributes, err := srv.attributeRepo.ListAttributes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list attributes")
	}

	return attributes, nil
}

// ResolveAttributeValue maps (attributeID, value) to its stable ID, creating the row on first use.
func (srv *attributeService) ResolveAttributeValue(ctx context.Context, attributeID int64, value string) (int64, error) {
	var valueID int64
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		id, err := resolveAttributeValue(ctx, repoFactory.AttributeRepo(), attributeID, value)
		if err != nil {
			return err
		}
		valueID = id

		return nil
	})
	if err != nil {
		return 0, err
	}

	srv.log(ctx).Debug("Attribute value resolved",
		slog.Int64("attributeID", attributeID),
		slog.Int64("attributeValueID", valueID),
	)

	return valueID, nil
}
