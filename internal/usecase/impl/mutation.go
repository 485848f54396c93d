package impl

import (
	"context"
	"log/slog"
	"slices"

	deliverycontext "catalog/internal/delivery/context"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/usecase"
)

// touchFunc records a product whose variant aggregate must be rebuilt.
type touchFunc func(productID int64)

// mutationRunner is the single path for writes that affect a product's variant
// aggregate. It runs the write in one transaction and, only after commit,
// recomputes each touched product exactly once.
type mutationRunner struct {
	txManager  repository.TransactionManager
	recomputer usecase.AggregateRecomputer
	logger     *slog.Logger
}

func newMutationRunner(txManager repository.TransactionManager, recomputer usecase.AggregateRecomputer, logger *slog.Logger) *mutationRunner {
	return &mutationRunner{
		txManager:  txManager,
		recomputer: recomputer,
		logger:     logger,
	}
}

func (r *mutationRunner) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, r.logger)
}

// Run executes fn inside a transaction. A failed fn rolls back and skips the recompute.
// A failed recompute is logged but does not fail the committed write, so clients
// never retry a mutation that already took effect.
func (r *mutationRunner) Run(ctx context.Context, op string, fn func(repoFactory repository.RepositoryFactory, touch touchFunc) error) error {
	var touched []int64
	touch := func(productID int64) {
		if productID != 0 && !slices.Contains(touched, productID) {
			touched = append(touched, productID)
		}
	}

	err := r.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		touched = touched[:0]

		return fn(repoFactory, touch)
	})
	if err != nil {
		r.log(ctx).Warn("Variant mutation rolled back", slog.String("op", op), slog.Any("error", err))

		return err
	}

	for _, productID := range touched {
		if err := r.recomputer.Recompute(ctx, productID); err != nil {
			// The write is durable; only the cached summary is stale until the next mutation.
			r.log(ctx).Error("Failed to recompute variants aggregate",
				slog.String("op", op),
				slog.Int64("productID", productID),
				slog.String("code", domainerrors.ErrAggregateRecomputeFailed.ErrorCode()),
				slog.Any("error", err),
			)
		}
	}

	r.log(ctx).Info("Variant mutation committed", slog.String("op", op), slog.Any("productIDs", touched))

	return nil
}
