package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"orderhub/internal/domain"
	"orderhub/internal/errors"
	"orderhub/internal/payment"
)

type OrderRepository interface {
	Insert(ctx context.Context, order domain.Order) (string, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	Update(ctx context.Context, id string, fields domain.OrderUpdate) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
}

type OrderCache interface {
	Get(ctx context.Context, id string) (*domain.Order, bool, error)
	Set(ctx context.Context, order *domain.Order) error
	Delete(ctx context.Context, id string) error
}

// CreateOrderCommand carries a validated order plus the per-request signal
// that forces the payment step to decline.
type CreateOrderCommand struct {
	Order               domain.Order
	ForcePaymentFailure bool
}

type OrderUseCase struct {
	repo    OrderRepository
	gateway payment.Gateway
	cache   OrderCache
	logger  *zap.Logger
}

func NewOrderUseCase(repo OrderRepository, gateway payment.Gateway, cache OrderCache, logger *zap.Logger) *OrderUseCase {
	return &OrderUseCase{
		repo:    repo,
		gateway: gateway,
		cache:   cache,
		logger:  logger,
	}
}

// CreateOrder authorizes the charge first and writes only on approval, so a
// failure never leaves a stored order behind.
func (uc *OrderUseCase) CreateOrder(ctx context.Context, cmd CreateOrderCommand) (string, error) {
	order := cmd.Order
	uc.logger.Info("create order started",
		zap.String("userId", order.UserID),
		zap.Int("itemCount", len(order.Items)),
		zap.Float64("totalPrice", order.TotalPrice))

	if cmd.ForcePaymentFailure {
		uc.logger.Info("payment failure forced by request", zap.String("userId", order.UserID))
		return "", errors.NewPaymentRequiredError("payment required", "payment failure forced by request")
	}

	result, err := uc.gateway.Charge(ctx, order.UserID, order.TotalPrice)
	if err != nil {
		return "", err
	}
	if !result.Approved {
		uc.logger.Info("payment declined", zap.String("userId", order.UserID), zap.String("reason", result.Reason))
		return "", errors.NewPaymentRequiredError("payment required", result.Reason)
	}

	id, err := uc.repo.Insert(ctx, order)
	if err != nil {
		return "", err
	}

	uc.logger.Info("order created", zap.String("orderId", id), zap.String("transactionId", result.TransactionID))
	return id, nil
}

func (uc *OrderUseCase) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	cached, hit, err := uc.cache.Get(ctx, cacheID(id))
	if err != nil {
		uc.logger.Warn("order cache read failed", zap.String("orderId", id), zap.Error(err))
	}
	if hit {
		return cached, nil
	}

	order, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.cache.Set(ctx, order); err != nil {
		uc.logger.Warn("order cache write failed", zap.String("orderId", id), zap.Error(err))
	}
	return order, nil
}

// UpdateOrder rejects an empty update before looking at the id, so the answer
// is the same whether or not the order exists.
func (uc *OrderUseCase) UpdateOrder(ctx context.Context, id string, update domain.OrderUpdate) (*domain.Order, error) {
	if update.IsEmpty() {
		return nil, errors.NewInvalidArgumentError("no fields provided for update")
	}

	order, err := uc.repo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}

	uc.evict(ctx, id)
	uc.logger.Info("order updated", zap.String("orderId", id), zap.String("status", order.Status))
	return order, nil
}

func (uc *OrderUseCase) DeleteOrder(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.evict(ctx, id)
	uc.logger.Info("order deleted", zap.String("orderId", id))
	return nil
}

func (uc *OrderUseCase) evict(ctx context.Context, id string) {
	if err := uc.cache.Delete(ctx, cacheID(id)); err != nil {
		uc.logger.Warn("order cache eviction failed", zap.String("orderId", id), zap.Error(err))
	}
}

// cacheID is the form under which an order is cached. Storage accepts hex
// ids in either case but always reports them in lowercase.
func cacheID(id string) string {
	return strings.ToLower(id)
}
