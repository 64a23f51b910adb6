package order

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"orderhub/internal/order/controller"
	"orderhub/internal/order/repository"
	"orderhub/internal/order/usecase"
	"orderhub/internal/payment"
)

func NewModule(coll *mongo.Collection, gateway payment.Gateway, cache usecase.OrderCache, logger *zap.Logger) *controller.OrderController {
	repo := repository.NewMongoOrderRepository(coll)
	uc := usecase.NewOrderUseCase(repo, gateway, cache, logger)
	return controller.NewOrderController(uc, logger)
}
