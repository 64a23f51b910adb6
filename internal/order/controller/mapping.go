package controller

import (
	"orderhub/internal/domain"
	"orderhub/internal/dto"
)

// toDomainOrder expects a request that already passed validation.
func toDomainOrder(req dto.CreateOrderRequest) domain.Order {
	items := make([]domain.OrderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = domain.OrderItem{
			ProductID: *item.ProductID,
			Name:      *item.Name,
			Price:     *item.Price,
			Quantity:  *item.Quantity,
		}
	}

	status := domain.DefaultOrderStatus
	if req.Status != nil {
		status = *req.Status
	}

	return domain.Order{
		UserID:     req.UserID,
		Items:      items,
		TotalPrice: *req.TotalPrice,
		Status:     status,
	}
}

func toOrderResponse(order *domain.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = dto.OrderItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		}
	}

	return dto.OrderResponse{
		ID:         order.ID,
		UserID:     order.UserID,
		Items:      items,
		TotalPrice: order.TotalPrice,
		Status:     order.Status,
	}
}
