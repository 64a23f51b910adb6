package dto

// CreateOrderRequest uses pointers so an absent field can be told apart from
// a zero value during validation.
type CreateOrderRequest struct {
	UserID     string            `json:"user_id"`
	Items      []CreateOrderItem `json:"items"`
	TotalPrice *float64          `json:"total_price"`
	Status     *string           `json:"status"`
}

type CreateOrderItem struct {
	ProductID *string  `json:"product_id"`
	Name      *string  `json:"name"`
	Price     *float64 `json:"price"`
	Quantity  *int     `json:"quantity"`
}

// UpdateOrderRequest accepts status only; any other key in the body is ignored.
type UpdateOrderRequest struct {
	Status *string `json:"status"`
}
