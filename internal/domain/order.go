package domain

// DefaultOrderStatus is assigned when a create request leaves status empty.
const DefaultOrderStatus = "Pending"

const (
	OrderStatusPending    = "Pending"
	OrderStatusProcessing = "Processing"
	OrderStatusShipped    = "Shipped"
	OrderStatusDelivered  = "Delivered"
)

// Order is the sole persisted entity. Items and TotalPrice are write-once;
// Status is free-form and is the only field an update may change.
type Order struct {
	ID         string
	UserID     string
	Items      []OrderItem
	TotalPrice float64
	Status     string
}

type OrderItem struct {
	ProductID string
	Name      string
	Price     float64
	Quantity  int
}

// OrderUpdate carries the fields an update may set. Nil means "leave as is".
type OrderUpdate struct {
	Status *string
}

func (u OrderUpdate) IsEmpty() bool {
	return u.Status == nil
}
