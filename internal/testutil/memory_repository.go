package testutil

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"orderhub/internal/domain"
	"orderhub/internal/errors"
)

// MemoryOrderRepository mirrors the storage contract of the Mongo repository,
// including ObjectID-shaped identifiers, for HTTP-level tests.
type MemoryOrderRepository struct {
	mu     sync.Mutex
	orders map[string]domain.Order

	InsertCalls int
}

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{orders: make(map[string]domain.Order)}
}

func (r *MemoryOrderRepository) Insert(_ context.Context, order domain.Order) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.InsertCalls++
	id := primitive.NewObjectID().Hex()
	order.ID = id
	order.Items = append([]domain.OrderItem(nil), order.Items...)
	r.orders[id] = order
	return id, nil
}

func (r *MemoryOrderRepository) FindByID(_ context.Context, id string) (*domain.Order, error) {
	key, err := orderKey(id)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[key]
	if !ok {
		return nil, notFound(id)
	}
	return copyOrder(order), nil
}

func (r *MemoryOrderRepository) Update(_ context.Context, id string, fields domain.OrderUpdate) (*domain.Order, error) {
	key, err := orderKey(id)
	if err != nil {
		return nil, err
	}
	if fields.IsEmpty() {
		return nil, errors.NewInvalidArgumentError("no fields provided for update")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[key]
	if !ok {
		return nil, notFound(id)
	}
	if fields.Status != nil {
		order.Status = *fields.Status
	}
	r.orders[key] = order
	return copyOrder(order), nil
}

func (r *MemoryOrderRepository) Delete(_ context.Context, id string) error {
	key, err := orderKey(id)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[key]; !ok {
		return notFound(id)
	}
	delete(r.orders, key)
	return nil
}

func (r *MemoryOrderRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.orders)
}

// orderKey resolves id the way Mongo does: any hex case names the same order.
func orderKey(id string) (string, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return "", notFound(id)
	}
	return oid.Hex(), nil
}

func notFound(id string) error {
	return errors.NewNotFoundError(fmt.Sprintf("order with id %s not found", id))
}

func copyOrder(order domain.Order) *domain.Order {
	order.Items = append([]domain.OrderItem(nil), order.Items...)
	return &order
}
