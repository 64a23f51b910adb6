package cache

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	goredis "github.com/go-redis/redis/v8"

	"orderhub/internal/domain"
)

const keyPrefix = "order:"

type cachedOrder struct {
	ID         string       `json:"id"`
	UserID     string       `json:"user_id"`
	Items      []cachedItem `json:"items"`
	TotalPrice float64      `json:"total_price"`
	Status     string       `json:"status"`
}

type cachedItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// RedisOrderCache keeps read-through copies of orders keyed by id.
type RedisOrderCache struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewRedisOrderCache(client *goredis.Client, ttl time.Duration) *RedisOrderCache {
	return &RedisOrderCache{client: client, ttl: ttl}
}

// Get reports a miss as (nil, false, nil).
func (c *RedisOrderCache) Get(ctx context.Context, id string) (*domain.Order, bool, error) {
	data, err := c.client.Get(ctx, Key(id)).Bytes()
	if stderrors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading cached order: %w", err)
	}

	var entry cachedOrder
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false, fmt.Errorf("decoding cached order: %w", err)
	}

	return entry.toDomain(), true, nil
}

func (c *RedisOrderCache) Set(ctx context.Context, order *domain.Order) error {
	data, err := json.Marshal(fromDomain(order))
	if err != nil {
		return fmt.Errorf("encoding order for cache: %w", err)
	}

	if err := c.client.Set(ctx, Key(order.ID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("writing cached order: %w", err)
	}
	return nil
}

func (c *RedisOrderCache) Delete(ctx context.Context, id string) error {
	if err := c.client.Del(ctx, Key(id)).Err(); err != nil {
		return fmt.Errorf("evicting cached order: %w", err)
	}
	return nil
}

func Key(id string) string {
	return keyPrefix + id
}

// NopCache is used when caching is disabled.
type NopCache struct{}

func (NopCache) Get(context.Context, string) (*domain.Order, bool, error) { return nil, false, nil }
func (NopCache) Set(context.Context, *domain.Order) error { return nil }
func (NopCache) Delete(context.Context, string) error { return nil }

func fromDomain(order *domain.Order) cachedOrder {
	items := make([]cachedItem, len(order.Items))
	for i, item := range order.Items {
		items[i] = cachedItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		}
	}
	return cachedOrder{
		ID:         order.ID,
		UserID:     order.UserID,
		Items:      items,
		TotalPrice: order.TotalPrice,
		Status:     order.Status,
	}
}

func (c cachedOrder) toDomain() *domain.Order {
	items := make([]domain.OrderItem, len(c.Items))
	for i, item := range c.Items {
		items[i] = domain.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		}
	}
	return &domain.Order{
		ID:         c.ID,
		UserID:     c.UserID,
		Items:      items,
		TotalPrice: c.TotalPrice,
		Status:     c.Status,
	}
}
