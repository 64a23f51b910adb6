package payment

import (
	"context"

	"orderhub/internal/errors"
)

// ProviderGateway stands in for a remote payment network. The integration
// lives outside this service; until one is wired every charge fails.
type ProviderGateway struct{}

func NewProviderGateway() *ProviderGateway {
	return &ProviderGateway{}
}

func (g *ProviderGateway) Charge(ctx context.Context, userID string, amount float64) (*Result, error) {
	return nil, errors.NewUnimplementedError("external payment provider call is not implemented")
}
