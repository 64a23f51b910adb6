package payment

import (
	"context"

	"github.com/google/uuid"
)

const mockDeclineReason = "payment declined by mock gateway"

// MockGateway approves every charge unless built to fail. The outcome never
// depends on the user or the amount.
type MockGateway struct {
	failAll bool
}

func NewMockGateway(failAll bool) *MockGateway {
	return &MockGateway{failAll: failAll}
}

func (g *MockGateway) Charge(ctx context.Context, userID string, amount float64) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if g.failAll {
		return Declined(mockDeclineReason), nil
	}
	return Approved(uuid.New().String()), nil
}
