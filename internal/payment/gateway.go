package payment

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"orderhub/internal/config"
)

// Gateway authorizes a charge before an order is persisted.
type Gateway interface {
	Charge(ctx context.Context, userID string, amount float64) (*Result, error)
}

// Result is the outcome of an authorization. Reason is set only on decline.
type Result struct {
	Approved      bool
	TransactionID string
	Reason        string
}

func Approved(transactionID string) *Result {
	return &Result{Approved: true, TransactionID: transactionID}
}

func Declined(reason string) *Result {
	return &Result{Approved: false, Reason: reason}
}

// New picks the gateway variant once, at startup.
func New(cfg config.PaymentConfig, logger *zap.Logger) (Gateway, error) {
	switch cfg.Mode {
	case config.PaymentModeMock:
		logger.Info("using mock payment gateway", zap.Bool("forceFail", cfg.ForceFail))
		return NewMockGateway(cfg.ForceFail), nil
	case config.PaymentModeReal:
		logger.Warn("provider payment gateway selected but not implemented; every order creation will fail")
		return NewProviderGateway(), nil
	default:
		return nil, fmt.Errorf("unknown payment mode %q", cfg.Mode)
	}
}
