package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"orderhub/internal/domain"
	"orderhub/internal/dto"
	apperrors "orderhub/internal/errors"
	"orderhub/internal/order/usecase"
)

// PaymentFailHeader forces the payment step of a create to decline.
const PaymentFailHeader = "X-Payment-Fail"

type OrderUseCase interface {
	CreateOrder(ctx context.Context, cmd usecase.CreateOrderCommand) (string, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	UpdateOrder(ctx context.Context, id string, update domain.OrderUpdate) (*domain.Order, error)
	DeleteOrder(ctx context.Context, id string) error
}

type OrderController struct {
	useCase OrderUseCase
	logger  *zap.Logger
}

func NewOrderController(useCase OrderUseCase, logger *zap.Logger) *OrderController {
	return &OrderController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *OrderController) Health(w http.ResponseWriter, r *http.Request) {
	c.writeJSON(w, http.StatusOK, dto.HealthResponse{OK: true})
}

func (c *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, traceID, apperrors.NewValidationError("invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be a valid order object",
		}))
		return
	}

	if err := validateCreateOrderRequest(req); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, traceID, ve)
		return
	}

	cmd := usecase.CreateOrderCommand{
		Order:               toDomainOrder(req),
		ForcePaymentFailure: isTruthy(r.Header.Get(PaymentFailHeader)),
	}

	id, err := c.useCase.CreateOrder(r.Context(), cmd)
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, dto.CreateOrderResponse{ID: id})
}

func (c *OrderController) GetOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	order, err := c.useCase.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, toOrderResponse(order))
}

func (c *OrderController) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.UpdateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, traceID, apperrors.NewValidationError("invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be an object with an optional string status",
		}))
		return
	}

	order, err := c.useCase.UpdateOrder(r.Context(), chi.URLParam(r, "id"), domain.OrderUpdate{Status: req.Status})
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, toOrderResponse(order))
}

func (c *OrderController) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	if err := c.useCase.DeleteOrder(r.Context(), chi.URLParam(r, "id")); err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.DeleteOrderResponse{Status: "deleted"})
}

func (c *OrderController) handleUseCaseError(w http.ResponseWriter, traceID string, err error, logger *zap.Logger) {
	if _, ok := apperrors.IsNotFoundError(err); ok {
		c.writeErrorResponse(w, traceID, http.StatusNotFound, "NOT_FOUND", "order not found", nil)
		return
	}

	if _, ok := apperrors.IsInvalidArgumentError(err); ok {
		c.writeErrorResponse(w, traceID, http.StatusBadRequest, "INVALID_ARGUMENT", err.Error(), nil)
		return
	}

	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, traceID, ve)
		return
	}

	if _, ok := apperrors.IsPaymentRequiredError(err); ok {
		c.writeErrorResponse(w, traceID, http.StatusPaymentRequired, "PAYMENT_REQUIRED", err.Error(), nil)
		return
	}

	if _, ok := apperrors.IsUnimplementedError(err); ok {
		logger.Error("payment provider unavailable", zap.Error(err))
		c.writeErrorResponse(w, traceID, http.StatusNotImplemented, "UNIMPLEMENTED", err.Error(), nil)
		return
	}

	if ie, ok := apperrors.IsInternalError(err); ok {
		logger.Error("storage failure", zap.String("operation", ie.Message), zap.NamedError("cause", ie.Cause))
		c.writeErrorResponse(w, traceID, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred", nil)
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeErrorResponse(w, traceID, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred", nil)
}

func (c *OrderController) writeValidationError(w http.ResponseWriter, traceID string, ve *apperrors.ValidationError) {
	details := make([]dto.ErrorDetail, len(ve.Details))
	for i, d := range ve.Details {
		details[i] = dto.ErrorDetail{Field: d.Field, Message: d.Message}
	}
	c.writeErrorResponse(w, traceID, http.StatusUnprocessableEntity, "VALIDATION_ERROR", ve.Message, details)
}

func (c *OrderController) writeErrorResponse(w http.ResponseWriter, traceID string, statusCode int, code string, message string, details []dto.ErrorDetail) {
	response := dto.ErrorResponse{
		TraceID:   traceID,
		Status:    statusCode,
		Code:      code,
		Message:   message,
		Details:   details,
		Timestamp: time.Now().UTC(),
	}

	c.writeJSON(w, statusCode, response)
}

func (c *OrderController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes":
		return true
	}
	return false
}
