package controller

import (
	"strconv"
	"strings"

	"orderhub/internal/dto"
	apperrors "orderhub/internal/errors"
)

func validateCreateOrderRequest(req dto.CreateOrderRequest) error {
	var details []apperrors.ValidationDetail

	if strings.TrimSpace(req.UserID) == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	// An empty list is accepted; a missing or null one is not.
	if req.Items == nil {
		details = append(details, apperrors.ValidationDetail{
			Field:   "items",
			Message: "items is required",
		})
	}

	for idx, item := range req.Items {
		prefix := "items[" + strconv.Itoa(idx) + "]."

		if item.ProductID == nil {
			details = append(details, apperrors.ValidationDetail{
				Field:   prefix + "product_id",
				Message: "product_id is required",
			})
		}

		if item.Name == nil {
			details = append(details, apperrors.ValidationDetail{
				Field:   prefix + "name",
				Message: "name is required",
			})
		}

		if item.Price == nil {
			details = append(details, apperrors.ValidationDetail{
				Field:   prefix + "price",
				Message: "price is required",
			})
		}

		if item.Quantity == nil {
			details = append(details, apperrors.ValidationDetail{
				Field:   prefix + "quantity",
				Message: "quantity is required",
			})
		}
	}

	if req.TotalPrice == nil {
		details = append(details, apperrors.ValidationDetail{
			Field:   "total_price",
			Message: "total_price is required",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}

	return nil
}
