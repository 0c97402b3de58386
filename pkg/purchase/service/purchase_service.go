package service

import (
	"context"

	"agrow/entities"
)

// CreatePurchaseRequest is the body of POST /api/purchases. Name and price
// may be left out for catalog products.
type CreatePurchaseRequest struct {
	ProductID   string   `json:"productId"`
	ProductName string   `json:"productName"`
	Price       *float64 `json:"price"`
}

type PurchaseService interface {
	Create(ctx context.Context, userID string, req CreatePurchaseRequest) (*entities.Purchase, error)
	// List returns the user's purchases, newest first.
	List(ctx context.Context, userID string) ([]entities.Purchase, error)
}
