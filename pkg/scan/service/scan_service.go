package service

import (
	"context"

	"agrow/entities"
	"agrow/pkg/scan/types"
)

type ScanService interface {
	// Create runs one inference, reconciles the answer against the knowledge
	// base and appends the record. Nothing is stored on failure.
	Create(ctx context.Context, userID string, req types.CreateScanRequest) (*entities.DiagnosisRecord, error)
	// List returns the user's records, newest first.
	List(ctx context.Context, userID string) ([]entities.DiagnosisRecord, error)
	Get(ctx context.Context, userID, id string) (*entities.DiagnosisRecord, error)
}
