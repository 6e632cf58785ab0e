package service

import "context"

// SyncServiceInterface defines the contract for the product photo sync
type SyncServiceInterface interface {
	SyncProducts(ctx context.Context, folderID string) (inserted int, skipped int, total int, err error)
}
