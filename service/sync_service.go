package service

import (
	"context"
	"fmt"
	"log"

	"atelie-gestor/repository"
)

// SyncService mirrors the product photo folder in Google Drive into the
// products table. Photos already seen (by drive_file_id) are skipped, so
// the sync can run repeatedly without duplicating products.
type SyncService struct {
	driveService DriveServiceInterface
	repository   repository.ProductRepositoryInterface
}

// NewSyncService creates a new SyncService
func NewSyncService(driveService DriveServiceInterface, repo repository.ProductRepositoryInterface) *SyncService {
	return &SyncService{
		driveService: driveService,
		repository:   repo,
	}
}

// Ensure SyncService implements SyncServiceInterface
var _ SyncServiceInterface = (*SyncService)(nil)

// SyncProducts synchronizes product photos from Google Drive into the
// products table and returns stats: inserted = new rows created,
// skipped = already existed (by drive_file_id), total = photos seen.
func (s *SyncService) SyncProducts(ctx context.Context, folderID string) (inserted int, skipped int, total int, err error) {
	log.Printf("🔄 SyncProducts: starting sync for folder %s", folderID)

	photos, err := s.driveService.ListProductPhotos(folderID)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to list product photos from Drive: %w", err)
	}

	total = len(photos)
	log.Printf("📦 SyncProducts: processing %d photos from Google Drive", total)

	for _, photo := range photos {
		exists, err := s.repository.ExistsByDriveFileID(ctx, photo.DriveFileID)
		if err != nil {
			log.Printf("❌ SyncProducts: error checking existence for drive_file_id %s: %v", photo.DriveFileID, err)
			continue
		}

		if exists {
			skipped++
			continue
		}

		if _, err := s.repository.Insert(ctx, &photo); err != nil {
			log.Printf("❌ SyncProducts: error inserting product for drive_file_id %s: %v", photo.DriveFileID, err)
			continue
		}
		inserted++
	}

	log.Printf("🎉 SyncProducts: completed: %d inserted, %d skipped, %d total", inserted, skipped, total)
	return inserted, skipped, total, nil
}
