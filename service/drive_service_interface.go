package service

import "atelie-gestor/models"

// DriveServiceInterface defines the contract for Google Drive operations
type DriveServiceInterface interface {
	ListProductPhotos(folderID string) ([]models.ProductPhoto, error)
	DownloadImage(fileID string) ([]byte, error)
	UploadQuotePDF(folderID string, name string, data []byte) (string, error)
}
