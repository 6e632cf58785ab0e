package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"atelie-gestor/models"
	"atelie-gestor/utils"
)

// DriveService handles Google Drive API operations: product photos are
// read from a shared folder, and generated quote PDFs are uploaded to a
// backup folder.
type DriveService struct {
	client *drive.Service
}

// NewDriveService creates a new DriveService instance
// credentialsPath should be the path to the Service Account JSON file
func NewDriveService(credentialsPath string) (*DriveService, error) {
	ctx := context.Background()

	driveService, err := drive.NewService(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &DriveService{
		client: driveService,
	}, nil
}

// Ensure DriveService implements DriveServiceInterface
var _ DriveServiceInterface = (*DriveService)(nil)

// ListProductPhotos lists all image files in a Google Drive folder and
// parses their filenames into product photos. Files that don't follow the
// SKU-NAME pattern are skipped with a warning.
func (ds *DriveService) ListProductPhotos(folderID string) ([]models.ProductPhoto, error) {
	query := fmt.Sprintf("'%s' in parents and trashed=false", folderID)

	var allFiles []*drive.File
	pageToken := ""
	for {
		call := ds.client.Files.List().
			Q(query).
			Fields("nextPageToken, files(id, name, mimeType)")

		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		r, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list files: %w", err)
		}

		allFiles = append(allFiles, r.Files...)
		pageToken = r.NextPageToken

		if pageToken == "" {
			break
		}
	}

	imageMimeTypes := map[string]bool{
		"image/png":  true,
		"image/jpeg": true,
		"image/jpg":  true,
	}

	var photos []models.ProductPhoto
	for _, file := range allFiles {
		if !imageMimeTypes[strings.ToLower(file.MimeType)] {
			continue
		}

		sku, name, err := utils.ParseProductPhotoName(file.Name)
		if err != nil {
			log.Printf("warning: failed to parse photo filename %s: %v", file.Name, err)
			continue
		}

		photos = append(photos, models.ProductPhoto{
			DriveFileID: file.Id,
			FileName:    file.Name,
			ImageURL:    fmt.Sprintf("https://drive.google.com/uc?id=%s", file.Id),
			SKU:         sku,
			Name:        name,
		})
	}

	return photos, nil
}

// DownloadImage downloads the raw bytes of a Drive image file
func (ds *DriveService) DownloadImage(fileID string) ([]byte, error) {
	resp, err := ds.client.Files.Get(fileID).Download()
	if err != nil {
		return nil, fmt.Errorf("failed to download file %s: %w", fileID, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", fileID, err)
	}
	return data, nil
}

// UploadQuotePDF uploads a generated quote PDF to the backup folder and
// returns the created file's Drive id
func (ds *DriveService) UploadQuotePDF(folderID string, name string, data []byte) (string, error) {
	log.Printf("☁️  UploadQuotePDF: uploading %s (%d bytes) to folder %s", name, len(data), folderID)

	meta := &drive.File{
		Name:     name,
		MimeType: "application/pdf",
		Parents:  []string{folderID},
	}

	file, err := ds.client.Files.Create(meta).
		Media(bytes.NewReader(data)).
		Fields("id").
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to upload quote PDF: %w", err)
	}

	log.Printf("✅ UploadQuotePDF: uploaded %s as drive file %s", name, file.Id)
	return file.Id, nil
}
