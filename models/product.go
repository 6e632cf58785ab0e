package models

// Product represents a catalog product a quote line item can reference.
// Photos live in a Google Drive folder and are synced into the table by
// the product sync service; DriveFileID and ImageURL come from that sync.
type Product struct {
	ID          string `json:"id"`
	SKU         string `json:"sku"`
	Name        string `json:"name"`
	DriveFileID string `json:"driveFileId,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

// ProductPhoto represents one photo found in the Drive folder before it is
// matched to a product record
type ProductPhoto struct {
	DriveFileID string `json:"driveFileId"`
	FileName    string `json:"fileName"`
	ImageURL    string `json:"imageUrl"`
	SKU         string `json:"sku"`
	Name        string `json:"name"`
}

// ProductSyncResponse represents the response of a Drive photo sync run
// Example: {"inserted": 3, "skipped": 12, "total": 15}
type ProductSyncResponse struct {
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"`
	Total    int `json:"total"`
}
