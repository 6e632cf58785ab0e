package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var photoExtRegex = regexp.MustCompile(`(?i)\.(png|jpg|jpeg)$`)

// ParseProductPhotoName parses a product photo filename following the pattern:
// SKU-PRODUCT NAME.EXT
// Example: TB0012-Topo de bolo unicornio.png
// The SKU is everything before the first hyphen, uppercased; the product
// name is the remainder with surrounding whitespace trimmed.
func ParseProductPhotoName(filename string) (sku string, name string, err error) {
	nameWithoutExt := photoExtRegex.ReplaceAllString(filename, "")

	parts := strings.SplitN(nameWithoutExt, "-", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid photo filename: expected SKU-NAME, got %q", filename)
	}

	sku = strings.ToUpper(strings.TrimSpace(parts[0]))
	name = strings.TrimSpace(parts[1])
	if sku == "" || name == "" {
		return "", "", fmt.Errorf("invalid photo filename: empty sku or name in %q", filename)
	}

	return sku, name, nil
}
