package utils

import "testing"

func TestParseProductPhotoName(t *testing.T) {
	tests := []struct {
		filename string
		wantSKU  string
		wantName string
		wantErr  bool
	}{
		{"TB0012-Topo de bolo unicornio.png", "TB0012", "Topo de bolo unicornio", false},
		{"cx01-Caixa personalizada.JPG", "CX01", "Caixa personalizada", false},
		{"LB3-Lembrancinha-batizado.jpeg", "LB3", "Lembrancinha-batizado", false},
		{"sem-hifen", "SEM", "hifen", false},
		{"semformato.png", "", "", true},
		{"-nome sem sku.png", "", "", true},
	}

	for _, tt := range tests {
		sku, name, err := ParseProductPhotoName(tt.filename)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseProductPhotoName(%q): expected error, got %q/%q", tt.filename, sku, name)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseProductPhotoName(%q): unexpected error: %v", tt.filename, err)
			continue
		}
		if sku != tt.wantSKU || name != tt.wantName {
			t.Errorf("ParseProductPhotoName(%q) = %q/%q, want %q/%q", tt.filename, sku, name, tt.wantSKU, tt.wantName)
		}
	}
}
