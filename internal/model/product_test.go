package model

import "testing"

func TestProduct_CategoryList(t *testing.T) {
	tests := []struct {
		name       string
		categories []Category
		want       string
	}{
		{
			name: "empty set",
			want: "",
		},
		{
			name:       "single category",
			categories: []Category{{Description: "Lacteos"}},
			want:       "Lacteos",
		},
		{
			name: "sorted regardless of link order",
			categories: []Category{
				{Description: "Lacteos"},
				{Description: "Bebidas"},
			},
			want: "Bebidas - Lacteos",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{Categories: tt.categories}
			if got := p.CategoryList(); got != tt.want {
				t.Errorf("CategoryList() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProduct_LineLabel(t *testing.T) {
	p := Product{Line: LineStore}
	if got := p.LineLabel(); got != "Rio Store" {
		t.Errorf("LineLabel() = %q, want %q", got, "Rio Store")
	}

	p.Line = "XX"
	if got := p.LineLabel(); got != "XX" {
		t.Errorf("unknown line should fall back to the code, got %q", got)
	}
}
