package localize

import (
	"testing"

	"github.com/JeanCaicedo/FakeStore/pkg/types"
)

func TestConvertPrice(t *testing.T) {
	tests := []struct {
		usd  float64
		want int64
	}{
		{0, 0},
		{1, 4000},
		{109.95, 439800},
		{0.0001, 0},
		{0.000125, 1},
		{22.3, 89200},
	}
	for _, tt := range tests {
		if got := ConvertPrice(tt.usd); got != tt.want {
			t.Fatalf("ConvertPrice(%v) = %d, want %d", tt.usd, got, tt.want)
		}
	}
}

func TestTranslateCategoryKnown(t *testing.T) {
	tests := map[string]string{
		"men's clothing":   "Ropa de Hombre",
		"jewelery":         "Joyería",
		"electronics":      "Electrónica",
		"women's clothing": "Ropa de Mujer",
	}
	for in, want := range tests {
		if got := TranslateCategory(in); got != want {
			t.Fatalf("TranslateCategory(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTranslateCategoryUnknownPassesThrough(t *testing.T) {
	if got := TranslateCategory("groceries"); got != "groceries" {
		t.Fatalf("unknown category should pass through, got %q", got)
	}
	if got := TranslateCategory(""); got != "" {
		t.Fatalf("empty category should pass through, got %q", got)
	}
}

func TestOverrideProductText(t *testing.T) {
	title, desc := OverrideProductText(1, "Fjallraven Backpack", "Your perfect pack")
	if title != "Mochila Fjallraven" {
		t.Fatalf("expected curated title, got %q", title)
	}
	if desc == "Your perfect pack" {
		t.Fatal("expected curated description for known id")
	}

	title, desc = OverrideProductText(21, "Something New", "untranslated")
	if title != "Something New" || desc != "untranslated" {
		t.Fatalf("unknown id must pass through, got %q/%q", title, desc)
	}
}

func TestTransformProduct(t *testing.T) {
	raw := RawProduct{
		ID:          9,
		Title:       "WD 2TB Elements Portable External Hard Drive",
		Price:       64,
		Description: "USB 3.0 and USB 2.0 Compatibility",
		Category:    "electronics",
		Image:       "https://fakestoreapi.com/img/61IBBVJvSDL._AC_SY879_.jpg",
		Rating:      types.Rating{Rate: 3.3, Count: 203},
	}

	got := TransformProduct(raw)

	if got.Price != 256000 {
		t.Fatalf("expected 256000 COP, got %d", got.Price)
	}
	if got.Category != "Electrónica" {
		t.Fatalf("expected translated category, got %q", got.Category)
	}
	if got.Title != "Disco Duro WD 2TB" {
		t.Fatalf("expected curated title, got %q", got.Title)
	}
	if got.Image != raw.Image || got.Rating != raw.Rating || got.ID != raw.ID {
		t.Fatal("untranslated fields must carry over unchanged")
	}
}

func TestTransformProductsKeepsOrder(t *testing.T) {
	raws := []RawProduct{{ID: 3, Price: 1}, {ID: 1, Price: 2}}
	got := TransformProducts(raws)
	if len(got) != 2 || got[0].ID != 3 || got[1].ID != 1 {
		t.Fatalf("listing order must be preserved, got %+v", got)
	}
}
