// Package localize turns raw records from the remote store API into
// display-ready ones: prices converted from USD to whole COP, categories and
// a curated set of product texts translated to Spanish.
//
// The transforms only accept RawProduct and only produce types.Product, so an
// already-localized record can never be fed through a second time.
package localize

import (
	"github.com/JeanCaicedo/FakeStore/pkg/types"
	"github.com/shopspring/decimal"
)

// RawProduct is the remote catalog record exactly as it comes off the wire:
// USD float price, English category and texts.
type RawProduct struct {
	ID          int          `json:"id"`
	Title       string       `json:"title"`
	Price       float64      `json:"price"`
	Description string       `json:"description"`
	Category    string       `json:"category"`
	Image       string       `json:"image"`
	Rating      types.Rating `json:"rating"`
}

// 1 USD = 4000 COP, fixed for the demo.
var exchangeRate = decimal.NewFromInt(4000)

// ConvertPrice multiplies a USD price by the fixed exchange rate and rounds
// to the nearest whole peso.
func ConvertPrice(usd float64) int64 {
	return decimal.NewFromFloat(usd).Mul(exchangeRate).Round(0).IntPart()
}

// TranslateCategory maps the four known remote categories to their Spanish
// labels. Unknown categories pass through unchanged; that is a fallback, not
// an error.
func TranslateCategory(category string) string {
	if translated, ok := categoryTranslations[category]; ok {
		return translated
	}
	return category
}

// OverrideProductText substitutes the curated Spanish title and description
// for the fixed set of known product ids, passing anything else through.
func OverrideProductText(id int, title, description string) (string, string) {
	if override, ok := productTranslations[id]; ok {
		return override.title, override.description
	}
	return title, description
}

// TransformProduct composes the three transforms. Field order does not
// matter; price, category, and texts are independent.
func TransformProduct(raw RawProduct) types.Product {
	title, description := OverrideProductText(raw.ID, raw.Title, raw.Description)
	return types.Product{
		ID:          raw.ID,
		Title:       title,
		Price:       ConvertPrice(raw.Price),
		Description: description,
		Category:    TranslateCategory(raw.Category),
		Image:       raw.Image,
		Rating:      raw.Rating,
	}
}

// TransformProducts maps a remote listing in order.
func TransformProducts(raws []RawProduct) []types.Product {
	out := make([]types.Product, 0, len(raws))
	for _, raw := range raws {
		out = append(out, TransformProduct(raw))
	}
	return out
}
