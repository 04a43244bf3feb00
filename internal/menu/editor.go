package menu

import (
	"errors"
	"strconv"
	"strings"
)

// Edit is one cell-level change from the editing grid.
// PriceIndex is required for the price and price_label fields.
type Edit struct {
	Field      string `json:"field"`
	Value      string `json:"value"`
	PriceIndex *int   `json:"price_index,omitempty"`
}

var ErrUnknownField = errors.New("unknown editable field")

// ApplyEdit mutates the item in place. Type coercion is the ONLY
// validation: a price edit that does not parse as a number keeps
// the prior value silently, matching the grid behaviour.
func ApplyEdit(it *Item, e Edit) error {
	switch e.Field {

	case "name":
		it.Name = strings.TrimSpace(e.Value)

	case "description":
		it.Description = strings.TrimSpace(e.Value)

	case "dietary_label":
		it.DietaryLabel = ParseDietaryLabel(strings.TrimSpace(e.Value))

	case "price":
		if e.PriceIndex == nil || *e.PriceIndex < 0 || *e.PriceIndex >= len(it.Prices) {
			return errors.New("price_index out of range")
		}
		// silent keep-prior-value on coercion failure
		if v, err := strconv.ParseFloat(strings.TrimSpace(e.Value), 64); err == nil {
			it.Prices[*e.PriceIndex] = v
		}

	case "price_label":
		if e.PriceIndex == nil || *e.PriceIndex < 0 || *e.PriceIndex >= len(it.PriceLabels) {
			return errors.New("price_index out of range")
		}
		it.PriceLabels[*e.PriceIndex] = strings.TrimSpace(e.Value)

	default:
		return ErrUnknownField
	}

	it.Revalidate()
	return nil
}
