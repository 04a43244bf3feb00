package menu

// DietaryLabel classifies a menu item for display and export
type DietaryLabel string

const (
	DietaryVeg     DietaryLabel = "veg"
	DietaryNonVeg  DietaryLabel = "non-veg"
	DietarySpicy   DietaryLabel = "spicy"
	DietaryUnknown DietaryLabel = "unknown"
)

// ParseDietaryLabel maps free-form model output onto the enum.
// Anything unrecognised becomes unknown, never an error.
func ParseDietaryLabel(s string) DietaryLabel {
	switch DietaryLabel(s) {
	case DietaryVeg, DietaryNonVeg, DietarySpicy:
		return DietaryLabel(s)
	default:
		return DietaryUnknown
	}
}

// Item is one structured row extracted from a menu image.
// Prices and PriceLabels are parallel slices; rows where the
// lengths disagree are kept but flagged for manual review.
type Item struct {
	Name         string       `json:"name"`
	Prices       []float64    `json:"prices"`
	PriceLabels  []string     `json:"price_labels"`
	Description  string       `json:"description,omitempty"`
	DietaryLabel DietaryLabel `json:"dietary_label"`
	Flagged      bool         `json:"flagged,omitempty"`
	FlagReason   string       `json:"flag_reason,omitempty"`
}

// Revalidate re-checks the price/label invariant after an edit
func (it *Item) Revalidate() {
	if len(it.Prices) != len(it.PriceLabels) {
		it.Flagged = true
		it.FlagReason = "price and label counts differ"
		return
	}
	it.Flagged = false
	it.FlagReason = ""
}
