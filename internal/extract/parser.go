package extract

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/zillion-dines/menu-generator/internal/menu"
)

// itemRecord is the exact shape the model is instructed to emit.
type itemRecord struct {
	Name         string    `json:"name"`
	Prices       []float64 `json:"prices"`
	PriceLabels  []string  `json:"price_labels"`
	Description  string    `json:"description"`
	DietaryLabel string    `json:"dietary_label"`
}

// ParseItems decodes the model's raw text into typed menu items.
// The outermost JSON array is trimmed out first because models
// occasionally wrap it in prose or markdown fences despite the
// prompt. Rows violating the price/label invariant are kept and
// flagged, never dropped.
func ParseItems(raw string) ([]menu.Item, error) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start == -1 || end == -1 || end < start {
		return nil, errors.New("response contains no JSON array")
	}

	var records []itemRecord
	if err := json.Unmarshal([]byte(raw[start:end+1]), &records); err != nil {
		return nil, errors.New("invalid JSON in model response")
	}

	items := make([]menu.Item, 0, len(records))

	for _, rec := range records {
		item := menu.Item{
			Name:         strings.TrimSpace(rec.Name),
			Prices:       rec.Prices,
			PriceLabels:  rec.PriceLabels,
			Description:  strings.TrimSpace(rec.Description),
			DietaryLabel: menu.ParseDietaryLabel(strings.TrimSpace(rec.DietaryLabel)),
		}
		item.Revalidate()
		items = append(items, item)
	}

	return items, nil
}
