package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/zillion-dines/menu-generator/internal/menu"
)

const (
	JSONFilename = "menu_data.json"
	CSVFilename  = "menu_data.csv"
)

// JSON serializes the row set as an indented array of objects.
// Deterministic for identical input.
func JSON(items []menu.Item) ([]byte, error) {
	if items == nil {
		items = []menu.Item{}
	}
	return json.MarshalIndent(items, "", "  ")
}

// CSV flattens each row's price/label pairs into one column per
// distinct label, in first-seen order across the whole set, so
// items sharing labels ("Half", "Full") line up in one column.
func CSV(items []menu.Item) ([]byte, error) {
	labels := labelOrder(items)

	header := []string{"Name", "Description", "Dietary Label", "Flagged"}
	for _, label := range labels {
		header = append(header, fmt.Sprintf("Price (%s)", label))
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, it := range items {
		row := []string{
			it.Name,
			it.Description,
			string(it.DietaryLabel),
			strconv.FormatBool(it.Flagged),
		}

		priceFor := make(map[string]string, len(it.Prices))
		for i, label := range it.PriceLabels {
			if i < len(it.Prices) {
				priceFor[label] = strconv.FormatFloat(it.Prices[i], 'f', -1, 64)
			}
		}
		for _, label := range labels {
			row = append(row, priceFor[label])
		}

		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func labelOrder(items []menu.Item) []string {
	seen := make(map[string]bool)
	var labels []string

	for _, it := range items {
		for _, label := range it.PriceLabels {
			if !seen[label] {
				seen[label] = true
				labels = append(labels, label)
			}
		}
	}
	return labels
}
