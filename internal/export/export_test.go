package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/zillion-dines/menu-generator/internal/menu"
)

func sampleItems() []menu.Item {
	return []menu.Item{
		{
			Name:         "Paneer Tikka",
			Prices:       []float64{120, 200},
			PriceLabels:  []string{"Half", "Full"},
			Description:  "Grilled paneer",
			DietaryLabel: menu.DietaryVeg,
		},
		{
			Name:         "Chicken 65",
			Prices:       []float64{180},
			PriceLabels:  []string{"Regular"},
			DietaryLabel: menu.DietarySpicy,
		},
		{
			Name:         "Thali",
			Prices:       []float64{150, 250, 350},
			PriceLabels:  []string{"Mini", "Regular", "Deluxe"},
			DietaryLabel: menu.DietaryUnknown,
		},
	}
}

// serialize → parse → serialize must be value-identical
func TestJSON_RoundTripIdempotent(t *testing.T) {
	first, err := JSON(sampleItems())
	if err != nil {
		t.Fatal(err)
	}

	var decoded []menu.Item
	if err := json.Unmarshal(first, &decoded); err != nil {
		t.Fatal(err)
	}

	second, err := JSON(decoded)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(first, second) {
		t.Fatal("JSON export must be idempotent under parse/re-serialize")
	}
	if !reflect.DeepEqual(decoded, sampleItems()) {
		t.Fatal("decoded items must match the originals")
	}
}

func TestJSON_EmptySet(t *testing.T) {
	data, err := JSON(nil)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Fatalf("expected empty array, got %s", data)
	}
}

// every price/label pair must survive the CSV flattening
func TestCSV_RoundTripsPriceLabelPairs(t *testing.T) {
	items := sampleItems()

	data, err := CSV(items)
	if err != nil {
		t.Fatal(err)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatal(err)
	}

	if len(records) != len(items)+1 {
		t.Fatalf("expected header + %d rows, got %d records", len(items), len(records))
	}

	header := records[0]
	labelCol := make(map[string]int)
	for i, col := range header {
		if strings.HasPrefix(col, "Price (") {
			label := strings.TrimSuffix(strings.TrimPrefix(col, "Price ("), ")")
			labelCol[label] = i
		}
	}

	for rowIdx, it := range items {
		row := records[rowIdx+1]

		if row[0] != it.Name {
			t.Errorf("row %d: expected name %q, got %q", rowIdx, it.Name, row[0])
		}

		for i, label := range it.PriceLabels {
			col, ok := labelCol[label]
			if !ok {
				t.Fatalf("label %q missing from CSV header", label)
			}
			got, err := strconv.ParseFloat(row[col], 64)
			if err != nil {
				t.Fatalf("row %d label %q: unparsable price %q", rowIdx, label, row[col])
			}
			if got != it.Prices[i] {
				t.Errorf("row %d label %q: expected %v, got %v", rowIdx, label, it.Prices[i], got)
			}
		}
	}
}

func TestCSV_Deterministic(t *testing.T) {
	first, err := CSV(sampleItems())
	if err != nil {
		t.Fatal(err)
	}
	second, err := CSV(sampleItems())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Fatal("CSV export must be deterministic for identical input")
	}
}

func TestCSV_SharedLabelsShareColumns(t *testing.T) {
	items := []menu.Item{
		{Name: "A", Prices: []float64{10, 20}, PriceLabels: []string{"Half", "Full"}},
		{Name: "B", Prices: []float64{30, 40}, PriceLabels: []string{"Half", "Full"}},
	}

	data, err := CSV(items)
	if err != nil {
		t.Fatal(err)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatal(err)
	}

	// Name, Description, Dietary Label, Flagged + 2 price columns
	if len(records[0]) != 6 {
		t.Fatalf("expected shared labels to collapse into 2 price columns, header was %v", records[0])
	}
}
