package catalog

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/yumejin/matrixify-export/internal/sjcsv"
)

// Category is one node of the vendor's category tree, linked to its
// parent by id. A parent of "root" or "" marks a top-level category.
type Category struct {
	ID       string
	ParentID string
	Name     string
}

// Product is a single-variant product from the vendor export.
type Product struct {
	ID           string
	Name         string
	BodyHTML     string
	DisplayPrice *decimal.Decimal
	SpecialPrice *decimal.Decimal
	// CategoryIDs holds the five category slots from the export.
	// Slots may be empty; order is preserved.
	CategoryIDs []string
	ImageHead   string
}

// descriptionColumns are concatenated, in this order, into BodyHTML.
var descriptionColumns = []string{
	"catchcopy",
	"outline",
	"desc_detail1",
	"desc_detail2",
	"desc_detail3",
	"desc_detail4",
}

// LoadCategories maps category rows by id. Rows without a category id
// are dropped.
func LoadCategories(rows []sjcsv.Record) map[string]Category {
	categories := make(map[string]Category, len(rows))
	for _, row := range rows {
		id := strings.TrimSpace(row["category_id"])
		if id == "" {
			continue
		}
		categories[id] = Category{
			ID:       id,
			ParentID: strings.TrimSpace(row["parent_category_id"]),
			Name:     strings.TrimSpace(row["name"]),
		}
	}
	return categories
}

// LoadProducts builds products from product rows, preserving input
// order. Rows without a product id are dropped.
func LoadProducts(rows []sjcsv.Record) []Product {
	products := make([]Product, 0, len(rows))
	for _, row := range rows {
		id := strings.TrimSpace(row["product_id"])
		if id == "" {
			continue
		}

		categoryIDs := make([]string, 0, 5)
		for i := 1; i <= 5; i++ {
			categoryIDs = append(categoryIDs, strings.TrimSpace(row[fmt.Sprintf("category_id%d", i)]))
		}

		products = append(products, Product{
			ID:           id,
			Name:         strings.TrimSpace(row["name"]),
			BodyHTML:     buildBodyHTML(row),
			DisplayPrice: optionalDecimal(row["display_price"]),
			SpecialPrice: optionalDecimal(row["display_special_price"]),
			CategoryIDs:  categoryIDs,
			ImageHead:    strings.TrimSpace(row["image_head"]),
		})
	}
	return products
}

// LoadStocks sums stock quantities per product id. The export can list
// a product once per warehouse.
func LoadStocks(rows []sjcsv.Record) map[string]int {
	stocks := make(map[string]int, len(rows))
	for _, row := range rows {
		id := strings.TrimSpace(row["product_id"])
		if id == "" {
			continue
		}
		stocks[id] += sjcsv.ParseInt(row["stock"])
	}
	return stocks
}

// buildBodyHTML joins the non-empty description columns, each wrapped
// in a paragraph tag.
func buildBodyHTML(row sjcsv.Record) string {
	var b strings.Builder
	for _, col := range descriptionColumns {
		value := strings.TrimSpace(row[col])
		if value == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(value)
		b.WriteString("</p>")
	}
	return b.String()
}

func optionalDecimal(value string) *decimal.Decimal {
	d, ok := sjcsv.ParseDecimal(value)
	if !ok {
		return nil
	}
	return &d
}
