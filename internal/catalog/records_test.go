package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yumejin/matrixify-export/internal/sjcsv"
)

func TestLoadProducts(t *testing.T) {
	rows := []sjcsv.Record{
		{
			"product_id":            "P1",
			"name":                  " Sencha ",
			"catchcopy":             "Fresh",
			"outline":               "",
			"desc_detail1":          "Steamed",
			"display_price":         "1,000",
			"display_special_price": "",
			"category_id1":          "10",
			"category_id3":          "30",
			"image_head":            "ABC123",
		},
		{"product_id": "", "name": "no id"},
	}

	products := LoadProducts(rows)
	require.Len(t, products, 1)

	p := products[0]
	assert.Equal(t, "P1", p.ID)
	assert.Equal(t, "Sencha", p.Name)
	assert.Equal(t, "<p>Fresh</p><p>Steamed</p>", p.BodyHTML)
	require.NotNil(t, p.DisplayPrice)
	assert.Equal(t, "1000", p.DisplayPrice.String())
	assert.Nil(t, p.SpecialPrice)
	assert.Equal(t, []string{"10", "", "30", "", ""}, p.CategoryIDs)
	assert.Equal(t, "ABC123", p.ImageHead)
}

func TestLoadStocksSumsPerProduct(t *testing.T) {
	rows := []sjcsv.Record{
		{"product_id": "P1", "stock": "3"},
		{"product_id": "P2", "stock": "1"},
		{"product_id": "P1", "stock": "5"},
		{"product_id": "", "stock": "9"},
	}

	stocks := LoadStocks(rows)
	assert.Equal(t, map[string]int{"P1": 8, "P2": 1}, stocks)
}

func TestLoadCategories(t *testing.T) {
	rows := []sjcsv.Record{
		{"category_id": "10", "parent_category_id": "root", "name": "Tea"},
		{"category_id": "11", "parent_category_id": "10", "name": "Green Tea"},
		{"category_id": "", "name": "dropped"},
	}

	categories := LoadCategories(rows)
	require.Len(t, categories, 2)
	assert.Equal(t, Category{ID: "11", ParentID: "10", Name: "Green Tea"}, categories["11"])
}
