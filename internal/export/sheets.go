package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yumejin/matrixify-export/internal/catalog"
	"github.com/yumejin/matrixify-export/internal/images"
)

// Vendor is the fixed Vendor column value for every product row.
const Vendor = "yumejin"

// WriteProducts writes the Matrixify Products sheet. results must be
// indexed like products.
func WriteProducts(w io.Writer, products []catalog.Product, paths *catalog.PathResolver, results []images.Result) error {
	cw := csv.NewWriter(w)
	header := []string{
		"Handle",
		"Title",
		"Body (HTML)",
		"Vendor",
		"Product Category",
		"Tags",
		"Published",
		"Image Src",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write products header: %w", err)
	}
	for i, p := range products {
		row := []string{
			p.ID,
			p.Name,
			p.BodyHTML,
			Vendor,
			paths.ProductCategoryPaths(p),
			"",
			"TRUE",
			results[i].MainURL,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write product row %s: %w", p.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteVariants writes the Matrixify Variants sheet. Every product is
// exported as a single default variant.
func WriteVariants(w io.Writer, products []catalog.Product, stocks map[string]int) error {
	cw := csv.NewWriter(w)
	header := []string{
		"Handle",
		"Option1 Name",
		"Option1 Value",
		"SKU",
		"Price",
		"Compare at Price",
		"Inventory Qty",
		"Requires Shipping",
		"Taxable",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write variants header: %w", err)
	}
	for _, p := range products {
		price, compareAt := catalog.SelectPrices(p)
		row := []string{
			p.ID,
			"Default",
			"Default",
			p.ID,
			price,
			compareAt,
			strconv.Itoa(stocks[p.ID]),
			"TRUE",
			"TRUE",
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write variant row %s: %w", p.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteImages writes one row per found image, main image included,
// with the product name as alt text.
func WriteImages(w io.Writer, products []catalog.Product, results []images.Result) error {
	cw := csv.NewWriter(w)
	header := []string{"Handle", "Image Src", "Image Position", "Image Alt Text"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write images header: %w", err)
	}
	for i, p := range products {
		for _, img := range results[i].Images {
			row := []string{p.ID, img.URL, strconv.Itoa(img.Position), p.Name}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("failed to write image row %s: %w", p.ID, err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteMissing writes the unresolved image slots. The sheet is written
// header-only when every slot resolved.
func WriteMissing(w io.Writer, results []images.Result) error {
	cw := csv.NewWriter(w)
	header := []string{"product_id", "image_head", "kind", "tried_urls"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write missing header: %w", err)
	}
	for _, result := range results {
		for _, m := range result.Missing {
			row := []string{m.ProductID, m.ImageHead, m.Kind, strings.Join(m.Tried, "|")}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("failed to write missing row %s: %w", m.ProductID, err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
