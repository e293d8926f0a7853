package images

import (
	"fmt"
	"strings"
)

// sizeSuffixes is the probe priority order, largest rendition first.
var sizeSuffixes = []string{"_LL", "_L", "_M", "_S"}

// extensions is the probe priority order per suffixed head.
var extensions = []string{".jpg", ".png"}

// headVariant is an image head split into its stem and size suffix,
// so sub-image indices can be inserted between them.
type headVariant struct {
	stem   string
	suffix string
}

// headVariants expands an image head into suffixed variants. A head
// that already carries a recognized size suffix is taken as final and
// yields only itself; the vendor uses that form for products with a
// single rendition.
func headVariants(head string) []headVariant {
	for _, suffix := range sizeSuffixes {
		if strings.HasSuffix(head, suffix) {
			return []headVariant{{stem: strings.TrimSuffix(head, suffix), suffix: suffix}}
		}
	}
	variants := make([]headVariant, 0, len(sizeSuffixes))
	for _, suffix := range sizeSuffixes {
		variants = append(variants, headVariant{stem: head, suffix: suffix})
	}
	return variants
}

// MainCandidates returns the candidate URLs for a product's main
// image, in probe priority order.
func MainCandidates(baseURL, head string) []string {
	var urls []string
	for _, v := range headVariants(head) {
		for _, ext := range extensions {
			urls = append(urls, baseURL+v.stem+v.suffix+ext)
		}
	}
	return urls
}

// SubCandidates returns the candidate URLs for sub-image index 1..10.
// The index goes between the stem and the size suffix, e.g.
// "ABC123_sub01_LL.jpg".
func SubCandidates(baseURL, head string, index int) []string {
	var urls []string
	for _, v := range headVariants(head) {
		for _, ext := range extensions {
			urls = append(urls, fmt.Sprintf("%s%s_sub%02d%s%s", baseURL, v.stem, index, v.suffix, ext))
		}
	}
	return urls
}
