package images

import (
	"context"
	"fmt"

	"github.com/yumejin/matrixify-export/internal/catalog"
	"golang.org/x/sync/errgroup"
)

// DefaultPoolWidth is the number of products resolved concurrently.
const DefaultPoolWidth = 16

// MaxSubImages is the highest sub-image index probed per product.
const MaxSubImages = 10

// ImageRow is one found image for a product. Position is 1-based and
// shared across the main image and sub-images.
type ImageRow struct {
	Position int
	URL      string
}

// Missing records an image slot for which no candidate URL exists.
// Kind is "main" or "subNN".
type Missing struct {
	ProductID string
	ImageHead string
	Kind      string
	Tried     []string
}

// Result is the image resolution outcome for one product.
type Result struct {
	ProductID string
	// MainURL is the first existing main-image candidate, or "".
	MainURL string
	Images  []ImageRow
	Missing []Missing
}

// Resolver finds existing image URLs for products against a shared
// existence checker.
type Resolver struct {
	checker     *Checker
	mainBaseURL string
	subBaseURL  string
	width       int
}

// NewResolver creates a resolver. width bounds how many products are
// probed concurrently; zero means DefaultPoolWidth.
func NewResolver(checker *Checker, mainBaseURL, subBaseURL string, width int) *Resolver {
	if width <= 0 {
		width = DefaultPoolWidth
	}
	return &Resolver{
		checker:     checker,
		mainBaseURL: mainBaseURL,
		subBaseURL:  subBaseURL,
		width:       width,
	}
}

// ResolveProduct probes a single product's candidates in priority
// order, first match wins per slot. Probes within a product are
// sequential so the priority order is meaningful; sub-image slots are
// independent of each other.
func (r *Resolver) ResolveProduct(ctx context.Context, p catalog.Product) Result {
	result := Result{ProductID: p.ID}
	if p.ImageHead == "" {
		return result
	}

	position := 0

	if url, tried := r.firstExisting(ctx, MainCandidates(r.mainBaseURL, p.ImageHead)); url != "" {
		position++
		result.MainURL = url
		result.Images = append(result.Images, ImageRow{Position: position, URL: url})
	} else {
		result.Missing = append(result.Missing, Missing{
			ProductID: p.ID,
			ImageHead: p.ImageHead,
			Kind:      "main",
			Tried:     tried,
		})
	}

	for i := 1; i <= MaxSubImages; i++ {
		if url, tried := r.firstExisting(ctx, SubCandidates(r.subBaseURL, p.ImageHead, i)); url != "" {
			position++
			result.Images = append(result.Images, ImageRow{Position: position, URL: url})
		} else {
			result.Missing = append(result.Missing, Missing{
				ProductID: p.ID,
				ImageHead: p.ImageHead,
				Kind:      fmt.Sprintf("sub%02d", i),
				Tried:     tried,
			})
		}
	}

	return result
}

// ResolveAll resolves every product through a bounded worker pool.
// Results are indexed by product position, so output order matches
// input order no matter which tasks finish first.
func (r *Resolver) ResolveAll(ctx context.Context, products []catalog.Product) []Result {
	results := make([]Result, len(products))

	g := new(errgroup.Group)
	g.SetLimit(r.width)
	for i, p := range products {
		i, p := i, p
		g.Go(func() error {
			results[i] = r.ResolveProduct(ctx, p)
			return nil
		})
	}
	// Tasks never return errors; a failed probe is a negative result.
	_ = g.Wait()

	return results
}

func (r *Resolver) firstExisting(ctx context.Context, candidates []string) (string, []string) {
	for _, url := range candidates {
		if r.checker.Exists(ctx, url) {
			return url, candidates
		}
	}
	return "", candidates
}
