package catalog

import (
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

// PathResolver resolves a category id to its slash-joined path of
// names from the root, memoizing every resolved path.
type PathResolver struct {
	categories map[string]Category
	paths      map[string]string
}

// NewPathResolver creates a resolver over the full category set.
func NewPathResolver(categories map[string]Category) *PathResolver {
	return &PathResolver{
		categories: categories,
		paths:      make(map[string]string, len(categories)),
	}
}

// ResolveAll pre-resolves every known category so later lookups are
// cache hits.
func (r *PathResolver) ResolveAll() {
	for id := range r.categories {
		r.Resolve(id)
	}
}

// Resolve returns the root-to-category path for id, e.g.
// "Tea/Green Tea/Sencha". An unknown id resolves to "" with a warning.
func (r *PathResolver) Resolve(id string) string {
	return r.resolve(id, nil)
}

func (r *PathResolver) resolve(id string, trail []string) string {
	if path, ok := r.paths[id]; ok {
		return path
	}
	trail = append(trail, id)

	category, ok := r.categories[id]
	if !ok {
		log.Warn().Str("categoryId", id).Msg("category id not found")
		r.paths[id] = ""
		return ""
	}

	var path string
	switch {
	case category.ParentID == "" || strings.EqualFold(category.ParentID, "root"):
		path = category.Name
	case slices.Contains(trail, category.ParentID):
		// Resolving the parent would loop forever. Falling back to the
		// category's own name keeps the run going with a usable path.
		log.Warn().
			Str("trail", strings.Join(trail, " -> ")).
			Msg("category cycle detected")
		path = category.Name
	default:
		parentPath := r.resolve(category.ParentID, trail)
		if parentPath == "" {
			path = category.Name
		} else {
			path = parentPath + "/" + category.Name
		}
	}

	r.paths[id] = path
	return path
}

// ProductCategoryPaths joins the resolved paths of a product's
// category slots with " | ", dropping empty slots and unresolvable
// ids, deduplicating while keeping first-seen order.
func (r *PathResolver) ProductCategoryPaths(p Product) string {
	var paths []string
	seen := make(map[string]bool)
	for _, id := range p.CategoryIDs {
		if id == "" {
			continue
		}
		path := r.Resolve(id)
		if path == "" || seen[path] {
			continue
		}
		seen[path] = true
		paths = append(paths, path)
	}
	return strings.Join(paths, " | ")
}
