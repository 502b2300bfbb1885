package main

import (
	"net/url"
	"sort"
	"strings"

	"github.com/creasty/defaults"
	"github.com/gorilla/schema"
)

// Sort orders accepted by the catalog.
const (
	SortDefault   = "default"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortRating    = "rating"
)

// CatalogQuery is one filter/sort configuration for the catalog
// listing. Dimensions combine with AND semantics; within the platform
// dimension a product matches if it supports any selected platform.
type CatalogQuery struct {
	// Filter is the URL-style merchandising tag: "featured", "new"
	// (or "newRelease") or "discount". Empty means no tag filter.
	Filter    string     `schema:"filter"`
	Platforms []Platform `schema:"platform"`
	Category  Category   `schema:"category"`
	MinPrice  float64    `schema:"min_price"`
	MaxPrice  float64    `schema:"max_price" default:"200"`
	Search    string     `schema:"q"`
	Sort      string     `schema:"sort" default:"default"`
}

var queryDecoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}()

// decodeCatalogQuery parses URL query values into a CatalogQuery with
// the default price range [0,200] applied first.
func decodeCatalogQuery(values url.Values) (CatalogQuery, error) {
	var q CatalogQuery
	if err := defaults.Set(&q); err != nil {
		return q, err
	}
	if err := queryDecoder.Decode(&q, values); err != nil {
		return q, err
	}
	return q, nil
}

// matchesTag maps the URL filter parameter onto product tags.
func matchesTag(p *Product, filter string) bool {
	switch filter {
	case "featured":
		return p.HasTag(TagFeatured)
	case "new", "newRelease":
		return p.HasTag(TagNewRelease)
	case "discount":
		return p.HasTag(TagDiscount)
	default:
		return true
	}
}

// FilterProducts applies the query to the product list and returns the
// display order. Pure: the input slice is never mutated and the same
// inputs always produce the same output. Sorting is stable and runs
// after all filters.
func FilterProducts(products []Product, q CatalogQuery) []Product {
	result := make([]Product, 0, len(products))
	search := strings.ToLower(q.Search)

	for i := range products {
		p := &products[i]
		if !matchesTag(p, q.Filter) {
			continue
		}
		if len(q.Platforms) > 0 {
			any := false
			for _, pl := range q.Platforms {
				if p.HasPlatform(pl) {
					any = true
					break
				}
			}
			if !any {
				continue
			}
		}
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		if p.Price < q.MinPrice || p.Price > q.MaxPrice {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Title), search) &&
			!strings.Contains(strings.ToLower(p.TitleKa), search) &&
			!strings.Contains(strings.ToLower(p.TitleRu), search) {
			continue
		}
		result = append(result, *p)
	}

	switch q.Sort {
	case SortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price < result[j].Price })
	case SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price > result[j].Price })
	case SortRating:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Rating > result[j].Rating })
	}

	return result
}
