package main

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productIDs(products []Product) []string {
	ids := make([]string, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}

func baseQuery() CatalogQuery {
	return CatalogQuery{MaxPrice: 200, Sort: SortDefault}
}

func TestFilterNoFiltersKeepsInputOrder(t *testing.T) {
	got := FilterProducts(seedProducts, baseQuery())
	assert.Equal(t, productIDs(seedProducts), productIDs(got))
}

func TestFilterByTag(t *testing.T) {
	q := baseQuery()
	q.Filter = "featured"
	got := FilterProducts(seedProducts, q)
	assert.Equal(t, []string{"2", "5", "7", "9"}, productIDs(got))

	q.Filter = "discount"
	got = FilterProducts(seedProducts, q)
	assert.Equal(t, []string{"1", "4", "8", "10"}, productIDs(got))

	// "new" and "newRelease" are synonyms
	q.Filter = "new"
	newIDs := productIDs(FilterProducts(seedProducts, q))
	q.Filter = "newRelease"
	assert.Equal(t, newIDs, productIDs(FilterProducts(seedProducts, q)))
	assert.Equal(t, []string{"2", "3", "8"}, newIDs)
}

func TestFilterByPlatformAnyOf(t *testing.T) {
	q := baseQuery()
	q.Platforms = []Platform{PlatformPS4}
	got := FilterProducts(seedProducts, q)
	assert.Equal(t, []string{"2", "4", "6", "7", "8", "10"}, productIDs(got))

	// OR within the dimension
	q.Platforms = []Platform{PlatformPS4, PlatformPS5}
	got = FilterProducts(seedProducts, q)
	assert.Len(t, got, 10)
}

func TestFilterByCategoryPlatformAndPrice(t *testing.T) {
	q := baseQuery()
	q.Category = CategoryRPG
	q.Platforms = []Platform{PlatformPS5}

	got := FilterProducts(seedProducts, q)
	// the three RPGs available on PS5 within the default budget
	assert.Equal(t, []string{"1", "3", "6"}, productIDs(got))

	q.Sort = SortPriceDesc
	got = FilterProducts(seedProducts, q)
	assert.Equal(t, []string{"3", "1", "6"}, productIDs(got))
}

func TestFilterByPriceRangeInclusive(t *testing.T) {
	q := baseQuery()
	q.MinPrice = 59.99
	q.MaxPrice = 79.99
	got := FilterProducts(seedProducts, q)
	assert.Equal(t, []string{"7", "10"}, productIDs(got))
}

func TestFilterBySearchAcrossLanguages(t *testing.T) {
	q := baseQuery()
	q.Search = "nexus"
	assert.Equal(t, []string{"1"}, productIDs(FilterProducts(seedProducts, q)))

	// Russian title, case-insensitive
	q.Search = "нексус"
	assert.Equal(t, []string{"1"}, productIDs(FilterProducts(seedProducts, q)))

	// Georgian title
	q.Search = "ოდისეა"
	assert.Equal(t, []string{"3"}, productIDs(FilterProducts(seedProducts, q)))

	q.Search = "no such game"
	assert.Empty(t, FilterProducts(seedProducts, q))
}

func TestFilterDimensionsCombineWithAND(t *testing.T) {
	q := baseQuery()
	q.Filter = "discount"
	q.Platforms = []Platform{PlatformPS5}
	q.Category = CategorySports

	got := FilterProducts(seedProducts, q)
	assert.Equal(t, []string{"4", "8"}, productIDs(got))
}

func TestSortOrders(t *testing.T) {
	q := baseQuery()
	q.Category = CategoryRPG

	q.Sort = SortPriceAsc
	assert.Equal(t, []string{"6", "1", "3"}, productIDs(FilterProducts(seedProducts, q)))

	q.Sort = SortPriceDesc
	assert.Equal(t, []string{"3", "1", "6"}, productIDs(FilterProducts(seedProducts, q)))

	q.Sort = SortRating
	assert.Equal(t, []string{"6", "1", "3"}, productIDs(FilterProducts(seedProducts, q)))
}

func TestSortRatingIsStable(t *testing.T) {
	q := baseQuery()
	q.Sort = SortRating
	got := FilterProducts(seedProducts, q)
	// 2 and 6 share rating 4.9; input order breaks the tie
	require.GreaterOrEqual(t, len(got), 2)
	assert.Equal(t, "2", got[0].ID)
	assert.Equal(t, "6", got[1].ID)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	snapshot := productIDs(seedProducts)
	q := baseQuery()
	q.Sort = SortPriceAsc
	FilterProducts(seedProducts, q)
	assert.Equal(t, snapshot, productIDs(seedProducts))
}

func TestDecodeCatalogQuery(t *testing.T) {
	values := url.Values{
		"filter":   {"discount"},
		"platform": {"PS5", "Xbox"},
		"category": {"rpg"},
		"q":        {"nexus"},
		"sort":     {"price-desc"},
	}
	q, err := decodeCatalogQuery(values)
	require.NoError(t, err)

	assert.Equal(t, "discount", q.Filter)
	assert.Equal(t, []Platform{PlatformPS5, PlatformXbox}, q.Platforms)
	assert.Equal(t, CategoryRPG, q.Category)
	assert.Equal(t, "nexus", q.Search)
	assert.Equal(t, SortPriceDesc, q.Sort)
	// defaults
	assert.Zero(t, q.MinPrice)
	assert.InDelta(t, 200, q.MaxPrice, 1e-9)
}

func TestDecodeCatalogQueryDefaults(t *testing.T) {
	q, err := decodeCatalogQuery(url.Values{})
	require.NoError(t, err)
	assert.Zero(t, q.MinPrice)
	assert.InDelta(t, 200, q.MaxPrice, 1e-9)
	assert.Equal(t, SortDefault, q.Sort)
}

func TestDecodeCatalogQueryPriceRange(t *testing.T) {
	q, err := decodeCatalogQuery(url.Values{"min_price": {"50"}, "max_price": {"120"}})
	require.NoError(t, err)
	assert.InDelta(t, 50, q.MinPrice, 1e-9)
	assert.InDelta(t, 120, q.MaxPrice, 1e-9)
}
