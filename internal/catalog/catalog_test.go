package catalog

import (
	"testing"

	"github.com/rephone-next/internal/constants"
	"github.com/rephone-next/internal/models"
)

func testProducts() []models.Product {
	return []models.Product{
		{
			ID:          "1",
			Name:        "iPhone 13 Pro",
			Brand:       "Apple",
			PriceAmount: models.NewMoneyFromInt(699),
			Rating:      4.8,
			Condition:   constants.ConditionExcellent,
			Storage:     "128GB",
			Color:       "Graphite",
			Category:    "iPhone",
			Features:    models.StringArray{"5G connectivity", "Face ID"},
			InStock:     true,
		},
		{
			ID:          "2",
			Name:        "Galaxy S22 Ultra",
			Brand:       "Samsung",
			PriceAmount: models.NewMoneyFromInt(599),
			Rating:      4.7,
			Condition:   constants.ConditionVeryGood,
			Storage:     "256GB",
			Color:       "Phantom Black",
			Category:    "Samsung",
			Features:    models.StringArray{"5G connectivity", "Built-in S Pen"},
			InStock:     true,
		},
		{
			ID:          "3",
			Name:        "Pixel 7 Pro",
			Brand:       "Google",
			PriceAmount: models.NewMoneyFromInt(449),
			Rating:      4.6,
			Condition:   constants.ConditionExcellent,
			Storage:     "128GB",
			Color:       "Snow",
			Category:    "Google",
			Features:    models.StringArray{"5G connectivity"},
			InStock:     true,
		},
		{
			ID:          "4",
			Name:        "iPhone 12",
			Brand:       "Apple",
			PriceAmount: models.NewMoneyFromInt(379),
			Rating:      4.4,
			Condition:   constants.ConditionFair,
			Storage:     "64GB",
			Color:       "Blue",
			Category:    "iPhone",
			Features:    models.StringArray{"5G connectivity", "Face ID"},
			InStock:     false,
		},
	}
}

func ids(products []models.Product) []string {
	result := make([]string, len(products))
	for i, p := range products {
		result[i] = p.ID
	}
	return result
}

func assertIDs(t *testing.T, got []models.Product, want ...string) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("expected %v, got %v", want, gotIDs)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, gotIDs)
		}
	}
}

func TestFindByID(t *testing.T) {
	c := New(testProducts())
	product, err := c.FindByID("2")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if product.Name != "Galaxy S22 Ultra" {
		t.Fatalf("unexpected product: %s", product.Name)
	}
	if _, err := c.FindByID("missing"); err != ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestFilterZeroReturnsAll(t *testing.T) {
	c := New(testProducts())
	assertIDs(t, c.Filter(Filter{}), "1", "2", "3", "4")
}

func TestFilterBrandsCaseInsensitive(t *testing.T) {
	c := New(testProducts())
	assertIDs(t, c.Filter(Filter{Brands: []string{"apple"}}), "1", "4")
	assertIDs(t, c.Filter(Filter{Brands: []string{"apple", "GOOGLE"}}), "1", "3", "4")
}

func TestFilterConditionsKebabCase(t *testing.T) {
	c := New(testProducts())
	assertIDs(t, c.Filter(Filter{Conditions: []string{"very-good"}}), "2")
	assertIDs(t, c.Filter(Filter{Conditions: []string{"excellent", "fair"}}), "1", "3", "4")
}

func TestFilterColorsSubstring(t *testing.T) {
	c := New(testProducts())
	// "black" 命中 "Phantom Black"
	assertIDs(t, c.Filter(Filter{Colors: []string{"black"}}), "2")
}

func TestFilterFeaturesRequiresAll(t *testing.T) {
	c := New(testProducts())
	assertIDs(t, c.Filter(Filter{Features: []string{"5G connectivity", "Face ID"}}), "1", "4")
	assertIDs(t, c.Filter(Filter{Features: []string{"Built-in S Pen"}}), "2")
}

func TestFilterRatingsMinimumThreshold(t *testing.T) {
	c := New(testProducts())
	// 选中多档时取最低档作为门槛
	assertIDs(t, c.Filter(Filter{Ratings: []float64{4.7, 4.5}}), "1", "2", "3")
}

func TestFilterPriceRangeInclusive(t *testing.T) {
	c := New(testProducts())
	f := Filter{PriceRange: &PriceRange{
		Min: models.NewMoneyFromInt(449),
		Max: models.NewMoneyFromInt(599),
	}}
	assertIDs(t, c.Filter(f), "2", "3")
}

func TestFilterAvailability(t *testing.T) {
	c := New(testProducts())
	assertIDs(t, c.Filter(Filter{Availability: []string{constants.AvailabilityOutOfStock}}), "4")
	assertIDs(t, c.Filter(Filter{Availability: []string{constants.AvailabilityInStock}}), "1", "2", "3")
}

func TestFilterCombinesDimensions(t *testing.T) {
	c := New(testProducts())
	f := Filter{
		Brands:     []string{"Apple"},
		Conditions: []string{"excellent"},
	}
	assertIDs(t, c.Filter(f), "1")
}

func TestSortProducts(t *testing.T) {
	c := New(testProducts())
	assertIDs(t, SortProducts(c.List(), constants.SortPriceAsc), "4", "3", "2", "1")
	assertIDs(t, SortProducts(c.List(), constants.SortPriceDesc), "1", "2", "3", "4")
	assertIDs(t, SortProducts(c.List(), constants.SortRating), "1", "2", "3", "4")
	// featured 保持目录顺序
	assertIDs(t, SortProducts(c.List(), constants.SortFeatured), "1", "2", "3", "4")
	assertIDs(t, SortProducts(c.List(), "unknown"), "1", "2", "3", "4")
}

func TestRelatedSharesBrandOrCategory(t *testing.T) {
	c := New(testProducts())
	related, err := c.Related("1", 4)
	if err != nil {
		t.Fatalf("related: %v", err)
	}
	assertIDs(t, related, "4")

	if _, err := c.Related("missing", 4); err != ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestRelatedHonorsLimit(t *testing.T) {
	products := testProducts()
	products = append(products, models.Product{
		ID:          "5",
		Brand:       "Apple",
		Category:    "iPhone",
		PriceAmount: models.NewMoneyFromInt(299),
	})
	c := New(products)
	related, err := c.Related("1", 1)
	if err != nil {
		t.Fatalf("related: %v", err)
	}
	if len(related) != 1 {
		t.Fatalf("expected 1 related product, got %d", len(related))
	}
}

func TestFacets(t *testing.T) {
	c := New(testProducts())
	facets := c.Facets()

	if facets.InStock != 3 || facets.OutOfStock != 1 {
		t.Fatalf("unexpected stock counts: %d/%d", facets.InStock, facets.OutOfStock)
	}
	if len(facets.Brands) != 3 {
		t.Fatalf("expected 3 brands, got %d", len(facets.Brands))
	}
	// 按目录首次出现顺序
	if facets.Brands[0].Value != "Apple" || facets.Brands[0].Count != 2 {
		t.Fatalf("unexpected first brand facet: %+v", facets.Brands[0])
	}
	found := false
	for _, f := range facets.Features {
		if f.Value == "5G connectivity" && f.Count == 4 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected 5G connectivity feature facet with count 4, got %+v", facets.Features)
	}
}

func TestByBrand(t *testing.T) {
	c := New(testProducts())
	assertIDs(t, c.ByBrand("Samsung"), "2")
}
