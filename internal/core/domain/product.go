package domain

// FacetAll is the wildcard sentinel prepended to the country and
// product-type facet lists. A criteria field holding this value
// matches every product.
const FacetAll = "all"

type Product struct {
	ID          int
	Name        string
	Price       float64
	Country     string
	Type        string
	Brand       string
	Description string
	ImageID     string
	ComingSoon  bool
}

// FilterCriteria is rebuilt on every filter interaction and never stored.
// Price bounds are inclusive.
type FilterCriteria struct {
	MinPrice  float64
	MaxPrice  float64
	Country   string
	Type      string
	NameQuery string
}

type CatalogFacets struct {
	Countries []string
	Types     []string
	MaxPrice  float64
}
