package service_test

import (
	"testing"

	"github.com/solutionam/partstore/internal/core/domain"
	"github.com/solutionam/partstore/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Brake Pads", Price: 50, Country: "Germany", Type: "Brakes"},
		{ID: 2, Name: "LED Lamp H7", Price: 25, Country: "China", Type: "Lighting"},
		{ID: 3, Name: "Oil Filter", Price: 12, Country: "Germany", Type: "Filters"},
		{ID: 4, Name: "Xenon Kit", Price: 900, Country: "China", Type: "Lighting", ComingSoon: true},
	}
}

func allCriteria(maxPrice float64) domain.FilterCriteria {
	return domain.FilterCriteria{
		MinPrice: 0,
		MaxPrice: maxPrice,
		Country:  domain.FacetAll,
		Type:     domain.FacetAll,
	}
}

func TestFilter(t *testing.T) {

	t.Run("FullRangeReturnsCatalogInOrder", func(t *testing.T) {
		ps := testCatalog()
		got := service.Filter(ps, allCriteria(1000))
		require.Len(t, got, len(ps))
		for i := range ps {
			assert.Equal(t, ps[i].ID, got[i].ID)
		}
	})

	t.Run("NameQueryMatchesCaseInsensitive", func(t *testing.T) {
		ps := []domain.Product{{
			ID: 1, Name: "Brake Pads", Price: 50,
			Country: "Germany", Type: "Brakes",
		}}
		c := allCriteria(100)
		c.NameQuery = "brake"
		got := service.Filter(ps, c)
		require.Len(t, got, 1)
		assert.Equal(t, 1, got[0].ID)
	})

	t.Run("NameQueryWithoutMatch", func(t *testing.T) {
		ps := []domain.Product{{
			ID: 1, Name: "Brake Pads", Price: 50,
			Country: "Germany", Type: "Brakes",
		}}
		c := allCriteria(100)
		c.NameQuery = "oil"
		got := service.Filter(ps, c)
		assert.Empty(t, got)
	})

	t.Run("ComingSoonExemptFromPriceBounds", func(t *testing.T) {
		c := allCriteria(100) // xenon kit costs 900
		got := service.Filter(testCatalog(), c)
		ids := make([]int, 0, len(got))
		for _, p := range got {
			ids = append(ids, p.ID)
		}
		assert.Contains(t, ids, 4)
	})

	t.Run("CountryAndTypeExactMatch", func(t *testing.T) {
		c := allCriteria(1000)
		c.Country = "Germany"
		c.Type = "Filters"
		got := service.Filter(testCatalog(), c)
		require.Len(t, got, 1)
		assert.Equal(t, "Oil Filter", got[0].Name)
	})

	t.Run("InvertedBoundsMatchOnlyComingSoon", func(t *testing.T) {
		c := allCriteria(1000)
		c.MinPrice = 500
		c.MaxPrice = 100
		got := service.Filter(testCatalog(), c)
		require.Len(t, got, 1)
		assert.True(t, got[0].ComingSoon)
	})

	t.Run("EmptyCatalog", func(t *testing.T) {
		got := service.Filter(nil, allCriteria(100))
		assert.Empty(t, got)
	})
}

func TestCatalogServiceFacets(t *testing.T) {

	t.Run("DistinctValuesWithAllSentinel", func(t *testing.T) {
		s := service.NewCatalogService(testCatalog(), nil)
		facets := s.Facets()

		assert.Equal(t, []string{"all", "Germany", "China"}, facets.Countries)
		assert.Equal(t,
			[]string{"all", "Brakes", "Lighting", "Filters"}, facets.Types)
		assert.InDelta(t, 900, facets.MaxPrice, 0)
	})

	t.Run("EmptyCatalogKeepsSentinel", func(t *testing.T) {
		s := service.NewCatalogService(nil, nil)
		facets := s.Facets()

		assert.Equal(t, []string{"all"}, facets.Countries)
		assert.Equal(t, []string{"all"}, facets.Types)
		assert.Zero(t, facets.MaxPrice)
	})
}

func TestCatalogServiceGetProduct(t *testing.T) {

	t.Run("Found", func(t *testing.T) {
		s := service.NewCatalogService(testCatalog(), nil)
		p, err := s.GetProduct(t.Context(), "sess-1", 2)
		require.NoError(t, err)
		assert.Equal(t, "LED Lamp H7", p.Name)
	})

	t.Run("NotFound", func(t *testing.T) {
		s := service.NewCatalogService(testCatalog(), nil)
		_, err := s.GetProduct(t.Context(), "sess-1", 42)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})
}
