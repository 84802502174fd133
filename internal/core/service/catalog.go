package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/solutionam/partstore/internal/core/domain"
	"github.com/solutionam/partstore/internal/core/port"
)

var _ port.ProductsReader = (*CatalogService)(nil)

// CatalogService serves the static catalog loaded once at startup.
// The product list is immutable for the process lifetime; facets are
// recomputed from the live list on every call so they always reflect
// the dataset in use.
type CatalogService struct {
	products []domain.Product
	events   port.ClientEventsProducer
}

func NewCatalogService(
	products []domain.Product, events port.ClientEventsProducer,
) CatalogService {
	return CatalogService{products, events}
}

func (s CatalogService) ListProducts(
	ctx context.Context, sessionID string, c domain.FilterCriteria,
) []domain.Product {
	if c.NameQuery != "" {
		s.emit(ctx, domain.ClientEvent{
			Kind:      domain.EventSearchPerformed,
			SessionID: sessionID,
			Query:     c.NameQuery,
		})
	}
	return Filter(s.products, c)
}

func (s CatalogService) GetProduct(
	ctx context.Context, sessionID string, id int,
) (domain.Product, error) {
	const op = "CatalogService.GetProduct"

	for _, p := range s.products {
		if p.ID == id {
			s.emit(ctx, domain.ClientEvent{
				Kind:        domain.EventProductViewed,
				SessionID:   sessionID,
				ProductID:   p.ID,
				ProductName: p.Name,
				Brand:       p.Brand,
				Price:       p.Price,
			})
			return p, nil
		}
	}
	return domain.Product{}, opErr(domain.ErrProductNotFound, op)
}

func (s CatalogService) Facets() domain.CatalogFacets {
	return domain.CatalogFacets{
		Countries: s.distinct(func(p domain.Product) string { return p.Country }),
		Types:     s.distinct(func(p domain.Product) string { return p.Type }),
		MaxPrice:  s.maxPrice(),
	}
}

func (s CatalogService) distinct(key func(domain.Product) string) []string {
	vs := []string{domain.FacetAll}
	seen := make(map[string]struct{}, len(s.products))
	for _, p := range s.products {
		k := key(p)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		vs = append(vs, k)
	}
	return vs
}

func (s CatalogService) maxPrice() (max float64) {
	for _, p := range s.products {
		if p.Price > max {
			max = p.Price
		}
	}
	return max
}

func (s CatalogService) emit(ctx context.Context, evt domain.ClientEvent) {
	const op = "CatalogService.emit"

	if s.events == nil {
		return
	}
	evt.UnixTime = time.Now().Unix()
	if err := s.events.ProduceEvent(ctx, evt); err != nil {
		slog.Warn("failed to produce client event", "op", op, "err", err)
	}
}

// Filter returns the subsequence of ps matching every criteria field,
// preserving the original order. It is a pure function and safe to call
// on every filter-control interaction.
//
// ComingSoon products always pass the price check: their price is not
// final. Inverted bounds are not an error, the price check simply
// matches nothing except ComingSoon items.
func Filter(ps []domain.Product, c domain.FilterCriteria) []domain.Product {
	query := strings.ToLower(c.NameQuery)

	matched := make([]domain.Product, 0, len(ps))
	for _, p := range ps {
		priceOK := p.ComingSoon ||
			(p.Price >= c.MinPrice && p.Price <= c.MaxPrice)
		countryOK := c.Country == domain.FacetAll || p.Country == c.Country
		typeOK := c.Type == domain.FacetAll || p.Type == c.Type
		nameOK := query == "" ||
			strings.Contains(strings.ToLower(p.Name), query)

		if priceOK && countryOK && typeOK && nameOK {
			matched = append(matched, p)
		}
	}
	return matched
}
