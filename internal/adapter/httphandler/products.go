package httphandler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/solutionam/partstore/internal/core/domain"
	"github.com/solutionam/partstore/internal/core/port"
)

// GET v1/products?min_price=&max_price=&country=&type=&q= (200 OK)
// GET v1/products/facets (200 OK)
// GET v1/products/{id} (200 OK, 404 Not found)

type ProductsHandler struct {
	pReader port.ProductsReader
}

func RegisterProducts(mux *http.ServeMux, pReader port.ProductsReader) {
	h := ProductsHandler{pReader}
	mux.HandleFunc("GET /v1/products", h.ListProducts)
	mux.HandleFunc("GET /v1/products/facets", h.GetFacets)
	mux.HandleFunc("GET /v1/products/{id}", h.GetProduct)
}

func (h ProductsHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	c := h.toCriteria(r)
	ps := h.pReader.ListProducts(r.Context(), sessionID(r), c)
	writeJSON(w, http.StatusOK, toProducts(ps))
}

func (h ProductsHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.GetProduct"
	log := slog.With("op", op)

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	p, err := h.pReader.GetProduct(r.Context(), sessionID(r), id)
	if err != nil {
		http.Error(w, "product not found", http.StatusNotFound)
		log.Warn("unknown product requested", "id", id)
		return
	}
	writeJSON(w, http.StatusOK, toProduct(p))
}

func (h ProductsHandler) GetFacets(w http.ResponseWriter, r *http.Request) {
	facets := h.pReader.Facets()
	writeJSON(w, http.StatusOK, Facets{
		Countries: facets.Countries,
		Types:     facets.Types,
		MaxPrice:  facets.MaxPrice,
	})
}

// toCriteria normalizes query params: absent bounds default to the full
// catalog range, absent facets to the "all" wildcard.
func (h ProductsHandler) toCriteria(r *http.Request) domain.FilterCriteria {
	q := r.URL.Query()

	c := domain.FilterCriteria{
		MinPrice:  0,
		MaxPrice:  h.pReader.Facets().MaxPrice,
		Country:   domain.FacetAll,
		Type:      domain.FacetAll,
		NameQuery: q.Get("q"),
	}

	if v, err := strconv.ParseFloat(q.Get("min_price"), 64); err == nil {
		c.MinPrice = v
	}
	if v, err := strconv.ParseFloat(q.Get("max_price"), 64); err == nil {
		c.MaxPrice = v
	}
	if v := q.Get("country"); v != "" {
		c.Country = v
	}
	if v := q.Get("type"); v != "" {
		c.Type = v
	}
	return c
}
