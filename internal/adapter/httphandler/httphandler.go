package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/solutionam/partstore/internal/core/domain"
)

const sessionHeader = "X-Session-ID"

func sessionID(r *http.Request) string {
	return r.Header.Get(sessionHeader)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	const op = "writeJSON"

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response body", "op", op, "err", err)
	}
}

func toProduct(p domain.Product) Product {
	return Product{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Country:     p.Country,
		Type:        p.Type,
		Brand:       p.Brand,
		Description: p.Description,
		ImageID:     p.ImageID,
		ComingSoon:  p.ComingSoon,
	}
}

func toProducts(ps []domain.Product) []Product {
	vs := make([]Product, len(ps))
	for i, p := range ps {
		vs[i] = toProduct(p)
	}
	return vs
}

func toCart(snap domain.CartSnapshot) Cart {
	c := Cart{
		Lines:      make([]CartLine, len(snap.Lines)),
		ItemCount:  snap.ItemCount,
		TotalPrice: snap.TotalPrice,
	}
	for i, l := range snap.Lines {
		c.Lines[i] = CartLine{Product: toProduct(l.Product), Quantity: l.Quantity}
	}
	return c
}
