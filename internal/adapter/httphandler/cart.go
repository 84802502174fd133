package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/solutionam/partstore/internal/core/domain"
	"github.com/solutionam/partstore/internal/core/port"
)

// GET    v1/cart (200 OK)
// POST   v1/cart/items JSON {"product_id" int, "quantity" int} (200 OK, 400, 404, 409)
// PATCH  v1/cart/items/{id} JSON {"quantity" int} (200 OK, 400)
// DELETE v1/cart/items/{id} (204 No content, 400)
// DELETE v1/cart (200 OK)
//
// Every cart route requires the X-Session-ID header: a cart is owned by
// exactly one browsing session.

type CartHandler struct {
	cManager port.CartManager
}

func RegisterCart(mux *http.ServeMux, cManager port.CartManager) {
	h := CartHandler{cManager}
	mux.HandleFunc("GET /v1/cart", h.GetCart)
	mux.HandleFunc("POST /v1/cart/items", h.AddItem)
	mux.HandleFunc("PATCH /v1/cart/items/{id}", h.UpdateItem)
	mux.HandleFunc("DELETE /v1/cart/items/{id}", h.RemoveItem)
	mux.HandleFunc("DELETE /v1/cart", h.ClearCart)
}

func (h CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toCart(h.cManager.Snapshot(session)))
}

func (h CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.AddItem"
	log := slog.With("op", op)

	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var body AddCartItem
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	snap, err := h.cManager.AddItem(
		r.Context(), session, body.ProductID, body.Quantity,
	)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProductNotFound):
			http.Error(w, "product not found", http.StatusNotFound)
		case errors.Is(err, domain.ErrComingSoon):
			http.Error(w, "product is not yet available", http.StatusConflict)
		default:
			http.Error(w, "failed to add item", http.StatusInternalServerError)
			log.Error("failed to add item", "err", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, toCart(snap))
}

func (h CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.UpdateItem"
	log := slog.With("op", op)

	session, ok := h.session(w, r)
	if !ok {
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	var body UpdateCartItem
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	snap, err := h.cManager.UpdateItem(r.Context(), session, id, body.Quantity)
	if err != nil {
		http.Error(w, "failed to update item", http.StatusInternalServerError)
		log.Error("failed to update item", "err", err)
		return
	}
	writeJSON(w, http.StatusOK, toCart(snap))
}

func (h CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.RemoveItem"
	log := slog.With("op", op)

	session, ok := h.session(w, r)
	if !ok {
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	// Idempotent: removing an absent line succeeds the same way.
	_, err = h.cManager.RemoveItem(r.Context(), session, id)
	if err != nil {
		http.Error(w, "failed to remove item", http.StatusInternalServerError)
		log.Error("failed to remove item", "err", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK,
		toCart(h.cManager.ClearCart(r.Context(), session)))
}

func (h CartHandler) session(
	w http.ResponseWriter, r *http.Request,
) (string, bool) {
	s := sessionID(r)
	if s == "" {
		http.Error(w, "missing session header", http.StatusBadRequest)
		return "", false
	}
	return s, true
}
