package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/solutionam/partstore/internal/core/domain"
	"github.com/solutionam/partstore/internal/core/port"
)

var _ port.CartManager = (*CartService)(nil)

// cart is the mutable line collection owned by one session.
// Lines keep insertion order and never hold quantity below 1.
type cart struct {
	lines []domain.CartLine
}

func (c *cart) find(productID int) int {
	for i, l := range c.lines {
		if l.Product.ID == productID {
			return i
		}
	}
	return -1
}

func (c *cart) add(p domain.Product, quantity int) {
	if i := c.find(p.ID); i >= 0 {
		c.lines[i].Quantity += quantity
		return
	}
	c.lines = append(c.lines, domain.CartLine{Product: p, Quantity: quantity})
}

func (c *cart) update(productID, quantity int) {
	i := c.find(productID)
	if i < 0 {
		return
	}
	if quantity <= 0 {
		c.remove(productID)
		return
	}
	c.lines[i].Quantity = quantity
}

func (c *cart) remove(productID int) {
	i := c.find(productID)
	if i < 0 {
		return
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
}

func (c *cart) snapshot() domain.CartSnapshot {
	snap := domain.CartSnapshot{
		Lines: make([]domain.CartLine, len(c.lines)),
	}
	copy(snap.Lines, c.lines)
	for _, l := range c.lines {
		snap.ItemCount += l.Quantity
		snap.TotalPrice += float64(l.Quantity) * l.Product.Price
	}
	return snap
}

// CartService keeps one cart per browsing session. Carts are created
// lazily on first use and live for the process lifetime. Observers are
// notified after every applied mutation; notification failures cannot
// corrupt cart state because observers only see copies.
type CartService struct {
	mu        sync.Mutex
	carts     map[string]*cart
	catalog   port.ProductsReader
	observers []port.CartObserver
}

func NewCartService(catalog port.ProductsReader) *CartService {
	return &CartService{
		carts:   make(map[string]*cart),
		catalog: catalog,
	}
}

// Subscribe registers an observer. Not safe to call after the service
// started handling requests.
func (s *CartService) Subscribe(o port.CartObserver) {
	s.observers = append(s.observers, o)
}

func (s *CartService) AddItem(
	ctx context.Context, sessionID string, productID, quantity int,
) (domain.CartSnapshot, error) {
	const op = "CartService.AddItem"

	p, err := s.catalog.GetProduct(ctx, sessionID, productID)
	if err != nil {
		return domain.CartSnapshot{}, opErr(domain.ErrProductNotFound, op)
	}
	if p.ComingSoon {
		return domain.CartSnapshot{}, opErr(domain.ErrComingSoon, op)
	}
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	c := s.cart(sessionID)
	c.add(p, quantity)
	snap := c.snapshot()
	s.mu.Unlock()

	s.notify(sessionID, domain.CartChange{
		Op:       domain.CartOpAdd,
		Product:  p,
		Quantity: quantity,
	}, snap)
	return snap, nil
}

func (s *CartService) UpdateItem(
	ctx context.Context, sessionID string, productID, quantity int,
) (domain.CartSnapshot, error) {
	s.mu.Lock()
	c := s.cart(sessionID)
	i := c.find(productID)
	var p domain.Product
	if i >= 0 {
		p = c.lines[i].Product
	}
	c.update(productID, quantity)
	snap := c.snapshot()
	s.mu.Unlock()

	if i >= 0 {
		op := domain.CartOpUpdate
		if quantity <= 0 {
			op = domain.CartOpRemove
		}
		s.notify(sessionID, domain.CartChange{
			Op:       op,
			Product:  p,
			Quantity: quantity,
		}, snap)
	}
	return snap, nil
}

func (s *CartService) RemoveItem(
	ctx context.Context, sessionID string, productID int,
) (domain.CartSnapshot, error) {
	s.mu.Lock()
	c := s.cart(sessionID)
	i := c.find(productID)
	var p domain.Product
	if i >= 0 {
		p = c.lines[i].Product
	}
	c.remove(productID)
	snap := c.snapshot()
	s.mu.Unlock()

	// Removing an absent line is a no-op, not an error, and observers
	// are not notified because nothing changed.
	if i >= 0 {
		s.notify(sessionID, domain.CartChange{
			Op:      domain.CartOpRemove,
			Product: p,
		}, snap)
	}
	return snap, nil
}

func (s *CartService) ClearCart(
	ctx context.Context, sessionID string,
) domain.CartSnapshot {
	s.mu.Lock()
	c := s.cart(sessionID)
	c.lines = nil
	snap := c.snapshot()
	s.mu.Unlock()

	s.notify(sessionID, domain.CartChange{Op: domain.CartOpClear}, snap)
	return snap
}

func (s *CartService) Snapshot(sessionID string) domain.CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(sessionID).snapshot()
}

func (s *CartService) cart(sessionID string) *cart {
	c, ok := s.carts[sessionID]
	if !ok {
		c = &cart{}
		s.carts[sessionID] = c
	}
	return c
}

func (s *CartService) notify(
	sessionID string, change domain.CartChange, snap domain.CartSnapshot,
) {
	for _, o := range s.observers {
		o.CartChanged(sessionID, change, snap)
	}
}

var _ port.CartObserver = (*CartEventsObserver)(nil)

// CartEventsObserver forwards add mutations to the client-events
// producer. It is wired only when a broker is configured.
type CartEventsObserver struct {
	events port.ClientEventsProducer
}

func NewCartEventsObserver(events port.ClientEventsProducer) CartEventsObserver {
	return CartEventsObserver{events}
}

func (o CartEventsObserver) CartChanged(
	sessionID string, change domain.CartChange, _ domain.CartSnapshot,
) {
	const op = "CartEventsObserver.CartChanged"

	if change.Op != domain.CartOpAdd {
		return
	}

	evt := domain.ClientEvent{
		Kind:        domain.EventAddedToCart,
		SessionID:   sessionID,
		ProductID:   change.Product.ID,
		ProductName: change.Product.Name,
		Brand:       change.Product.Brand,
		Price:       change.Product.Price,
		UnixTime:    time.Now().Unix(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := o.events.ProduceEvent(ctx, evt); err != nil {
		slog.Warn("failed to produce cart event", "op", op, "err", err)
	}
}
