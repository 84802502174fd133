package domain

type ClientEventKind string

const (
	EventProductViewed   ClientEventKind = "product_viewed"
	EventAddedToCart     ClientEventKind = "added_to_cart"
	EventSearchPerformed ClientEventKind = "search_performed"
)

// ClientEvent is the analytics record emitted on catalog and cart
// interactions. Emission is best effort and never blocks the caller's
// result.
type ClientEvent struct {
	Kind        ClientEventKind
	SessionID   string
	ProductID   int
	ProductName string
	Brand       string
	Price       float64
	Query       string
	UnixTime    int64
}
