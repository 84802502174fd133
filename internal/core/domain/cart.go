package domain

// CartLine pairs a catalog product with a positive quantity.
// A line never holds quantity below 1: a decrement to zero removes it.
type CartLine struct {
	Product  Product
	Quantity int
}

// CartSnapshot is an immutable view of a cart after a mutation.
// Lines keep insertion order.
type CartSnapshot struct {
	Lines      []CartLine
	ItemCount  int
	TotalPrice float64
}

type CartOp string

const (
	CartOpAdd    CartOp = "add"
	CartOpUpdate CartOp = "update"
	CartOpRemove CartOp = "remove"
	CartOpClear  CartOp = "clear"
)

// CartChange describes a single applied cart mutation.
// Product is the zero value for CartOpClear.
type CartChange struct {
	Op       CartOp
	Product  Product
	Quantity int
}
