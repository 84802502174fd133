package port

import (
	"context"

	"github.com/solutionam/partstore/internal/core/domain"
)

// Inbound ports, implemented by the core services and consumed by the
// HTTP adapter.

type ProductsReader interface {
	ListProducts(ctx context.Context, sessionID string, c domain.FilterCriteria) []domain.Product
	GetProduct(ctx context.Context, sessionID string, id int) (domain.Product, error)
	Facets() domain.CatalogFacets
}

type CartManager interface {
	AddItem(ctx context.Context, sessionID string, productID, quantity int) (domain.CartSnapshot, error)
	UpdateItem(ctx context.Context, sessionID string, productID, quantity int) (domain.CartSnapshot, error)
	RemoveItem(ctx context.Context, sessionID string, productID int) (domain.CartSnapshot, error)
	ClearCart(ctx context.Context, sessionID string) domain.CartSnapshot
	Snapshot(sessionID string) domain.CartSnapshot
}

type SolutionAssistant interface {
	Generate(ctx context.Context, prompt string) ([]domain.Solution, error)
	Improve(ctx context.Context, prompt, solution, feedback string) (string, error)
}

type Chatter interface {
	Chat(ctx context.Context, message string) (string, error)
	Topics() []domain.ChatTopicCategory
}

type Localizer interface {
	Lookup(lang, key string) (string, bool)
	Languages() []domain.Language
}

// Outbound ports, implemented by adapters.

type CatalogSource interface {
	Load(ctx context.Context) ([]domain.Product, error)
}

// CartObserver is notified after every applied cart mutation.
type CartObserver interface {
	CartChanged(sessionID string, change domain.CartChange, snap domain.CartSnapshot)
}

type SolutionGenerator interface {
	GenerateSolutions(ctx context.Context, prompt string) ([]string, error)
}

type SolutionSummarizer interface {
	SummarizeSolutions(ctx context.Context, solutions []string) ([]string, error)
}

type SolutionImprover interface {
	ImproveSolution(ctx context.Context, prompt, solution, feedback string) (string, error)
}

// ChatResponder is the pluggable chatbot backing. Callers never know
// whether the static table or the remote variant is wired.
type ChatResponder interface {
	Respond(ctx context.Context, message string) (string, error)
	Topics() []domain.ChatTopicCategory
}

type ClientEventsProducer interface {
	ProduceEvent(ctx context.Context, evt domain.ClientEvent) error
}
