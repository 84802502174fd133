package service

import (
	"context"
	"log/slog"
	"unicode/utf8"

	"github.com/solutionam/partstore/internal/core/domain"
	"github.com/solutionam/partstore/internal/core/port"
)

var _ port.SolutionAssistant = (*AssistantService)(nil)
var _ port.Chatter = (*AssistantService)(nil)

const (
	minPromptLen   = 10
	minFeedbackLen = 5

	// SummaryFallback replaces a missing per-item summary so the overall
	// result stays usable when one summary is absent.
	SummaryFallback = "Summary not available."
)

// AssistantService orchestrates the remote generation calls. It is
// stateless between requests: every call is independent and no remote
// failure escapes as anything but a wrapped sentinel error.
type AssistantService struct {
	generator  port.SolutionGenerator
	summarizer port.SolutionSummarizer
	improver   port.SolutionImprover
	responder  port.ChatResponder
}

func NewAssistantService(
	generator port.SolutionGenerator,
	summarizer port.SolutionSummarizer,
	improver port.SolutionImprover,
	responder port.ChatResponder,
) AssistantService {
	return AssistantService{generator, summarizer, improver, responder}
}

// Generate produces candidate solutions paired with one-sentence
// summaries. Prompts shorter than 10 characters are rejected before any
// remote call is made.
func (s AssistantService) Generate(
	ctx context.Context, prompt string,
) ([]domain.Solution, error) {
	const op = "AssistantService.Generate"
	log := slog.With("op", op)

	if utf8.RuneCountInString(prompt) < minPromptLen {
		return nil, domain.ErrPromptTooShort
	}

	solutions, err := s.generator.GenerateSolutions(ctx, prompt)
	if err != nil {
		log.Error("generation call failed", "err", err)
		return nil, opErr(domain.ErrUpstream, op)
	}
	if len(solutions) == 0 {
		return nil, opErr(domain.ErrNoSolutions, op)
	}

	summaries, err := s.summarizer.SummarizeSolutions(ctx, solutions)
	if err != nil {
		log.Error("summarization call failed", "err", err)
		return nil, opErr(domain.ErrUpstream, op)
	}

	combined := make([]domain.Solution, len(solutions))
	for i, sol := range solutions {
		summary := SummaryFallback
		if i < len(summaries) && summaries[i] != "" {
			summary = summaries[i]
		}
		combined[i] = domain.Solution{Original: sol, Summary: summary}
	}
	return combined, nil
}

// Improve rewrites a previously generated solution using the visitor's
// feedback. Feedback shorter than 5 characters is rejected before any
// remote call is made.
func (s AssistantService) Improve(
	ctx context.Context, prompt, solution, feedback string,
) (string, error) {
	const op = "AssistantService.Improve"
	log := slog.With("op", op)

	if utf8.RuneCountInString(feedback) < minFeedbackLen {
		return "", domain.ErrFeedbackTooShort
	}

	improved, err := s.improver.ImproveSolution(ctx, prompt, solution, feedback)
	if err != nil {
		log.Error("improve call failed", "err", err)
		return "", opErr(domain.ErrUpstream, op)
	}
	return improved, nil
}

func (s AssistantService) Chat(
	ctx context.Context, message string,
) (string, error) {
	const op = "AssistantService.Chat"
	log := slog.With("op", op)

	if message == "" {
		return "", domain.ErrEmptyMessage
	}

	answer, err := s.responder.Respond(ctx, message)
	if err != nil {
		log.Error("chat call failed", "err", err)
		return "", opErr(domain.ErrUpstream, op)
	}
	return answer, nil
}

func (s AssistantService) Topics() []domain.ChatTopicCategory {
	return s.responder.Topics()
}
