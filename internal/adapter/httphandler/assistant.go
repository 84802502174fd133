package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/solutionam/partstore/internal/core/domain"
	"github.com/solutionam/partstore/internal/core/port"
)

// POST v1/solutions JSON {"prompt" string} (200 OK, 400, 422)
// POST v1/solutions/improve JSON {"prompt", "solution", "feedback"} (200 OK, 400, 422)
// POST v1/chat JSON {"message" string} (200 OK, 400, 422)
// GET  v1/chat/topics (200 OK)
//
// Upstream failures do not surface as 5xx: the response stays 200 with a
// user-facing error string so the storefront renders it inline.

const (
	msgGenerateFailed = "Could not generate solutions. Please try a different prompt."
	msgUnexpected     = "An unexpected error occurred. Please try again."
	msgImproveFailed  = "Failed to improve solution. Please try again."
	msgChatFailed     = "I'm sorry, I encountered an error. Please try again."
)

type AssistantHandler struct {
	sAssistant port.SolutionAssistant
	chatter    port.Chatter
}

func RegisterAssistant(
	mux *http.ServeMux, sAssistant port.SolutionAssistant, chatter port.Chatter,
) {
	h := AssistantHandler{sAssistant, chatter}
	mux.HandleFunc("POST /v1/solutions", h.Generate)
	mux.HandleFunc("POST /v1/solutions/improve", h.Improve)
	mux.HandleFunc("POST /v1/chat", h.Chat)
	mux.HandleFunc("GET /v1/chat/topics", h.GetTopics)
}

func (h AssistantHandler) Generate(w http.ResponseWriter, r *http.Request) {
	const op = "AssistantHandler.Generate"
	log := slog.With("op", op)

	var body GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	solutions, err := h.sAssistant.Generate(r.Context(), body.Prompt)
	if err != nil {
		var vErr domain.ValidationError
		switch {
		case errors.As(err, &vErr):
			writeJSON(w, http.StatusUnprocessableEntity,
				GenerateResponse{Solutions: []Solution{}, Error: ptr(vErr.Error())})
		case errors.Is(err, domain.ErrNoSolutions):
			writeJSON(w, http.StatusOK,
				GenerateResponse{Solutions: []Solution{}, Error: ptr(msgGenerateFailed)})
		default:
			log.Error("failed to generate solutions", "err", err)
			writeJSON(w, http.StatusOK,
				GenerateResponse{Solutions: []Solution{}, Error: ptr(msgUnexpected)})
		}
		return
	}

	res := GenerateResponse{Solutions: make([]Solution, len(solutions))}
	for i, s := range solutions {
		res.Solutions[i] = Solution{Original: s.Original, Summary: s.Summary}
	}
	writeJSON(w, http.StatusOK, res)
}

func (h AssistantHandler) Improve(w http.ResponseWriter, r *http.Request) {
	const op = "AssistantHandler.Improve"
	log := slog.With("op", op)

	var body ImproveRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	improved, err := h.sAssistant.Improve(
		r.Context(), body.Prompt, body.Solution, body.Feedback,
	)
	if err != nil {
		var vErr domain.ValidationError
		if errors.As(err, &vErr) {
			writeJSON(w, http.StatusUnprocessableEntity,
				ImproveResponse{Error: ptr(vErr.Error())})
			return
		}
		log.Error("failed to improve solution", "err", err)
		writeJSON(w, http.StatusOK, ImproveResponse{Error: ptr(msgImproveFailed)})
		return
	}
	writeJSON(w, http.StatusOK, ImproveResponse{ImprovedSolution: &improved})
}

func (h AssistantHandler) Chat(w http.ResponseWriter, r *http.Request) {
	const op = "AssistantHandler.Chat"
	log := slog.With("op", op)

	var body ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	answer, err := h.chatter.Chat(r.Context(), body.Message)
	if err != nil {
		var vErr domain.ValidationError
		if errors.As(err, &vErr) {
			writeJSON(w, http.StatusUnprocessableEntity,
				ChatResponse{Error: ptr(vErr.Error())})
			return
		}
		log.Error("failed to chat", "err", err)
		writeJSON(w, http.StatusOK, ChatResponse{Error: ptr(msgChatFailed)})
		return
	}
	writeJSON(w, http.StatusOK, ChatResponse{Response: &answer})
}

func (h AssistantHandler) GetTopics(w http.ResponseWriter, r *http.Request) {
	cats := h.chatter.Topics()
	res := make([]ChatTopicCategory, len(cats))
	for i, c := range cats {
		topics := make([]ChatTopic, len(c.Topics))
		for j, t := range c.Topics {
			topics[j] = ChatTopic{Key: t.Key, Question: t.Question}
		}
		res[i] = ChatTopicCategory{Category: c.Category, Topics: topics}
	}
	writeJSON(w, http.StatusOK, res)
}

func ptr(s string) *string { return &s }
