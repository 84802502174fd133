package httphandler

import (
	"net/http"

	"github.com/solutionam/partstore/internal/core/port"
)

// GET v1/i18n/languages (200 OK)
// GET v1/i18n/{lang}/{key} (200 OK, 404 Not found)

type LocaleHandler struct {
	localizer port.Localizer
}

func RegisterLocale(mux *http.ServeMux, localizer port.Localizer) {
	h := LocaleHandler{localizer}
	mux.HandleFunc("GET /v1/i18n/languages", h.GetLanguages)
	mux.HandleFunc("GET /v1/i18n/{lang}/{key}", h.GetTranslation)
}

func (h LocaleHandler) GetTranslation(w http.ResponseWriter, r *http.Request) {
	lang := r.PathValue("lang")
	key := r.PathValue("key")

	value, ok := h.localizer.Lookup(lang, key)
	if !ok {
		http.Error(w, "translation not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, Translation{Lang: lang, Key: key, Value: value})
}

func (h LocaleHandler) GetLanguages(w http.ResponseWriter, r *http.Request) {
	langs := h.localizer.Languages()
	res := make([]Language, len(langs))
	for i, l := range langs {
		res[i] = Language{Code: l.Code, Name: l.Name, Flag: l.Flag}
	}
	writeJSON(w, http.StatusOK, res)
}
