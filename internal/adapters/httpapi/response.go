package httpapi

import (
	"encoding/json"
	"net/http"

	"sanakirja/internal/domain/entities"
)

// envelope is the shape of every non-list response, success or failure.
// A nil Result encodes as {}.
type envelope struct {
	Result any `json:"result,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func writeDictionary(w http.ResponseWriter, pairs []entities.WordPair) {
	if pairs == nil {
		pairs = []entities.WordPair{}
	}
	writeJSON(w, http.StatusOK, pairs)
}
