package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sanakirja/internal/domain"
	"sanakirja/internal/ports/input"
	"sanakirja/internal/ports/output"
)

const (
	codeMalformedBody = "malformed_body"
	codeBodyTooLarge  = "body_too_large"

	// maxBodyBytes caps POST /add bodies at 100kb.
	maxBodyBytes = 100 << 10
)

// Handlers translates HTTP requests into dictionary use cases.
// Every message is rendered in the configured locale; request headers do not
// change the wire strings.
type Handlers struct {
	dictionary input.DictionaryUseCase
	translator output.T
	locale     string
	logger     *slog.Logger
}

// NewHandlers creates a new Handlers instance. An empty locale means English.
func NewHandlers(dictionary input.DictionaryUseCase, translator output.T, locale string, logger *slog.Logger) *Handlers {
	if locale == "" {
		locale = DefaultLocale
	}
	return &Handlers{
		dictionary: dictionary,
		translator: translator,
		locale:     locale,
		logger:     logger,
	}
}

// List responds with the whole dictionary.
func (h *Handlers) List(w http.ResponseWriter, r *http.Request) {
	pairs, err := h.dictionary.List(r.Context())
	if err != nil {
		h.storeError(w, r, err)
		return
	}
	writeDictionary(w, pairs)
}

// Find looks up the English translation of a Finnish word.
func (h *Handlers) Find(w http.ResponseWriter, r *http.Request) {
	word := chi.URLParam(r, "word")
	if !domain.IsValidWord(word) {
		h.validationError(w, domain.CodeInvalidInput)
		return
	}

	result, err := h.dictionary.Find(r.Context(), word)
	if err != nil {
		h.storeError(w, r, err)
		return
	}
	switch result {
	case domain.NoResults:
		result = h.translator.T(h.locale, "result.no_results", nil)
	case "":
		// A stored line without an English word has no result at all.
		writeJSON(w, http.StatusOK, envelope{})
		return
	}
	writeJSON(w, http.StatusOK, envelope{Result: result})
}

// AddFromPath stores the pair given as /{fin}/{eng}.
func (h *Handlers) AddFromPath(w http.ResponseWriter, r *http.Request) {
	fin, eng := chi.URLParam(r, "fin"), chi.URLParam(r, "eng")
	if !domain.IsValidWord(fin) || !domain.IsValidWord(eng) {
		h.validationError(w, domain.CodeInvalidInput)
		return
	}
	h.add(w, r, fin, eng)
}

// AddFromBody stores the pair sent as a JSON or form-encoded body.
func (h *Handlers) AddFromBody(w http.ResponseWriter, r *http.Request) {
	fin, eng, err := readPair(w, r)
	if err != nil {
		h.logger.Debug("unreadable add request", "error", err)
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.message(w, http.StatusRequestEntityTooLarge, "error."+codeBodyTooLarge)
			return
		}
		h.validationError(w, codeMalformedBody)
		return
	}
	if err := domain.ValidatePair(fin, eng); err != nil {
		h.validationError(w, domain.Code(err))
		return
	}
	h.add(w, r, fin, eng)
}

func (h *Handlers) NotFound(w http.ResponseWriter, _ *http.Request) {
	h.message(w, http.StatusNotFound, "error.route_not_found")
}

func (h *Handlers) MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	h.message(w, http.StatusMethodNotAllowed, "error.method_not_allowed")
}

func (h *Handlers) add(w http.ResponseWriter, r *http.Request, fin, eng string) {
	pairs, err := h.dictionary.Add(r.Context(), fin, eng)
	if err != nil {
		h.storeError(w, r, err)
		return
	}
	h.logger.Info("word pair added", "fin", fin, "eng", eng)
	writeDictionary(w, pairs)
}

func (h *Handlers) message(w http.ResponseWriter, status int, key string) {
	writeJSON(w, status, envelope{Result: h.translator.T(h.locale, key, nil)})
}

func (h *Handlers) validationError(w http.ResponseWriter, code string) {
	h.message(w, http.StatusBadRequest, "error."+code)
}

// storeError answers 500 with the domain message, or the raw error text for
// anything the domain does not know about.
func (h *Handlers) storeError(w http.ResponseWriter, r *http.Request, err error) {
	msg := err.Error()
	if code := domain.Code(err); code != "" {
		msg = h.translator.T(h.locale, "error."+code, nil)
	} else {
		h.logger.Error("dictionary store failure", "path", r.URL.Path, "error", err)
	}
	writeJSON(w, http.StatusInternalServerError, envelope{Result: msg})
}

// readPair extracts fin and eng from a JSON or form-encoded body of at most
// maxBodyBytes. Missing, null, false, zero and empty values all read as "".
func readPair(w http.ResponseWriter, r *http.Request) (fin, eng string, err error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return "", "", fmt.Errorf("parse form: %w", err)
		}
		return r.PostForm.Get("fin"), r.PostForm.Get("eng"), nil
	case "application/json":
		var body struct {
			Fin any `json:"fin"`
			Eng any `json:"eng"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
			return "", "", fmt.Errorf("decode json: %w", err)
		}
		return bodyString(body.Fin), bodyString(body.Eng), nil
	default:
		// Bodies of other types are not parsed.
		return "", "", nil
	}
}

func bodyString(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if !v {
			return ""
		}
	case float64:
		if v == 0 {
			return ""
		}
	}
	return fmt.Sprint(v)
}
