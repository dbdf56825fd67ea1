package discord

import (
	"sanakirja/internal/ports/input"
	"sanakirja/internal/ports/output"
)

// Handler handles Discord interactions using use cases.
type Handler struct {
	dictionary input.DictionaryUseCase
	translator output.T
}

// NewHandler creates a Handler.
func NewHandler(dictionary input.DictionaryUseCase, translator output.T) *Handler {
	return &Handler{
		dictionary: dictionary,
		translator: translator,
	}
}
