package domain

import "errors"

// Domain errors. The messages are returned verbatim to HTTP clients.
var (
	ErrDictionaryNotFound = errors.New("Dictionary file does not exists.")
	ErrWordPairExists     = errors.New("Word pair already exists in the dictionary.")
)

// Error codes used to look up user-facing messages.
const (
	CodeDictionaryNotFound = "dictionary_not_found"
	CodeWordPairExists     = "word_pair_exists"
	CodeInvalidInput       = "invalid_input"
	CodeBothRequired       = "both_required"
	CodeFinRequired        = "fin_required"
	CodeEngRequired        = "eng_required"
	CodeFinInvalid         = "fin_invalid"
	CodeEngInvalid         = "eng_invalid"
)

// StoreError reports a failure of the medium backing the dictionary.
// Error returns the underlying message unchanged.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// ValidationError is returned when input is rejected before reaching the store.
type ValidationError struct {
	Code string
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Code
}

// Code extracts the stable code of a domain error, or "" for anything else
// (including StoreError, whose message is surfaced as is).
func Code(err error) string {
	var verr *ValidationError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &verr):
		return verr.Code
	case errors.Is(err, ErrDictionaryNotFound):
		return CodeDictionaryNotFound
	case errors.Is(err, ErrWordPairExists):
		return CodeWordPairExists
	default:
		return ""
	}
}
