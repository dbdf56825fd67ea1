package domain

import "regexp"

// NoResults is what a lookup yields when no pair matches.
const NoResults = "No results"

var wordPattern = regexp.MustCompile(`^[a-zA-ZåäöÅÄÖ]{2,}$`)

// IsValidWord reports whether word is at least two letters long and made only
// of Latin letters plus å, ä and ö.
func IsValidWord(word string) bool {
	return wordPattern.MatchString(word)
}

// ValidatePair checks a (fin, eng) submission. Presence is checked before
// validity and the first failing rule wins.
func ValidatePair(fin, eng string) error {
	switch {
	case fin == "" && eng == "":
		return &ValidationError{Code: CodeBothRequired}
	case fin == "":
		return &ValidationError{Code: CodeFinRequired}
	case eng == "":
		return &ValidationError{Code: CodeEngRequired}
	case !IsValidWord(fin):
		return &ValidationError{Code: CodeFinInvalid}
	case !IsValidWord(eng):
		return &ValidationError{Code: CodeEngInvalid}
	}
	return nil
}
