package entities

// WordPair is one Finnish word and its English translation.
// Eng is empty for malformed stored lines and is then left out of JSON.
type WordPair struct {
	Fin string `json:"fin"`
	Eng string `json:"eng,omitempty"`
}

// String renders the pair the way the frontend lists it.
func (p WordPair) String() string {
	return p.Fin + " = " + p.Eng
}
