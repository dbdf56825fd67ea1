// Package filestore keeps the dictionary in a plain text file, one
// "<fin> <eng>" pair per line.
package filestore

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"strings"
	"sync"

	"sanakirja/internal/domain"
	"sanakirja/internal/domain/entities"
	"sanakirja/internal/ports/output"
)

// DefaultPath is where the dictionary lives unless configured otherwise.
const DefaultPath = "./sanakirja.txt"

var _ output.DictionaryRepository = (*Repository)(nil)

// Repository implements output.DictionaryRepository on top of a text file.
// The file is read on every call. Appends hold the write lock for the whole
// read, check and write sequence so writers in the same process are serialised.
type Repository struct {
	path string
	mu   sync.RWMutex
}

// New creates a Repository for the file at path. The file is not touched
// until the first call.
func New(path string) *Repository {
	return &Repository{path: path}
}

func (r *Repository) List(ctx context.Context) ([]entities.WordPair, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.read()
}

// Append creates the file with "fin eng\n" when it does not exist yet and
// otherwise appends "\nfin eng". The newline placement matches files written
// by earlier deployments.
func (r *Repository) Append(ctx context.Context, pair entities.WordPair) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	line := pair.Fin + " " + pair.Eng
	if _, err := os.Stat(r.path); errors.Is(err, fs.ErrNotExist) {
		if err := os.WriteFile(r.path, []byte(line+"\n"), 0o644); err != nil {
			return &domain.StoreError{Op: "create dictionary", Err: err}
		}
		return nil
	}

	pairs, err := r.read()
	if err != nil {
		return err
	}
	for _, p := range pairs {
		if p.Fin == pair.Fin && p.Eng == pair.Eng {
			return domain.ErrWordPairExists
		}
	}

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return &domain.StoreError{Op: "open dictionary", Err: err}
	}
	if _, err := f.WriteString("\n" + line); err != nil {
		_ = f.Close()
		return &domain.StoreError{Op: "write dictionary", Err: err}
	}
	if err := f.Close(); err != nil {
		return &domain.StoreError{Op: "close dictionary", Err: err}
	}
	return nil
}

func (r *Repository) read() ([]entities.WordPair, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrDictionaryNotFound
		}
		return nil, &domain.StoreError{Op: "read dictionary", Err: err}
	}
	return Parse(string(data)), nil
}

// Parse turns file content into word pairs. Lines are separated by "\n" or
// "\r\n". Each line is split on single spaces: the first token is the Finnish
// word, the second the English one. Blank and one-token lines are kept as
// pairs with an empty Eng, and tokens after the second are ignored.
func Parse(data string) []entities.WordPair {
	lines := strings.Split(data, "\n")
	pairs := make([]entities.WordPair, 0, len(lines))
	for i, line := range lines {
		if i < len(lines)-1 {
			line = strings.TrimSuffix(line, "\r")
		}
		words := strings.Split(line, " ")
		pair := entities.WordPair{Fin: words[0]}
		if len(words) > 1 {
			pair.Eng = words[1]
		}
		pairs = append(pairs, pair)
	}
	return pairs
}
