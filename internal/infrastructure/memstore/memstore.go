// Package memstore is an in-memory dictionary used by tests and by the
// "memory" store setting. Like the file store it reports
// domain.ErrDictionaryNotFound until the first pair is stored.
package memstore

import (
	"context"
	"sync"

	"sanakirja/internal/domain"
	"sanakirja/internal/domain/entities"
	"sanakirja/internal/ports/output"
)

var _ output.DictionaryRepository = (*Repository)(nil)

// Repository implements output.DictionaryRepository over a slice.
type Repository struct {
	mu      sync.RWMutex
	pairs   []entities.WordPair
	created bool
}

// Option configures the repository.
type Option func(*Repository)

// WithPairs seeds the repository. Seeding with no pairs still counts as an
// existing, empty dictionary.
func WithPairs(pairs ...entities.WordPair) Option {
	return func(r *Repository) {
		r.pairs = append(r.pairs, pairs...)
		r.created = true
	}
}

// New creates an empty repository.
func New(opts ...Option) *Repository {
	r := &Repository{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Repository) List(ctx context.Context) ([]entities.WordPair, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.created {
		return nil, domain.ErrDictionaryNotFound
	}
	out := make([]entities.WordPair, len(r.pairs))
	copy(out, r.pairs)
	return out, nil
}

func (r *Repository) Append(ctx context.Context, pair entities.WordPair) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.pairs {
		if p == pair {
			return domain.ErrWordPairExists
		}
	}
	r.pairs = append(r.pairs, pair)
	r.created = true
	return nil
}
