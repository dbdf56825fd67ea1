package output

import (
	"context"

	"sanakirja/internal/domain/entities"
)

// DictionaryRepository persists the ordered list of word pairs.
//
// List fails with domain.ErrDictionaryNotFound when nothing has been stored
// yet. Append fails with domain.ErrWordPairExists when the exact pair is
// already present. Medium failures are reported as *domain.StoreError.
type DictionaryRepository interface {
	List(ctx context.Context) ([]entities.WordPair, error)
	Append(ctx context.Context, pair entities.WordPair) error
}
