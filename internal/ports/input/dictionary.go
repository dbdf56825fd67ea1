package input

import (
	"context"

	"sanakirja/internal/domain/entities"
)

type DictionaryUseCase interface {
	List(ctx context.Context) ([]entities.WordPair, error)
	Find(ctx context.Context, word string) (string, error)
	Add(ctx context.Context, fin, eng string) ([]entities.WordPair, error)
}
