package application

import (
	"context"
	"errors"
	"fmt"

	"sanakirja/internal/domain"
	"sanakirja/internal/domain/entities"
	"sanakirja/internal/ports/output"
)

type DictionaryService struct {
	repo output.DictionaryRepository
}

func NewDictionaryService(repo output.DictionaryRepository) *DictionaryService {
	return &DictionaryService{repo: repo}
}

func (s *DictionaryService) List(ctx context.Context) ([]entities.WordPair, error) {
	return s.repo.List(ctx)
}

// Find returns the English word of the last pair whose Finnish word equals
// word exactly, or domain.NoResults.
func (s *DictionaryService) Find(ctx context.Context, word string) (string, error) {
	pairs, err := s.repo.List(ctx)
	if err != nil {
		return "", err
	}
	result := domain.NoResults
	for _, p := range pairs {
		if p.Fin == word {
			result = p.Eng
		}
	}
	return result, nil
}

// Add stores the pair and returns the updated dictionary.
func (s *DictionaryService) Add(ctx context.Context, fin, eng string) ([]entities.WordPair, error) {
	if !domain.IsValidWord(fin) || !domain.IsValidWord(eng) {
		return nil, &domain.ValidationError{Code: domain.CodeInvalidInput}
	}
	if err := s.repo.Append(ctx, entities.WordPair{Fin: fin, Eng: eng}); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

// ImportReport counts what happened to each pair handed to Import.
type ImportReport struct {
	Added      int
	Duplicates int
	Invalid    int
}

// Import appends every valid pair, skipping invalid ones and pairs that are
// already stored. It stops at the first store failure.
func (s *DictionaryService) Import(ctx context.Context, pairs []entities.WordPair) (ImportReport, error) {
	var report ImportReport
	for _, p := range pairs {
		if !domain.IsValidWord(p.Fin) || !domain.IsValidWord(p.Eng) {
			report.Invalid++
			continue
		}
		err := s.repo.Append(ctx, p)
		switch {
		case err == nil:
			report.Added++
		case errors.Is(err, domain.ErrWordPairExists):
			report.Duplicates++
		default:
			return report, fmt.Errorf("import %q: %w", p.Fin, err)
		}
	}
	return report, nil
}
