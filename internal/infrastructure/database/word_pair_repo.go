package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"sanakirja/internal/domain"
	"sanakirja/internal/domain/entities"
	"sanakirja/internal/ports/output"
)

const (
	listWordPairsSQL = `SELECT id, fin, eng, created_at FROM word_pairs ORDER BY id`

	insertWordPairSQL = `INSERT INTO word_pairs (fin, eng) VALUES ($1, $2)
ON CONFLICT ON CONSTRAINT word_pairs_fin_eng_key DO NOTHING`
)

// Querier is the subset of *pgxpool.Pool the repository needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

var _ output.DictionaryRepository = (*WordPairRepository)(nil)

// WordPairRepository implements output.DictionaryRepository using pgx.
// Insertion order is the id order. An empty table is an empty dictionary.
type WordPairRepository struct {
	q Querier
}

// NewWordPairRepository creates a WordPairRepository.
func NewWordPairRepository(q Querier) *WordPairRepository {
	return &WordPairRepository{q: q}
}

func (r *WordPairRepository) List(ctx context.Context) ([]entities.WordPair, error) {
	rows, err := r.q.Query(ctx, listWordPairsSQL)
	if err != nil {
		return nil, &domain.StoreError{Op: "list word pairs", Err: err}
	}
	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[wordPairRow])
	if err != nil {
		return nil, &domain.StoreError{Op: "scan word pairs", Err: err}
	}
	out := make([]entities.WordPair, len(records))
	for i := range records {
		out[i] = wordPairToDomain(records[i])
	}
	return out, nil
}

// Append relies on the (fin, eng) unique constraint: a conflicting insert
// affects no rows and is reported as a duplicate.
func (r *WordPairRepository) Append(ctx context.Context, pair entities.WordPair) error {
	tag, err := r.q.Exec(ctx, insertWordPairSQL, pair.Fin, textOrNull(pair.Eng))
	if err != nil {
		return &domain.StoreError{Op: "insert word pair", Err: err}
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrWordPairExists
	}
	return nil
}
