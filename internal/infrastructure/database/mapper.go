package database

import (
	"github.com/jackc/pgx/v5/pgtype"

	"sanakirja/internal/domain/entities"
)

// wordPairRow mirrors a row of the word_pairs table.
type wordPairRow struct {
	ID        int64              `db:"id"`
	Fin       string             `db:"fin"`
	Eng       pgtype.Text        `db:"eng"`
	CreatedAt pgtype.Timestamptz `db:"created_at"`
}

// NULL eng is how a malformed imported line is stored.
func wordPairToDomain(r wordPairRow) entities.WordPair {
	p := entities.WordPair{Fin: r.Fin}
	if r.Eng.Valid {
		p.Eng = r.Eng.String
	}
	return p
}

func textOrNull(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}
