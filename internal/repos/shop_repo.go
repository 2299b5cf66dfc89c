package repos

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

type ShopRepo struct{ db *sqlx.DB }

func NewShopRepo(db *sqlx.DB) *ShopRepo { return &ShopRepo{db: db} }

// ShopRow carries the shop's own URL and revision columns, so callers never
// need to switch any shared "current shop" context to resolve them.
type ShopRow struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	Edition  string `db:"edition"`
	Version  string `db:"version"`
	Revision string `db:"revision"`
	URL      string `db:"url"`
	SSLURL   string `db:"ssl_url"`
}

// All lists every shop in the installation, never scope-restricted.
func (r *ShopRepo) All() ([]ShopRow, error) {
	var out []ShopRow
	err := r.db.Select(&out, `SELECT id, name, edition, version, revision, url, ssl_url FROM shops ORDER BY id`)
	return out, err
}

func (r *ShopRepo) Get(shopID string) (*ShopRow, error) {
	var s ShopRow
	err := r.db.Get(&s, `SELECT id, name, edition, version, revision, url, ssl_url FROM shops WHERE id = ?`, shopID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
