package repos

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

// SettingsRepo reads and writes per-shop configuration values scoped by a
// module id.
type SettingsRepo struct{ db *sqlx.DB }

func NewSettingsRepo(db *sqlx.DB) *SettingsRepo { return &SettingsRepo{db: db} }

// Get returns the stored value, or "" when the setting is absent.
func (r *SettingsRepo) Get(module, name, shopID string) (string, error) {
	var v string
	err := r.db.Get(&v, `SELECT value FROM settings WHERE module = ? AND name = ? AND shop_id = ?`, module, name, shopID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return v, nil
}

func (r *SettingsRepo) Put(module, name, shopID, value string) error {
	_, err := r.db.Exec(`
		INSERT INTO settings(module, name, shop_id, value)
		VALUES(?, ?, ?, ?)
		ON CONFLICT(module, name, shop_id) DO UPDATE SET value = excluded.value
	`, module, name, shopID, value)
	return err
}
