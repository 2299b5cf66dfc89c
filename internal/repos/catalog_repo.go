package repos

import "github.com/jmoiron/sqlx"

// CatalogRepo reads the small configuration tables: payment and shipping
// methods, countries and states.
type CatalogRepo struct{ db *sqlx.DB }

func NewCatalogRepo(db *sqlx.DB) *CatalogRepo { return &CatalogRepo{db: db} }

type PaymentMethodRow struct {
	ID     string `db:"id"`
	Active int    `db:"active"`
	Title  string `db:"title"`
}

type ShippingMethodRow struct {
	ID     string `db:"id"`
	ShopID string `db:"shop_id"`
	Active int    `db:"active"`
	Title  string `db:"title"`
}

type CountryRow struct {
	ID     string `db:"id"`
	Active int    `db:"active"`
	Title  string `db:"title"`
	ISO2   string `db:"iso2"`
	ISO3   string `db:"iso3"`
}

type StateRow struct {
	ID        string `db:"id"`
	CountryID string `db:"country_id"`
	Title     string `db:"title"`
	ISO2      string `db:"iso2"`
}

func (r *CatalogRepo) PaymentMethods() ([]PaymentMethodRow, error) {
	var out []PaymentMethodRow
	err := r.db.Select(&out, `SELECT id, active, title FROM payment_methods`)
	return out, err
}

func (r *CatalogRepo) ShippingMethods() ([]ShippingMethodRow, error) {
	var out []ShippingMethodRow
	err := r.db.Select(&out, `SELECT id, shop_id, active, title FROM shipping_methods`)
	return out, err
}

func (r *CatalogRepo) Countries() ([]CountryRow, error) {
	var out []CountryRow
	err := r.db.Select(&out, `SELECT id, active, title, iso2, iso3 FROM countries`)
	return out, err
}

func (r *CatalogRepo) States() ([]StateRow, error) {
	var out []StateRow
	err := r.db.Select(&out, `SELECT id, country_id, title, iso2 FROM states`)
	return out, err
}
