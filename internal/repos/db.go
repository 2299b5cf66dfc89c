package repos

import (
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

// Module ids used for scoped settings. Old installs stored their values
// without the "module:" prefix, so readers fall back to LegacySettingsModule.
const (
	SettingsModule       = "module:shopconnect"
	LegacySettingsModule = "shopconnect"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// Every pool connection to a plain :memory: DSN is its own empty
	// database; pin the pool to one connection so they all see one schema.
	if strings.Contains(dsn, ":memory:") {
		db.SetMaxOpenConns(1)
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed baseline data if DB is empty (shops/methods/countries/states)
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}
	// Ensure an API key exists (idempotent; safe to run every start)
	if err := seedAPIKey(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Shops
CREATE TABLE IF NOT EXISTS shops(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  edition TEXT NOT NULL DEFAULT 'CE',
  version TEXT NOT NULL DEFAULT '',
  revision TEXT NOT NULL DEFAULT '',
  url TEXT NOT NULL DEFAULT '',
  ssl_url TEXT NOT NULL DEFAULT ''
);

-- Customers
CREATE TABLE IF NOT EXISTS customers(
  id TEXT PRIMARY KEY,
  shop_id TEXT NOT NULL,
  cust_no INTEGER NOT NULL DEFAULT 0,
  email TEXT NOT NULL DEFAULT '',
  fname TEXT NOT NULL DEFAULT '',
  lname TEXT NOT NULL DEFAULT '',
  password_hash TEXT NOT NULL DEFAULT '',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_customers_cust_no ON customers(cust_no);
CREATE INDEX IF NOT EXISTS idx_customers_shop    ON customers(shop_id);

-- Orders (flat header row, one column per exported field)
CREATE TABLE IF NOT EXISTS orders(
  id TEXT PRIMARY KEY,
  shop_id TEXT NOT NULL,
  user_id TEXT NOT NULL DEFAULT '',
  order_date TEXT NOT NULL DEFAULT '',
  cancelled INTEGER NOT NULL DEFAULT 0,
  trans_status TEXT NOT NULL DEFAULT '',
  order_no INTEGER NOT NULL DEFAULT 0,
  total_order_sum NUMERIC NOT NULL DEFAULT 0,
  total_net_sum NUMERIC NOT NULL DEFAULT 0,
  total_brut_sum NUMERIC NOT NULL DEFAULT 0,
  currency TEXT NOT NULL DEFAULT '',
  currency_rate NUMERIC NOT NULL DEFAULT 1,
  net_mode INTEGER NOT NULL DEFAULT 0,
  art_vat1 NUMERIC NOT NULL DEFAULT 0,
  art_vat_price1 NUMERIC NOT NULL DEFAULT 0,
  art_vat2 NUMERIC NOT NULL DEFAULT 0,
  art_vat_price2 NUMERIC NOT NULL DEFAULT 0,
  discount NUMERIC NOT NULL DEFAULT 0,
  voucher_discount NUMERIC NOT NULL DEFAULT 0,
  bill_no TEXT NOT NULL DEFAULT '',
  bill_date TEXT NOT NULL DEFAULT '',
  invoice_no INTEGER NOT NULL DEFAULT 0,
  remark TEXT NOT NULL DEFAULT '',
  bill_company TEXT NOT NULL DEFAULT '',
  bill_email TEXT NOT NULL DEFAULT '',
  bill_fname TEXT NOT NULL DEFAULT '',
  bill_lname TEXT NOT NULL DEFAULT '',
  bill_street TEXT NOT NULL DEFAULT '',
  bill_street_no TEXT NOT NULL DEFAULT '',
  bill_addinfo TEXT NOT NULL DEFAULT '',
  bill_city TEXT NOT NULL DEFAULT '',
  bill_zip TEXT NOT NULL DEFAULT '',
  bill_ustid TEXT NOT NULL DEFAULT '',
  bill_country_id TEXT NOT NULL DEFAULT '',
  bill_state_id TEXT NOT NULL DEFAULT '',
  bill_fon TEXT NOT NULL DEFAULT '',
  bill_fax TEXT NOT NULL DEFAULT '',
  bill_sal TEXT NOT NULL DEFAULT '',
  del_company TEXT NOT NULL DEFAULT '',
  del_fname TEXT NOT NULL DEFAULT '',
  del_lname TEXT NOT NULL DEFAULT '',
  del_street TEXT NOT NULL DEFAULT '',
  del_street_no TEXT NOT NULL DEFAULT '',
  del_addinfo TEXT NOT NULL DEFAULT '',
  del_city TEXT NOT NULL DEFAULT '',
  del_zip TEXT NOT NULL DEFAULT '',
  del_country_id TEXT NOT NULL DEFAULT '',
  del_state_id TEXT NOT NULL DEFAULT '',
  del_fon TEXT NOT NULL DEFAULT '',
  del_fax TEXT NOT NULL DEFAULT '',
  del_sal TEXT NOT NULL DEFAULT '',
  payment_type TEXT NOT NULL DEFAULT '',
  paid_date TEXT NOT NULL DEFAULT '',
  pay_cost NUMERIC NOT NULL DEFAULT 0,
  pay_vat NUMERIC NOT NULL DEFAULT 0,
  trans_id TEXT NOT NULL DEFAULT '',
  del_type TEXT NOT NULL DEFAULT '',
  del_cost NUMERIC NOT NULL DEFAULT 0,
  del_vat NUMERIC NOT NULL DEFAULT 0,
  send_date TEXT NOT NULL DEFAULT '',
  track_code TEXT NOT NULL DEFAULT '',
  wrap_cost NUMERIC NOT NULL DEFAULT 0,
  wrap_vat NUMERIC NOT NULL DEFAULT 0,
  gift_card_cost NUMERIC NOT NULL DEFAULT 0,
  gift_card_vat NUMERIC NOT NULL DEFAULT 0,
  card_id TEXT NOT NULL DEFAULT '',
  card_text TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_orders_shop     ON orders(shop_id);
CREATE INDEX IF NOT EXISTS idx_orders_order_no ON orders(order_no);
CREATE INDEX IF NOT EXISTS idx_orders_user     ON orders(user_id);

CREATE TABLE IF NOT EXISTS order_items(
  id TEXT PRIMARY KEY,
  order_id TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
  product_id TEXT NOT NULL DEFAULT '',
  amount NUMERIC NOT NULL DEFAULT 0,
  art_num TEXT NOT NULL DEFAULT '',
  title TEXT NOT NULL DEFAULT '',
  short_desc TEXT NOT NULL DEFAULT '',
  brut_price NUMERIC NOT NULL DEFAULT 0,
  net_price NUMERIC NOT NULL DEFAULT 0,
  price NUMERIC NOT NULL DEFAULT 0,
  vat NUMERIC NOT NULL DEFAULT 0,
  vat_price NUMERIC NOT NULL DEFAULT 0,
  cancelled INTEGER NOT NULL DEFAULT 0,
  bundle INTEGER NOT NULL DEFAULT 0,
  sel_variant TEXT NOT NULL DEFAULT '',
  pers_params TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id);

-- Catalog / configuration rows
CREATE TABLE IF NOT EXISTS payment_methods(
  id TEXT PRIMARY KEY,
  active INTEGER NOT NULL DEFAULT 1,
  title TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS shipping_methods(
  id TEXT PRIMARY KEY,
  shop_id TEXT NOT NULL DEFAULT '',
  active INTEGER NOT NULL DEFAULT 1,
  title TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS countries(
  id TEXT PRIMARY KEY,
  active INTEGER NOT NULL DEFAULT 1,
  title TEXT NOT NULL DEFAULT '',
  iso2 TEXT NOT NULL DEFAULT '',
  iso3 TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS states(
  id TEXT PRIMARY KEY,
  country_id TEXT NOT NULL DEFAULT '',
  title TEXT NOT NULL DEFAULT '',
  iso2 TEXT NOT NULL DEFAULT ''
);

-- Per-shop settings, scoped by module id
CREATE TABLE IF NOT EXISTS settings(
  module TEXT NOT NULL,
  name TEXT NOT NULL,
  shop_id TEXT NOT NULL,
  value TEXT NOT NULL DEFAULT '',
  PRIMARY KEY(module, name, shop_id)
);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM shops`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo shops/methods/countries/states")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO shops(id,name,edition,version,revision,url,ssl_url) VALUES
	  ('oxbaseshop','Demo Shop','CE','6.2.4','r1','http://demoshop.local/','https://demoshop.local/')`)

	tx.MustExec(`INSERT INTO payment_methods(id,active,title) VALUES
	  ('oxidinvoice',1,'Invoice'),
	  ('oxidpayadvance',1,'Cash in advance'),
	  ('oxidcashondel',0,'COD (Cash on Delivery)')`)

	tx.MustExec(`INSERT INTO shipping_methods(id,shop_id,active,title) VALUES
	  ('oxidstandard','oxbaseshop',1,'Standard'),
	  ('oxidexpress','oxbaseshop',1,'Express')`)

	tx.MustExec(`INSERT INTO countries(id,active,title,iso2,iso3) VALUES
	  ('a7c40f631fc920687.20179984',1,'Deutschland','DE','DEU'),
	  ('a7c40f6320aeb2ec2.72885259',1,'Österreich','AT','AUT'),
	  ('8f241f11096877ac0.98748826',1,'Schweiz','CH','CHE')`)

	tx.MustExec(`INSERT INTO states(id,country_id,title,iso2) VALUES
	  ('BW','a7c40f631fc920687.20179984','Baden-Württemberg','BW'),
	  ('BY','a7c40f631fc920687.20179984','Bayern','BY')`)

	return tx.Commit()
}

// seedAPIKey generates a key on first start so a fresh install is callable
// without manual configuration, mirroring how the key would be provisioned
// on module activation.
func seedAPIKey(db *sqlx.DB) error {
	var key string
	err := db.Get(&key, `SELECT value FROM settings WHERE module = ? AND name = 'apiKey' LIMIT 1`, SettingsModule)
	if err == nil && key != "" {
		return nil
	}

	key = uuid.NewString()
	log.Println("[seed] generated api key")

	// Read before opening the transaction: the tx holds a pool connection,
	// and pool reads while it is open would run outside it.
	var shops []struct {
		ID     string `db:"id"`
		SSLURL string `db:"ssl_url"`
	}
	if err := db.Select(&shops, `SELECT id, ssl_url FROM shops`); err != nil {
		return err
	}

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()
	for _, shop := range shops {
		if _, err := tx.Exec(`
			INSERT INTO settings(module, name, shop_id, value)
			VALUES(?, 'apiKey', ?, ?)
			ON CONFLICT(module, name, shop_id) DO NOTHING
		`, SettingsModule, shop.ID, key); err != nil {
			return err
		}
		// informational: where callers reach this gateway for the shop
		if _, err := tx.Exec(`
			INSERT INTO settings(module, name, shop_id, value)
			VALUES(?, 'apiUrl', ?, ?)
			ON CONFLICT(module, name, shop_id) DO NOTHING
		`, SettingsModule, shop.ID, shop.SSLURL+"api"); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// SeedCustomer inserts a customer row with a bcrypt password hash, the way
// the surrounding shop would store one. Used by install tooling and tests.
func SeedCustomer(db *sqlx.DB, id, shopID string, custNo int, email, fname, lname, rawPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(rawPassword), 12)
	if err != nil {
		return err
	}
	_, err = db.Exec(`
		INSERT INTO customers(id, shop_id, cust_no, email, fname, lname, password_hash)
		VALUES(?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`, id, shopID, custNo, email, fname, lname, string(hash))
	return err
}
