package repos

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

// OrderRow is the flat order header plus the owning customer's number
// (joined in; 0 when the customer is gone).
type OrderRow struct {
	ID              string  `db:"id"`
	ShopID          string  `db:"shop_id"`
	UserID          string  `db:"user_id"`
	OrderDate       string  `db:"order_date"`
	Cancelled       int     `db:"cancelled"`
	TransStatus     string  `db:"trans_status"`
	OrderNo         int     `db:"order_no"`
	TotalOrderSum   float64 `db:"total_order_sum"`
	TotalNetSum     float64 `db:"total_net_sum"`
	TotalBrutSum    float64 `db:"total_brut_sum"`
	Currency        string  `db:"currency"`
	CurrencyRate    float64 `db:"currency_rate"`
	NetMode         int     `db:"net_mode"`
	ArtVat1         float64 `db:"art_vat1"`
	ArtVatPrice1    float64 `db:"art_vat_price1"`
	ArtVat2         float64 `db:"art_vat2"`
	ArtVatPrice2    float64 `db:"art_vat_price2"`
	Discount        float64 `db:"discount"`
	VoucherDiscount float64 `db:"voucher_discount"`
	BillNo          string  `db:"bill_no"`
	BillDate        string  `db:"bill_date"`
	InvoiceNo       int     `db:"invoice_no"`
	Remark          string  `db:"remark"`

	BillCompany   string `db:"bill_company"`
	BillEmail     string `db:"bill_email"`
	BillFName     string `db:"bill_fname"`
	BillLName     string `db:"bill_lname"`
	BillStreet    string `db:"bill_street"`
	BillStreetNo  string `db:"bill_street_no"`
	BillAddInfo   string `db:"bill_addinfo"`
	BillCity      string `db:"bill_city"`
	BillZip       string `db:"bill_zip"`
	BillUstID     string `db:"bill_ustid"`
	BillCountryID string `db:"bill_country_id"`
	BillStateID   string `db:"bill_state_id"`
	BillFon       string `db:"bill_fon"`
	BillFax       string `db:"bill_fax"`
	BillSal       string `db:"bill_sal"`

	DelCompany   string `db:"del_company"`
	DelFName     string `db:"del_fname"`
	DelLName     string `db:"del_lname"`
	DelStreet    string `db:"del_street"`
	DelStreetNo  string `db:"del_street_no"`
	DelAddInfo   string `db:"del_addinfo"`
	DelCity      string `db:"del_city"`
	DelZip       string `db:"del_zip"`
	DelCountryID string `db:"del_country_id"`
	DelStateID   string `db:"del_state_id"`
	DelFon       string `db:"del_fon"`
	DelFax       string `db:"del_fax"`
	DelSal       string `db:"del_sal"`

	PaymentType string  `db:"payment_type"`
	PaidDate    string  `db:"paid_date"`
	PayCost     float64 `db:"pay_cost"`
	PayVat      float64 `db:"pay_vat"`
	TransID     string  `db:"trans_id"`

	DelType   string  `db:"del_type"`
	DelCost   float64 `db:"del_cost"`
	DelVat    float64 `db:"del_vat"`
	SendDate  string  `db:"send_date"`
	TrackCode string  `db:"track_code"`

	WrapCost float64 `db:"wrap_cost"`
	WrapVat  float64 `db:"wrap_vat"`

	GiftCardCost float64 `db:"gift_card_cost"`
	GiftCardVat  float64 `db:"gift_card_vat"`
	CardID       string  `db:"card_id"`
	CardText     string  `db:"card_text"`

	CustNo int `db:"cust_no"`
}

type OrderItemRow struct {
	ID         string  `db:"id"`
	OrderID    string  `db:"order_id"`
	ProductID  string  `db:"product_id"`
	Amount     float64 `db:"amount"`
	ArtNum     string  `db:"art_num"`
	Title      string  `db:"title"`
	ShortDesc  string  `db:"short_desc"`
	BrutPrice  float64 `db:"brut_price"`
	NetPrice   float64 `db:"net_price"`
	Price      float64 `db:"price"`
	Vat        float64 `db:"vat"`
	VatPrice   float64 `db:"vat_price"`
	Cancelled  int     `db:"cancelled"`
	Bundle     int     `db:"bundle"`
	SelVariant string  `db:"sel_variant"`
	PersParams string  `db:"pers_params"`
}

const orderSelect = `
	SELECT o.*, COALESCE(c.cust_no, 0) AS cust_no
	FROM orders o
	LEFT JOIN customers c ON c.id = o.user_id
`

// Search returns order rows matching a prebuilt parameterized condition.
func (r *OrderRepo) Search(clause string, args []any) ([]OrderRow, error) {
	var out []OrderRow
	err := r.db.Select(&out, orderSelect+` WHERE `+clause+` ORDER BY o.order_no`, args...)
	return out, err
}

// Get loads one order by primary key. Returns nil without error when the
// order does not exist.
func (r *OrderRepo) Get(orderID string) (*OrderRow, error) {
	var o OrderRow
	err := r.db.Get(&o, orderSelect+` WHERE o.id = ?`, orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepo) Items(orderID string) ([]OrderItemRow, error) {
	var items []OrderItemRow
	err := r.db.Select(&items, `
		SELECT id, order_id, product_id, amount, art_num, title, short_desc,
		       brut_price, net_price, price, vat, vat_price, cancelled, bundle,
		       sel_variant, pers_params
		FROM order_items
		WHERE order_id = ?
		ORDER BY art_num
	`, orderID)
	return items, err
}
