package domain

// Projections are read-only snapshots of store rows, built fresh per request.
// Field sets are fixed: a value missing in the store serializes as its empty
// value (or null for dates), never as an omitted key.

type Order struct {
	ID              string           `json:"ID"`
	ShopID          string           `json:"ShopID"`
	CustomerID      string           `json:"CustomerID"`
	Date            *string          `json:"Date"`
	Cancelled       int              `json:"Cancelled"`
	State           string           `json:"State"`
	OrderNo         int              `json:"OrderNo"`
	OrderTotal      float64          `json:"OrderTotal"`
	OrderTotalNet   float64          `json:"OrderTotalNet"`
	OrderTotalGross float64          `json:"OrderTotalGross"`
	Currency        string           `json:"Currency"`
	CurrencyRate    float64          `json:"CurrencyRate"`
	NetMode         int              `json:"NetMode"`
	Vat             float64          `json:"Vat"`
	VatTotal        float64          `json:"VatTotal"`
	Vat2            float64          `json:"Vat2"`
	Vat2Total       float64          `json:"Vat2Total"`
	Discount        float64          `json:"Discount"`
	VoucherDiscount float64          `json:"VoucherDiscount"`
	BillNo          string           `json:"BillNo"`
	BillDate        *string          `json:"BillDate"`
	InvoiceNo       int              `json:"InvoiceNo"`
	Remark          string           `json:"Remark"`
	BillingAddress  *BillingAddress  `json:"BillingAddress"`
	ShippingAddress *ShippingAddress `json:"ShippingAddress"`
	Payment         Payment          `json:"Payment"`
	Shipping        Shipping         `json:"Shipping"`
	Wrapping        Wrapping         `json:"Wrapping"`
	GiftCard        GiftCard         `json:"GiftCard"`
	OrderItems      []OrderItem      `json:"OrderItems"`
}

type BillingAddress struct {
	Company    string `json:"Company"`
	Email      string `json:"Email"`
	FirstName  string `json:"FirstName"`
	LastName   string `json:"LastName"`
	Street     string `json:"Street"`
	StreetNo   string `json:"StreetNo"`
	AddInfo    string `json:"AddInfo"`
	City       string `json:"City"`
	ZipCode    string `json:"ZipCode"`
	VatID      string `json:"VatID"`
	CountryID  string `json:"CountryID"`
	StateID    string `json:"StateID"`
	Phone      string `json:"Phone"`
	Fax        string `json:"Fax"`
	Salutation string `json:"Salutation"`
	CustomerNo int    `json:"CustomerNo"`
}

// ShippingAddress is null on the order as a whole when no distinct delivery
// address was recorded.
type ShippingAddress struct {
	Company    string `json:"Company"`
	FirstName  string `json:"FirstName"`
	LastName   string `json:"LastName"`
	Street     string `json:"Street"`
	StreetNo   string `json:"StreetNo"`
	AddInfo    string `json:"AddInfo"`
	City       string `json:"City"`
	ZipCode    string `json:"ZipCode"`
	CountryID  string `json:"CountryID"`
	StateID    string `json:"StateID"`
	Phone      string `json:"Phone"`
	Fax        string `json:"Fax"`
	Salutation string `json:"Salutation"`
}

type Payment struct {
	ID            string  `json:"ID"`
	Date          *string `json:"Date"`
	Cost          float64 `json:"Cost"`
	Vat           float64 `json:"Vat"`
	TransactionID string  `json:"TransactionID"`
}

type Shipping struct {
	ID           string  `json:"ID"`
	Cost         float64 `json:"Cost"`
	Vat          float64 `json:"Vat"`
	Date         *string `json:"Date"`
	TrackingCode string  `json:"TrackingCode"`
}

type Wrapping struct {
	Cost float64 `json:"Cost"`
	Vat  float64 `json:"Vat"`
}

type GiftCard struct {
	Cost float64 `json:"Cost"`
	Vat  float64 `json:"Vat"`
	ID   string  `json:"ID"`
	Text string  `json:"Text"`
}

type OrderItem struct {
	ID               string  `json:"ID"`
	ProductID        string  `json:"ProductID"`
	Quantity         float64 `json:"Quantity"`
	ItemNo           string  `json:"ItemNo"`
	Title            string  `json:"Title"`
	ShortDescription string  `json:"ShortDescription"`
	Total            float64 `json:"Total"`
	Price            float64 `json:"Price"`
	Vat              float64 `json:"Vat"`
	VatTotal         float64 `json:"VatTotal"`
	Cancelled        int     `json:"Cancelled"`
	Bundle           int     `json:"Bundle"`
	Variant          string  `json:"Variant"`
	PersParams       any     `json:"PersParams"`
}

type PaymentMethod struct {
	ID     string `json:"ID"`
	Active int    `json:"Active"`
	Title  string `json:"Title"`
}

type ShippingMethod struct {
	ID     string `json:"ID"`
	ShopID string `json:"ShopID"`
	Active int    `json:"Active"`
	Title  string `json:"Title"`
}

type Country struct {
	ID     string `json:"ID"`
	Active int    `json:"Active"`
	Title  string `json:"Title"`
	ISO2   string `json:"ISO2"`
	ISO3   string `json:"ISO3"`
}

type State struct {
	ID        string `json:"ID"`
	CountryID string `json:"CountryID"`
	Title     string `json:"Title"`
	ISO2      string `json:"ISO2"`
}

type Shop struct {
	ID       string `json:"ID"`
	Title    string `json:"Title"`
	Edition  string `json:"Edition"`
	Version  string `json:"Version"`
	Revision string `json:"Revision"`
	URL      string `json:"Url"`
	SSLURL   string `json:"SslUrl"`
}
